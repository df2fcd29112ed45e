package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"narrowcheck/internal/diag"
)

const lossySource = `void takes_int(int32_t i) {}
void f() {
	int64_t i64 = 1;
	takes_int(i64);
}
`

const cleanSource = `void g() {
	int32_t i32 = 5;
	int64_t i64 = i32;
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func countWarnings(results []FileResult) int {
	n := 0
	for _, r := range results {
		for _, d := range r.Bag.Items() {
			if d.Code == diag.NarrowLossyConversion {
				n++
			}
		}
	}
	return n
}

func TestCheckPathsWalksDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lossy.c", lossySource)
	writeFile(t, dir, "clean.cc", cleanSource)
	writeFile(t, dir, "ignored.txt", "not source")

	_, results, err := CheckPaths(context.Background(), []string{dir}, Options{MaxDiagnostics: 64})
	if err != nil {
		t.Fatalf("CheckPaths: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	// Результаты отсортированы по пути.
	if filepath.Base(results[0].Path) != "clean.cc" || filepath.Base(results[1].Path) != "lossy.c" {
		t.Fatalf("unexpected order: %s, %s", results[0].Path, results[1].Path)
	}
	if got := countWarnings(results); got != 1 {
		t.Fatalf("want 1 narrowing warning, got %d", got)
	}
}

func TestCheckPathsReportsLoadErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.c")

	_, _, err := CheckPaths(context.Background(), []string{missing}, Options{MaxDiagnostics: 8})
	if err == nil {
		t.Fatal("want stat error for a missing path")
	}
}

func TestCheckPathsUnreadableFileGetsIODiagnostic(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	dir := t.TempDir()
	path := writeFile(t, dir, "secret.c", lossySource)
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	_, results, err := CheckPaths(context.Background(), []string{dir}, Options{MaxDiagnostics: 8})
	if err != nil {
		t.Fatalf("CheckPaths: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("want 1 result, got %d", len(results))
	}
	items := results[0].Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOLoadFileError {
		t.Fatalf("want a single IO5001 diagnostic, got %+v", items)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cacheDir := t.TempDir()
	cache, err := OpenDiskCacheAt(cacheDir)
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	srcDir := t.TempDir()
	writeFile(t, srcDir, "lossy.c", lossySource)
	opts := Options{MaxDiagnostics: 64, Cache: cache}

	_, first, err := CheckPaths(context.Background(), []string{srcDir}, opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first[0].FromCache {
		t.Fatal("first run must not come from cache")
	}

	_, second, err := CheckPaths(context.Background(), []string{srcDir}, opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second[0].FromCache {
		t.Fatal("second run should hit the cache")
	}
	if countWarnings(first) != countWarnings(second) {
		t.Fatalf("cached warnings differ: %d vs %d", countWarnings(first), countWarnings(second))
	}
	// Диагностики должны совпадать вплоть до спанов.
	fi, si := first[0].Bag.Items(), second[0].Bag.Items()
	if len(fi) != len(si) {
		t.Fatalf("item count differs: %d vs %d", len(fi), len(si))
	}
	for i := range fi {
		if fi[i].Message != si[i].Message || fi[i].Primary.Start != si[i].Primary.Start {
			t.Fatalf("item %d differs: %+v vs %+v", i, fi[i], si[i])
		}
	}
}

func TestDiskCacheInvalidatesOnContentChange(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	srcDir := t.TempDir()
	writeFile(t, srcDir, "a.c", lossySource)
	opts := Options{MaxDiagnostics: 64, Cache: cache}

	if _, _, err := CheckPaths(context.Background(), []string{srcDir}, opts); err != nil {
		t.Fatalf("first run: %v", err)
	}
	writeFile(t, srcDir, "a.c", cleanSource)

	_, results, err := CheckPaths(context.Background(), []string{srcDir}, opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if results[0].FromCache {
		t.Fatal("changed content must miss the cache")
	}
	if got := countWarnings(results); got != 0 {
		t.Fatalf("clean source produced %d warnings", got)
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	var key Digest
	key[0] = 1
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	var out DiskPayload
	ok, err := cache.Get(key, &out)
	if err != nil {
		t.Fatalf("Get after drop: %v", err)
	}
	if ok {
		t.Fatal("cache entry survived DropAll")
	}
}
