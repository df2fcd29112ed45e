package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.c и *.cc файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".c" && ext != ".cc" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addLanguageSeeds feeds hand-written snippets of the supported subset so
// the fuzzer starts from inputs that reach deep into the pipeline.
func addLanguageSeeds(f *testing.F) {
	seeds := []string{
		"",
		"int f(void) { return 0; }\n",
		"typedef long long handle_t;\nhandle_t get(void);\n",
		"void f(long long a) { int b = a; }\n",
		"void f(long long a) { int b = (int)a; }\n",
		"void f(long long a) { int b = static_cast<int>(a); }\n",
		"int g(int x);\nvoid f(long long a) { g(a); (&g)(a); }\n",
		"void f(int n) { for (long long i = 0; i < n; i = i + 1) { int x = i; } }\n",
		"void f(int n) { switch (n) { case 0: break; default: n = 1; } }\n",
		"void f(double d) { float g = d; int i = d; }\n",
		"void f(void) { 1uLL; 1.5f; 2e10; }\n",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
