package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"narrowcheck/internal/diag"
	"narrowcheck/internal/source"
)

// Digest is a SHA-256 content hash.
type Digest = [32]byte

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит диагностики проверенных файлов по хэшу содержимого.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedNote is a serialized diagnostic note.
type CachedNote struct {
	Start   uint32
	End     uint32
	Message string
}

// CachedDiagnostic is one serialized diagnostic. Spans are stored as byte
// offsets only: the cache key is the content hash, so offsets stay valid
// for any file that hits the entry.
type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Start    uint32
	End      uint32
	Message  string
	Notes    []CachedNote
}

// DiskPayload stores the cached result of checking one file.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema      uint16
	Path        string
	ContentHash Digest
	Diags       []CachedDiagnostic
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt opens a cache rooted at an explicit directory (tests,
// CI sandboxes).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "files".
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// replayCached fills bag from a cache hit, rebinding spans to the freshly
// loaded FileID. Stale schemas and read errors count as a miss.
func replayCached(cache *DiskCache, file *source.File, bag *diag.Bag) bool {
	if cache == nil {
		return false
	}
	var payload DiskPayload
	ok, err := cache.Get(file.Hash, &payload)
	if err != nil || !ok || payload.Schema != diskCacheSchemaVersion {
		return false
	}
	for _, cd := range payload.Diags {
		d := diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: file.ID, Start: cd.Start, End: cd.End},
		}
		for _, n := range cd.Notes {
			d = d.WithNote(source.Span{File: file.ID, Start: n.Start, End: n.End}, n.Message)
		}
		bag.Add(d)
	}
	return true
}

// storeCached writes bag into the cache. Failures are ignored: the cache
// is an accelerator, not a source of truth.
func storeCached(cache *DiskCache, file *source.File, bag *diag.Bag) {
	if cache == nil {
		return
	}
	payload := DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        file.Path,
		ContentHash: file.Hash,
		Diags:       make([]CachedDiagnostic, 0, bag.Len()),
	}
	for _, d := range bag.Items() {
		cd := CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Start: n.Span.Start, End: n.Span.End, Message: n.Msg})
		}
		payload.Diags = append(payload.Diags, cd)
	}
	_ = cache.Put(file.Hash, &payload)
}
