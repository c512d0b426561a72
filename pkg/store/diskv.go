package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/calprint/pkg/config"
)

// DefaultKey is the blob the notes snapshot is written under.
const DefaultKey = "calendar-app-events"

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("store: blob not found")

// Config locates the on-disk store.
type Config interface {
	BasePath() string
}

// Disk is a BlobStore backed by a diskv directory. Each blob is a single file
// named after its key directly under the base path.
type Disk struct {
	d        *diskv.Diskv
	basePath string
	key      string
}

// Open creates a Disk using the provided config. A nil config loads the
// default one.
func Open(cfg Config) (*Disk, error) {
	if cfg == nil {
		c, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &Disk{
		d: diskv.New(diskv.Options{
			BasePath:  basePath,
			TempDir:   filepath.Join(basePath, ".tmp"),
			Transform: flatTransform,
			// Other processes edit the same file; the cache would hide them.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		key:      DefaultKey,
	}, nil
}

// WithKey returns a Disk that reads and writes a different blob in the same
// directory.
func (p *Disk) WithKey(key string) *Disk {
	cp := *p
	cp.key = key
	return &cp
}

// Key returns the blob key.
func (p *Disk) Key() string { return p.key }

// Path returns the file holding the blob.
func (p *Disk) Path() string {
	return filepath.Join(p.basePath, p.key)
}

// Load reads the blob.
func (p *Disk) Load() ([]byte, error) {
	val, err := p.d.Read(p.key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", p.key, err)
	}
	return val, nil
}

// Save replaces the blob.
func (p *Disk) Save(data []byte) error {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	if err := p.d.Write(p.key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", p.key, err)
	}
	return nil
}

// Erase removes the blob. Erasing a missing blob is not an error.
func (p *Disk) Erase() error {
	if err := p.d.Erase(p.key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", p.key, err)
	}
	return nil
}

func flatTransform(string) []string {
	return []string{}
}
