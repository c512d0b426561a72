// Package events keeps the notes attached to calendar keys. A key is either a
// DateKey (YYYY-MM-DD) or a TimeSlotKey (YYYY-MM-DDTHH:00); each maps to an
// ordered list of note texts where the position is the note's identity.
//
// The in-memory index is authoritative. Every successful mutation writes the
// full snapshot to the BlobStore, and a failing write is reported to the
// error handler and otherwise ignored.
package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"tableflip.dev/calprint/pkg/store"
)

// BlobStore reads and writes the notes snapshot.
type BlobStore interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Option configures an Index.
type Option func(*Index)

// WithErrorHandler replaces the default stderr reporting of swallowed load and
// save errors.
func WithErrorHandler(fn func(error)) Option {
	return func(i *Index) {
		if fn != nil {
			i.onError = fn
		}
	}
}

// Index maps keys to ordered notes.
type Index struct {
	mu      sync.Mutex
	store   BlobStore
	notes   map[string][]string
	onError func(error)
}

// New returns an empty Index persisting to s. Call Load to read the existing
// snapshot. A nil store keeps the index in memory only.
func New(s BlobStore, opts ...Option) *Index {
	i := &Index{
		store:   s,
		notes:   make(map[string][]string),
		onError: printError,
	}
	for _, o := range opts {
		o(i)
	}
	return i
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "events: %v\n", err)
}

// Load replaces the in-memory notes with the stored snapshot. A missing,
// unreadable or malformed snapshot leaves the index empty.
func (i *Index) Load() {
	notes := i.read()
	i.mu.Lock()
	i.notes = notes
	i.mu.Unlock()
}

// Reload re-reads the snapshot after an external change.
func (i *Index) Reload() {
	i.Load()
}

func (i *Index) read() map[string][]string {
	notes := make(map[string][]string)
	if i.store == nil {
		return notes
	}
	data, err := i.store.Load()
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			i.onError(fmt.Errorf("load snapshot: %w", err))
		}
		return notes
	}
	decoded, err := decode(data)
	if err != nil {
		i.onError(fmt.Errorf("corrupt snapshot ignored: %w", err))
		return notes
	}
	return decoded
}

// decode parses a snapshot. Anything other than an object of string arrays is
// rejected, null items included; keys with empty or null arrays are dropped.
func decode(data []byte) (map[string][]string, error) {
	var raw map[string][]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	notes := make(map[string][]string, len(raw))
	for k, v := range raw {
		if len(v) == 0 {
			continue
		}
		list := make([]string, len(v))
		for n, note := range v {
			if note == nil {
				return nil, fmt.Errorf("%s: note %d is null", k, n)
			}
			list[n] = *note
		}
		notes[k] = list
	}
	return notes, nil
}

// Get returns a copy of the notes at key, an empty non-nil slice when there
// are none.
func (i *Index) Get(key string) []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]string{}, i.notes[key]...)
}

// Has reports whether key has at least one note.
func (i *Index) Has(key string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.notes[key]) > 0
}

// Add appends text to the notes at key.
func (i *Index) Add(key, text string) {
	i.mu.Lock()
	i.notes[key] = append(i.notes[key], text)
	snap := i.encodeLocked()
	i.mu.Unlock()
	i.save(snap)
}

// Update replaces the note at position index. Unknown keys and out of range
// positions are ignored and nothing is written.
func (i *Index) Update(key string, index int, text string) {
	i.mu.Lock()
	list, ok := i.notes[key]
	if !ok || index < 0 || index >= len(list) {
		i.mu.Unlock()
		return
	}
	list[index] = text
	snap := i.encodeLocked()
	i.mu.Unlock()
	i.save(snap)
}

// Delete removes the note at position index; later notes shift down by one.
// The key disappears with its last note. Unknown keys and out of range
// positions are ignored and nothing is written.
func (i *Index) Delete(key string, index int) {
	i.mu.Lock()
	list, ok := i.notes[key]
	if !ok || index < 0 || index >= len(list) {
		i.mu.Unlock()
		return
	}
	list = append(list[:index:index], list[index+1:]...)
	if len(list) == 0 {
		delete(i.notes, key)
	} else {
		i.notes[key] = list
	}
	snap := i.encodeLocked()
	i.mu.Unlock()
	i.save(snap)
}

// Keys returns every key with notes, sorted. Date keys sort before the time
// slots of the same day.
func (i *Index) Keys() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	keys := make([]string, 0, len(i.notes))
	for k := range i.notes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys with notes.
func (i *Index) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.notes)
}

// Snapshot returns a deep copy of all notes.
func (i *Index) Snapshot() map[string][]string {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make(map[string][]string, len(i.notes))
	for k, v := range i.notes {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (i *Index) encodeLocked() []byte {
	// A map of string slices always marshals.
	data, _ := json.Marshal(i.notes)
	return data
}

func (i *Index) save(data []byte) {
	if i.store == nil {
		return
	}
	if err := i.store.Save(data); err != nil {
		i.onError(fmt.Errorf("save snapshot: %w", err))
	}
}
