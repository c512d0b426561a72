package events

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"tableflip.dev/calprint/pkg/store"
)

type failingStore struct {
	data    []byte
	loadErr error
	saveErr error
	saves   int
}

func (f *failingStore) Load() ([]byte, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.data == nil {
		return nil, store.ErrNotFound
	}
	return f.data, nil
}

func (f *failingStore) Save(data []byte) error {
	f.saves++
	return f.saveErr
}

func snapshotOf(t *testing.T, m *store.Memory) map[string][]string {
	t.Helper()
	data, err := m.Load()
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	var out map[string][]string
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("decode snapshot %q: %v", data, err)
	}
	return out
}

func TestIndexAddEditDelete(t *testing.T) {
	m := store.NewMemory(nil)
	idx := New(m)
	idx.Load()

	const key = "2026-02-14"
	idx.Add(key, "Dinner")
	idx.Add(key, "Call Mom")
	if got := idx.Get(key); !reflect.DeepEqual(got, []string{"Dinner", "Call Mom"}) {
		t.Fatalf("after adds = %v", got)
	}

	idx.Update(key, 0, "Dinner at 8")
	if got := idx.Get(key); !reflect.DeepEqual(got, []string{"Dinner at 8", "Call Mom"}) {
		t.Fatalf("after update = %v", got)
	}

	idx.Delete(key, 0)
	if got := idx.Get(key); !reflect.DeepEqual(got, []string{"Call Mom"}) {
		t.Fatalf("after delete = %v", got)
	}

	idx.Delete(key, 0)
	if got := idx.Get(key); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	if idx.Len() != 0 {
		t.Fatalf("key should be gone, have %v", idx.Keys())
	}
	if snap := snapshotOf(t, m); len(snap) != 0 {
		t.Fatalf("persisted snapshot should be empty, got %v", snap)
	}
	if m.Saves() != 5 {
		t.Fatalf("expected one save per mutation, got %d", m.Saves())
	}
}

func TestIndexAddKeepsDuplicates(t *testing.T) {
	idx := New(nil)
	idx.Add("2026-02-14T09:00", "standup")
	idx.Add("2026-02-14T09:00", "standup")
	idx.Add("2026-02-14T09:00", "")
	if got := idx.Get("2026-02-14T09:00"); len(got) != 3 {
		t.Fatalf("expected 3 notes, got %v", got)
	}
}

func TestIndexGetReturnsCopy(t *testing.T) {
	idx := New(nil)
	idx.Add("k", "a")
	got := idx.Get("k")
	got[0] = "mutated"
	if idx.Get("k")[0] != "a" {
		t.Fatalf("Get must not expose internal storage")
	}
	snap := idx.Snapshot()
	snap["k"][0] = "mutated"
	if idx.Get("k")[0] != "a" {
		t.Fatalf("Snapshot must be a deep copy")
	}
}

func TestIndexNoOpMutationsDoNotSave(t *testing.T) {
	m := store.NewMemory([]byte(`{"2026-02-14":["a"]}`))
	idx := New(m)
	idx.Load()

	idx.Update("2026-02-15", 0, "x")
	idx.Update("2026-02-14", 5, "x")
	idx.Update("2026-02-14", -1, "x")
	idx.Delete("2026-02-15", 0)
	idx.Delete("2026-02-14", 1)
	idx.Delete("2026-02-14", -1)

	if m.Saves() != 0 {
		t.Fatalf("no-op mutations must not save, got %d saves", m.Saves())
	}
	if got := idx.Get("2026-02-14"); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("index changed: %v", got)
	}
}

func TestIndexLoadCorruptSnapshot(t *testing.T) {
	for _, data := range []string{
		`not json`,
		`["2026-02-14"]`,
		`{"2026-02-14": "one"}`,
		`{"2026-02-14": [1, 2]}`,
		`{"2026-02-14": [{"text": "a"}]}`,
		`{"2026-02-14": [null, "x"], "2026-02-15": null}`,
		`{"2026-02-14": ["a", null]}`,
		`null`,
	} {
		var reported []error
		idx := New(store.NewMemory([]byte(data)), WithErrorHandler(func(err error) {
			reported = append(reported, err)
		}))
		idx.Load()
		if idx.Len() != 0 {
			t.Errorf("%s: expected empty index, got %v", data, idx.Snapshot())
		}
		if data != "null" && len(reported) == 0 {
			t.Errorf("%s: corrupt snapshot should be reported", data)
		}
	}
}

func TestIndexLoadDropsEmptyKeys(t *testing.T) {
	idx := New(store.NewMemory([]byte(`{"2026-02-14":[],"2026-02-15":["a"],"2026-02-16":null}`)))
	idx.Load()
	if got := idx.Keys(); !reflect.DeepEqual(got, []string{"2026-02-15"}) {
		t.Fatalf("keys = %v", got)
	}
}

func TestIndexMissingSnapshotIsSilent(t *testing.T) {
	called := false
	idx := New(store.NewMemory(nil), WithErrorHandler(func(error) { called = true }))
	idx.Load()
	if called || idx.Len() != 0 {
		t.Fatalf("missing snapshot should load empty without reporting")
	}
}

func TestIndexSaveFailureKeepsMemory(t *testing.T) {
	boom := errors.New("quota exceeded")
	fs := &failingStore{saveErr: boom}
	var reported []error
	idx := New(fs, WithErrorHandler(func(err error) { reported = append(reported, err) }))
	idx.Load()

	idx.Add("2026-02-14", "a")
	idx.Add("2026-02-14", "b")
	if got := idx.Get("2026-02-14"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("in-memory notes lost: %v", got)
	}
	if fs.saves != 2 || len(reported) != 2 {
		t.Fatalf("saves=%d reported=%d, want 2 and 2", fs.saves, len(reported))
	}
	if !errors.Is(reported[0], boom) {
		t.Fatalf("reported error should wrap the store error, got %v", reported[0])
	}
}

func TestIndexLoadFailureIsReported(t *testing.T) {
	boom := errors.New("permission denied")
	var reported error
	idx := New(&failingStore{loadErr: boom}, WithErrorHandler(func(err error) { reported = err }))
	idx.Load()
	if !errors.Is(reported, boom) || idx.Len() != 0 {
		t.Fatalf("reported=%v len=%d", reported, idx.Len())
	}
}

func TestIndexPersistsAcrossInstances(t *testing.T) {
	disk, err := store.Open(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	first := New(disk)
	first.Load()
	first.Add("2026-02-14", "Dinner")
	first.Add("2026-02-14T06:00", "Run")
	first.Add("2026-02-14T06:00", "Stretch")

	second := New(disk)
	second.Load()
	if !reflect.DeepEqual(first.Snapshot(), second.Snapshot()) {
		t.Fatalf("reloaded %v, want %v", second.Snapshot(), first.Snapshot())
	}
	if got := second.Keys(); !reflect.DeepEqual(got, []string{"2026-02-14", "2026-02-14T06:00"}) {
		t.Fatalf("keys = %v", got)
	}

	first.Delete("2026-02-14", 0)
	second.Reload()
	if second.Has("2026-02-14") {
		t.Fatalf("reload should pick up the delete")
	}
}

type testConfig string

func (c testConfig) BasePath() string { return string(c) }
