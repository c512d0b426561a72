package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	file := filepath.Join(dir, "calprint.yaml")
	body := "path: " + filepath.Join(dir, "notes") + "\nweek_start: monday\nhours_start: 8\nhours_end: 18\n"
	if err := os.WriteFile(file, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestCommandTree(t *testing.T) {
	cmd := New()
	want := []string{"agenda", "completion", "export", "import", "mcp", "month", "note", "ui", "version", "week", "weeks"}
	for _, name := range want {
		if c, _, err := cmd.Find([]string{name}); err != nil || c.Name() != name {
			t.Errorf("missing command %q", name)
		}
	}
	for _, name := range []string{"add", "get", "edit", "delete", "list"} {
		if c, _, err := cmd.Find([]string{"note", name}); err != nil || c.Name() != name {
			t.Errorf("missing note command %q", name)
		}
	}
}

func TestNoteCommands(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "--config", cfg, "note", "add", "2026-02-14 9", "Stand", "up", "-o", "json")
	if err != nil {
		t.Fatalf("note add: %v\n%s", err, out)
	}
	var added struct {
		Key   string   `json:"key"`
		Index *int     `json:"index"`
		Notes []string `json:"notes"`
	}
	if err := json.Unmarshal([]byte(out), &added); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if added.Key != "2026-02-14T09:00" || added.Index == nil || *added.Index != 0 {
		t.Fatalf("unexpected add result %+v", added)
	}

	if _, err := run(t, "--config", cfg, "note", "add", "2026-02-14T09:00", "Coffee"); err != nil {
		t.Fatalf("second add: %v", err)
	}
	if _, err := run(t, "--config", cfg, "note", "delete", "2026-02-14T09:00", "0"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	out, err = run(t, "--config", cfg, "note", "get", "2026-02-14T09:00", "--json")
	if err != nil {
		t.Fatalf("note get: %v", err)
	}
	var got struct {
		Notes []string `json:"notes"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if !reflect.DeepEqual(got.Notes, []string{"Coffee"}) {
		t.Fatalf("notes = %v", got.Notes)
	}

	if _, err := run(t, "--config", cfg, "note", "add", "2026-02-14 7", "too early"); err == nil {
		t.Fatalf("07:00 is outside the configured hours")
	}
	if _, err := run(t, "--config", cfg, "note", "edit", "2026-02-14", "first", "x"); err == nil {
		t.Fatalf("expected an index error")
	}
}

func TestMonthAndWeeksCommands(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "--config", cfg, "weeks", "--month", "2026-02", "-o", "json")
	if err != nil {
		t.Fatalf("weeks: %v", err)
	}
	var weeks struct {
		Weeks []int `json:"weeks"`
	}
	if err := json.Unmarshal([]byte(out), &weeks); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if !reflect.DeepEqual(weeks.Weeks, []int{5, 6, 7, 8, 9}) {
		t.Fatalf("weeks = %v", weeks.Weeks)
	}

	out, err = run(t, "--config", cfg, "month", "--month", "2026-02")
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	if !strings.Contains(out, "February 2026") {
		t.Fatalf("month output missing title:\n%s", out)
	}

	if _, err := run(t, "--config", cfg, "month", "--month", "Feb"); err == nil {
		t.Fatalf("expected a month format error")
	}
	if _, err := run(t, "--config", cfg, "month", "-o", "xml"); err == nil {
		t.Fatalf("expected an output format error")
	}
}

func TestAgendaSpan(t *testing.T) {
	cfg := writeConfig(t)
	if _, err := run(t, "--config", cfg, "note", "add", "2026-02-10", "Dentist"); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "--config", cfg, "note", "add", "2026-02-20", "Later"); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "--config", cfg, "agenda", "--from", "2026-02-09", "--span", "1w", "-o", "json")
	if err != nil {
		t.Fatalf("agenda: %v", err)
	}
	var r struct {
		Total int    `json:"total"`
		Until string `json:"until"`
	}
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if r.Total != 1 || r.Until != "2026-02-15" {
		t.Fatalf("agenda = %+v", r)
	}

	if _, err := run(t, "--config", cfg, "agenda", "--span", "2h"); err == nil {
		t.Fatalf("expected a span error")
	}
}
