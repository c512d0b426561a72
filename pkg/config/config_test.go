package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"

	"tableflip.dev/calprint/pkg/calendar"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(pathEnv, "")
	// viper treats empty variables as unset.
	for _, k := range []string{"PATH", "WEEK_START", "HOURS_START", "HOURS_END", "YEAR_RANGE_START", "YEAR_RANGE_END"} {
		t.Setenv(envPrefix+"_"+k, "")
	}
	prev := homedir.DisableCache
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = prev })
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if want := filepath.Join(home, ".calprint"); c.BasePath() != want {
		t.Fatalf("path = %q, want %q", c.BasePath(), want)
	}
	if c.Calendar != calendar.DefaultOptions() {
		t.Fatalf("calendar options = %+v, want defaults", c.Calendar)
	}
	if c.File != "" {
		t.Fatalf("no config file expected, got %q", c.File)
	}
}

func TestLoadFromConfigPath(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	body := "path: " + filepath.Join(dir, "notes") + "\nweek_start: sunday\nhours_start: 8\nhours_end: 18\n"
	if err := os.WriteFile(filepath.Join(dir, ".calprint.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(pathEnv, dir)

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.BasePath() != filepath.Join(dir, "notes") {
		t.Fatalf("path = %q", c.BasePath())
	}
	if c.Calendar.WeekStart != calendar.Sunday || c.Calendar.HoursStart != 8 || c.Calendar.HoursEnd != 18 {
		t.Fatalf("unexpected options %+v", c.Calendar)
	}
	if c.Calendar.YearRangeStart != calendar.DefaultYearRangeStart {
		t.Fatalf("unset keys should keep defaults, got %d", c.Calendar.YearRangeStart)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("CALPRINT_WEEK_START", "sunday")
	t.Setenv("CALPRINT_HOURS_END", "20")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Calendar.WeekStart != calendar.Sunday || c.Calendar.HoursEnd != 20 {
		t.Fatalf("env not applied: %+v", c.Calendar)
	}
}

func TestLoadRejectsInvalidOptions(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(file, []byte("hours_start: 22\nhours_end: 6\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFile(file); err == nil {
		t.Fatalf("expected inverted hours to be rejected")
	}

	t.Setenv("CALPRINT_WEEK_START", "friday")
	if _, err := Load(); err == nil {
		t.Fatalf("expected unknown week start to be rejected")
	}
}
