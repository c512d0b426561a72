// Package icsfile moves notes in and out of iCalendar files.
package icsfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/calprint/pkg/app"
	"tableflip.dev/calprint/pkg/ics"
	"tableflip.dev/calprint/pkg/printers"
)

// stdio is the path meaning stdin or stdout.
const stdio = "-"

// Export writes every note to Path, or to Out when Path is empty or "-".
type Export struct {
	Service  *app.Service
	Path     string
	Out      io.Writer
	Location *time.Location
}

// Do writes the calendar.
func (e *Export) Do(ctx context.Context) error {
	if e.Service == nil {
		return errors.New("can not export, no service")
	}
	all, err := e.Service.AllNotes()
	if err != nil {
		return err
	}

	if e.Path == "" || e.Path == stdio {
		w := e.Out
		if w == nil {
			w = os.Stdout
		}
		_, err := ics.Export(w, all, ics.ExportOptions{Location: e.Location})
		return err
	}

	f, err := os.Create(e.Path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	n, err := ics.Export(f, all, ics.ExportOptions{Location: e.Location})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "Exported %d events to %s\n", n, e.Path)
	return nil
}

// Import adds the events of Path, or of In when Path is "-", as notes.
type Import struct {
	Service  *app.Service
	Path     string
	In       io.Reader
	Location *time.Location
	Format   printers.Format
	Out      io.Writer
}

// Do reads the calendar and reports what was added.
func (i *Import) Do(ctx context.Context) error {
	if i.Service == nil {
		return errors.New("can not import, no service")
	}

	r := i.In
	if i.Path != "" && i.Path != stdio {
		f, err := os.Open(i.Path)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		defer f.Close()
		r = f
	}
	if r == nil {
		r = os.Stdin
	}

	res, err := ics.Import(r, i.Service, i.Location)
	if err != nil {
		return err
	}

	w := i.Out
	if w == nil {
		w = color.Output
	}
	if i.Format.Structured() {
		return printers.Encode(w, i.Format, res)
	}
	_, _ = fmt.Fprintf(w, "Imported %d notes, skipped %d\n", res.Added, res.Skipped)
	return nil
}
