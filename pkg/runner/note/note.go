// Package note runs the note subcommands against the notes index.
package note

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/calprint/pkg/app"
	"tableflip.dev/calprint/pkg/printers"
)

var errNoService = errors.New("can not change notes, no service")

// Result is the structured answer of a note command.
type Result struct {
	Key   string   `json:"key" yaml:"key"`
	Index *int     `json:"index,omitempty" yaml:"index,omitempty"`
	Notes []string `json:"notes" yaml:"notes"`
}

// Add appends a note to a day or time slot.
type Add struct {
	Service *app.Service
	Key     string
	Text    string
	Format  printers.Format
	Out     io.Writer
}

// Do resolves the key and stores the note.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	key, err := n.Service.ResolveKey(n.Key)
	if err != nil {
		return err
	}
	i, err := n.Service.AddNote(key, n.Text)
	if err != nil {
		return err
	}
	return show(n.Service, key, i, "Added", n.Format, n.Out)
}

// Get prints the notes of a key.
type Get struct {
	Service *app.Service
	Key     string
	Format  printers.Format
	Out     io.Writer
}

// Do prints the notes.
func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	key, err := n.Service.ResolveKey(n.Key)
	if err != nil {
		return err
	}
	return show(n.Service, key, 0, "", n.Format, n.Out)
}

// Edit replaces the note at Index.
type Edit struct {
	Service *app.Service
	Key     string
	Index   int
	Text    string
	Format  printers.Format
	Out     io.Writer
}

// Do replaces the note.
func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	key, err := n.Service.ResolveKey(n.Key)
	if err != nil {
		return err
	}
	if err := n.Service.EditNote(key, n.Index, n.Text); err != nil {
		return err
	}
	return show(n.Service, key, n.Index, "Edited", n.Format, n.Out)
}

// Delete removes the note at Index. Later notes move up one position.
type Delete struct {
	Service *app.Service
	Key     string
	Index   int
	Format  printers.Format
	Out     io.Writer
}

// Do removes the note.
func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	key, err := n.Service.ResolveKey(n.Key)
	if err != nil {
		return err
	}
	if err := n.Service.DeleteNote(key, n.Index); err != nil {
		return err
	}
	return show(n.Service, key, n.Index, "Deleted", n.Format, n.Out)
}

// List prints every key that has notes.
type List struct {
	Service *app.Service
	Format  printers.Format
	Out     io.Writer
}

// Do prints the table of notes.
func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	all, err := n.Service.AllNotes()
	if err != nil {
		return err
	}
	if n.Format.Structured() {
		return printers.Encode(out(n.Out), n.Format, all)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	if len(all) == 0 {
		pp.TitleWithCount("All notes", 0)
		return nil
	}
	pp.NotesList(all)
	return nil
}

func show(s *app.Service, key string, index int, verb string, f printers.Format, w io.Writer) error {
	notes, err := s.Notes(key)
	if err != nil {
		return err
	}
	if f.Structured() {
		r := Result{Key: key, Notes: notes}
		if verb != "" {
			r.Index = &index
		}
		return printers.Encode(out(w), f, r)
	}
	if verb != "" {
		faint := color.New(color.Faint)
		_, _ = faint.Fprintf(out(w), "%s note %d\n", verb, index)
	}
	pp := printers.PrettyPrint{Out: w}
	pp.Notes(key, notes)
	return nil
}

func out(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
