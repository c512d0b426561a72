// Package ui starts the interactive calendar.
package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/calprint/pkg/app"
	"tableflip.dev/calprint/pkg/store"
	"tableflip.dev/calprint/pkg/tui/calendarview"
)

// ErrNotTerminal is returned when stdout can not host the UI.
var ErrNotTerminal = errors.New("ui: stdout is not a terminal")

// UI runs the calendar view. When Store is set, notes written by other
// processes are reloaded while the UI is open.
type UI struct {
	Service *app.Service
	Store   *store.Disk
}

// Do blocks until the user quits.
func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil {
		return errors.New("can not open ui, no service")
	}
	if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNotTerminal
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var changes <-chan store.Event
	if u.Store != nil {
		ch, err := u.Store.Watch(ctx)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "ui: live reload disabled: %v\n", err)
		} else {
			changes = ch
		}
	}
	return calendarview.Run(u.Service, changes)
}
