// Package modal holds the submission state of the add, edit, delete and view
// dialogs.
package modal

import (
	"context"
	"errors"
	"sync"
)

type Phase int

const (
	Closed Phase = iota
	Open
	Submitting
)

func (p Phase) String() string {
	switch p {
	case Open:
		return "open"
	case Submitting:
		return "submitting"
	default:
		return "closed"
	}
}

type Kind string

const (
	KindAdd    Kind = "add"
	KindEdit   Kind = "edit"
	KindDelete Kind = "delete"
	KindView   Kind = "view"
)

var (
	ErrNotOpen = errors.New("dialog is not open")
	ErrBusy    = errors.New("dialog is already submitting")
)

// Dialog moves closed -> open -> submitting, then back to closed when the
// submission succeeds or to open, carrying the error, when it fails.
type Dialog struct {
	mu    sync.Mutex
	kind  Kind
	row   string
	phase Phase
	err   error
}

func NewDialog(kind Kind, row string) *Dialog {
	return &Dialog{kind: kind, row: row}
}

func (d *Dialog) Kind() Kind  { return d.kind }
func (d *Dialog) Row() string { return d.row }

func (d *Dialog) Phase() Phase {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.phase
}

// Open shows the dialog. Opening an open or submitting dialog is a no-op.
func (d *Dialog) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.phase == Closed {
		d.phase = Open
		d.err = nil
	}
}

// Close dismisses the dialog unless a submission is in flight.
func (d *Dialog) Close() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.phase == Submitting {
		return false
	}
	d.phase = Closed
	d.err = nil
	return true
}

// Busy drives the disabled submit control.
func (d *Dialog) Busy() bool {
	return d.Phase() == Submitting
}

// Err is the failure of the last submission, shown while the dialog stays open.
func (d *Dialog) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Submit runs fn while the dialog is in the submitting phase. fn runs
// without the lock held; a second Submit during that time gets ErrBusy.
func (d *Dialog) Submit(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := d.begin(); err != nil {
		return err
	}
	err := fn(ctx)
	d.finish(err)
	return err
}

func (d *Dialog) begin() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch d.phase {
	case Closed:
		return ErrNotOpen
	case Submitting:
		return ErrBusy
	}
	d.phase = Submitting
	d.err = nil
	return nil
}

// finish closes the dialog on success and reopens it with err on failure.
func (d *Dialog) finish(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.phase = Open
		d.err = err
		return
	}
	d.phase = Closed
}

// SubmitLabel returns busy while submitting and idle otherwise, e.g.
// "Save changes" and "Saving...".
func (d *Dialog) SubmitLabel(idle, busy string) string {
	if d.Busy() {
		return busy
	}
	return idle
}
