package modal

import (
	"context"
	"sync"
)

type key struct {
	kind Kind
	row  string
}

// Registry tracks submissions in flight, one per row and kind, so a second
// submit of the same row is refused while the first is running. Dialogs of
// different rows are independent. An entry lives only as long as its
// submission.
type Registry struct {
	mu      sync.Mutex
	dialogs map[key]*Dialog
}

func NewRegistry() *Registry {
	return &Registry{dialogs: make(map[key]*Dialog)}
}

// Get returns the dialog currently submitting for kind and row.
func (r *Registry) Get(kind Kind, row string) (*Dialog, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.dialogs[key{kind, row}]
	return d, ok
}

// Submit opens a dialog for kind and row and submits fn through it. When a
// submission for the same row is already running, that dialog is returned
// with ErrBusy and fn is not called. Otherwise the dialog is forgotten once
// fn returns: closed on success, open with the error on failure.
func (r *Registry) Submit(ctx context.Context, kind Kind, row string, fn func(ctx context.Context) error) (*Dialog, error) {
	k := key{kind, row}

	r.mu.Lock()
	if cur, ok := r.dialogs[k]; ok {
		r.mu.Unlock()
		return cur, ErrBusy
	}
	d := NewDialog(kind, row)
	d.Open()
	if err := d.begin(); err != nil {
		r.mu.Unlock()
		return d, err
	}
	r.dialogs[k] = d
	r.mu.Unlock()

	err := fn(ctx)
	d.finish(err)

	r.mu.Lock()
	delete(r.dialogs, k)
	r.mu.Unlock()
	return d, err
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.dialogs)
}
