// Package form models the host page's form fields that a widget binds to.
// A Field is the single source of truth for a committed value; anyone may
// change it, and everyone interested listens for its change notification.
package form

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrNotFound is returned when a locator resolves to no field.
var ErrNotFound = errors.New("field not found")

// ChangeEvent is delivered to change listeners.
type ChangeEvent struct {
	Field *Field
	Value string
}

// Field is a named form value with change listeners.
type Field struct {
	ID          string
	Name        string
	Placeholder string
	Disabled    bool

	mu        sync.Mutex
	value     string
	attrs     map[string]string
	listeners map[int]func(ChangeEvent)
	nextID    int
}

// NewField creates a field with the given id.
func NewField(id string) *Field {
	return &Field{ID: id, Name: id}
}

// Value returns the current value.
func (f *Field) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// SetValue assigns the value without notifying listeners, like assigning
// an input's value property.
func (f *Field) SetValue(v string) {
	f.mu.Lock()
	f.value = v
	f.mu.Unlock()
}

// Change assigns the value and dispatches a change notification.
func (f *Field) Change(v string) {
	f.SetValue(v)
	f.Dispatch()
}

// Dispatch notifies every listener of the current value. Listeners run
// synchronously, in registration order, outside the field's lock so they
// may read or write the field.
func (f *Field) Dispatch() {
	f.mu.Lock()
	ids := make([]int, 0, len(f.listeners))
	for id := range f.listeners {
		ids = append(ids, id)
	}
	fns := make([]func(ChangeEvent), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, f.listeners[id])
	}
	ev := ChangeEvent{Field: f, Value: f.value}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// OnChange registers fn and returns a function that removes it.
func (f *Field) OnChange(fn func(ChangeEvent)) (remove func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listeners == nil {
		f.listeners = make(map[int]func(ChangeEvent))
	}
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	return func() {
		f.mu.Lock()
		delete(f.listeners, id)
		f.mu.Unlock()
	}
}

// SetAttr sets a free-form attribute such as "search-placeholder".
func (f *Field) SetAttr(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.attrs == nil {
		f.attrs = make(map[string]string)
	}
	f.attrs[key] = value
}

// Attr returns an attribute or "".
func (f *Field) Attr(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attrs[key]
}

// Form is an ordered set of fields.
type Form struct {
	fields []*Field
}

// New creates a form holding fields.
func New(fields ...*Field) *Form {
	return &Form{fields: fields}
}

// Lookup resolves a locator. "#id" matches by ID, "[name=x]" by name and a
// bare word matches either.
func (fm *Form) Lookup(locator string) (*Field, error) {
	loc := strings.TrimSpace(locator)
	if loc == "" {
		return nil, fmt.Errorf("empty locator: %w", ErrNotFound)
	}

	match := func(f *Field) bool { return f.ID == loc || f.Name == loc }
	switch {
	case strings.HasPrefix(loc, "#"):
		id := loc[1:]
		match = func(f *Field) bool { return f.ID == id }
	case strings.HasPrefix(loc, "[name=") && strings.HasSuffix(loc, "]"):
		name := strings.Trim(loc[len("[name="):len(loc)-1], `"'`)
		match = func(f *Field) bool { return f.Name == name }
	}

	for _, f := range fm.fields {
		if match(f) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("locator %q: %w", locator, ErrNotFound)
}
