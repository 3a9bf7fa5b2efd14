// Package searchselect implements a searchable select control bound to a
// form field.
//
// A Widget renders a display summary, a search surface and a filterable
// list of options into a render.Node tree, and keeps them consistent with
// one bound form.Field. State lives in the Widget; the tree only reflects
// it. Hosts feed input through Click, Hover, KeyDown, KeyUp, Focus and Blur
// and draw the tree returned by Container.
//
// A Widget is not safe for concurrent use. Like any UI component it
// expects every call to come from the host's event loop.
package searchselect

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/ruminaider/search-select/form"
	"github.com/ruminaider/search-select/option"
	"github.com/ruminaider/search-select/render"
)

// Entry is one rendered option.
type Entry struct {
	Index  int
	Record option.Record
	Node   *render.Node

	hidden bool
}

// Hidden reports whether the entry is filtered out.
func (e *Entry) Hidden() bool { return e.hidden }

// content is the text the filter matches against.
func (e *Entry) content() string {
	if e.Record.Subtext == "" {
		return e.Record.Label
	}
	return e.Record.Label + " " + e.Record.Subtext
}

// Widget is a searchable select bound to one form field.
type Widget struct {
	cfg     Config
	log     *slog.Logger
	locator string
	field   *form.Field

	data    []option.Source
	entries []*Entry
	byNode  map[*render.Node]*Entry

	container *render.Node
	clone     *render.Node
	display   *render.Node
	result    *render.Node
	wrapper   *render.Node
	list      *render.Node
	searchBar *render.Node
	noMatch   *render.Node
	dismiss   *render.Node

	open      bool
	focused   bool
	query     string
	visible   int
	active    int // highlighted entry, -1 for none
	committed int // entry whose value is in the field, -1 for none

	unlisten func()
	verify   func() error // run before a commit is dispatched
}

// New binds a widget to the field that locator resolves to in f and builds
// its render tree.
func New(f *form.Form, locator string, opts ...Option) (*Widget, error) {
	if f == nil {
		return nil, &ConfigurationError{Field: "locator", Reason: "no form to resolve against"}
	}
	field, err := f.Lookup(locator)
	if err != nil {
		return nil, &ConfigurationError{Field: "locator", Reason: "bound field not found", Err: err}
	}

	cfg := buildConfig(opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	records, err := option.Normalize(cfg.Data, cfg.Sort)
	if err != nil {
		return nil, &ConfigurationError{Field: "data", Reason: "malformed option", Err: err}
	}

	w := &Widget{
		cfg:       cfg,
		log:       cfg.Logger.With("field", field.ID),
		locator:   locator,
		field:     field,
		data:      slices.Clone(cfg.Data),
		active:    -1,
		committed: -1,
	}
	w.verify = w.checkInvariants
	w.buildContainer()
	w.buildDropdown(records)
	w.resetFilter()
	w.syncFromField()
	w.unlisten = field.OnChange(w.onFieldChange)

	w.log.Debug("widget created", "container", w.container.ID, "entries", len(w.entries))
	return w, nil
}

func newContainerID() string {
	return "searchSelect-" + uuid.NewString()[:8]
}

// Detach stops listening to the bound field. The widget must not be used
// afterwards.
func (w *Widget) Detach() {
	if w.unlisten != nil {
		w.unlisten()
		w.unlisten = nil
	}
}

// SetData replaces the option data and rebuilds the panel content in place.
// Filter and highlight are reset; the bound field is left untouched.
func (w *Widget) SetData(src ...option.Source) error {
	records, err := option.Normalize(src, w.cfg.Sort)
	if err != nil {
		return &ConfigurationError{Field: "data", Reason: "malformed option", Err: err}
	}
	w.data = slices.Clone(src)
	w.wrapper.Clear()
	w.buildDropdown(records)
	if w.focused && !w.cfg.ShowInlineSearch {
		w.searchBar.Focused = true
	}
	w.active = -1
	w.committed = -1
	w.resetFilter()

	// Keep the display mirroring the field against the new entries.
	if v := w.field.Value(); v != "" {
		if e := w.entryByValue(v); e != nil {
			w.committed = e.Index
			w.showLabel(e.Record.Label)
		}
	}
	w.restoreInlineLabel()
	w.log.Debug("data replaced", "entries", len(w.entries))
	return nil
}

// Data returns the option data the current render list was built from.
func (w *Widget) Data() []option.Source {
	return slices.Clone(w.data)
}

// SetBoundDisplay sets the visible cloned field's text, and its placeholder
// when placeholder is not empty.
func (w *Widget) SetBoundDisplay(text, placeholder string) {
	w.clone.Value = text
	if placeholder != "" {
		w.clone.Placeholder = placeholder
	}
}

// OpenDropdown opens the panel if it is closed. With focus set, the
// dedicated search bar also takes focus. A disabled field stays closed.
func (w *Widget) OpenDropdown(focus bool) {
	if w.field.Disabled {
		return
	}
	if focus && !w.cfg.ShowInlineSearch {
		w.focusSurface()
	}
	if !w.open {
		w.toggle()
	}
}

// CloseDropdown closes the panel if it is open.
func (w *Widget) CloseDropdown() {
	if w.open {
		w.toggle()
	}
}

// Container returns the root of the render tree.
func (w *Widget) Container() *render.Node { return w.container }

// SearchSurface returns the node the user types the query into: the
// visible cloned field in inline mode, the panel's search bar otherwise.
func (w *Widget) SearchSurface() *render.Node {
	if w.cfg.ShowInlineSearch {
		return w.clone
	}
	return w.searchBar
}

// Field returns the bound field.
func (w *Widget) Field() *form.Field { return w.field }

// Config returns a copy of the widget's configuration.
func (w *Widget) Config() Config {
	c := w.cfg
	c.Data = slices.Clone(c.Data)
	return c
}

// IsOpen reports whether the panel is shown.
func (w *Widget) IsOpen() bool { return w.open }

// Focused reports whether the search surface has focus.
func (w *Widget) Focused() bool { return w.focused }

// Query returns the active filter query.
func (w *Widget) Query() string { return w.query }

// VisibleCount returns how many entries pass the current filter.
func (w *Widget) VisibleCount() int { return w.visible }

// Entries returns the render list in render order.
func (w *Widget) Entries() []*Entry { return slices.Clone(w.entries) }

// Highlighted returns the entry carrying selected status, if any.
func (w *Widget) Highlighted() *Entry {
	if w.active < 0 {
		return nil
	}
	return w.entries[w.active]
}

// Committed returns the entry whose value was last committed to the
// bound field, if it is still rendered.
func (w *Widget) Committed() *Entry {
	if w.committed < 0 {
		return nil
	}
	return w.entries[w.committed]
}

// EntryFor returns the entry rendered as n or containing n.
func (w *Widget) EntryFor(n *render.Node) (*Entry, error) {
	if n == nil {
		return nil, ErrUnknownEntry
	}
	if li := n.Closest(ClassOption); li != nil {
		if e, ok := w.byNode[li]; ok {
			return e, nil
		}
	}
	return nil, ErrUnknownEntry
}

func (w *Widget) entry(i int) (*Entry, error) {
	if i < 0 || i >= len(w.entries) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrUnknownEntry, i, len(w.entries))
	}
	return w.entries[i], nil
}

func (w *Widget) entryByValue(v string) *Entry {
	for _, e := range w.entries {
		if e.Record.Value == v {
			return e
		}
	}
	return nil
}
