package searchselect

import (
	"fmt"

	"github.com/ruminaider/search-select/form"
)

// SelectOption commits entry i: it becomes the only highlighted entry, its
// value is written to the bound field, its label to the search surface and
// display, and a change notification is dispatched on the field. The panel
// stays as it is.
func (w *Widget) SelectOption(i int) error {
	e, err := w.entry(i)
	if err != nil {
		return err
	}
	return w.commit(e)
}

// OptionClick commits entry i and closes the panel.
func (w *Widget) OptionClick(i int) error {
	if err := w.SelectOption(i); err != nil {
		return err
	}
	w.CloseDropdown()
	return nil
}

type selectionState struct {
	active, committed int
	value             string
	clone             string
	query             string
	scrollTop         int
	label             string
	placeholder       bool
}

func (w *Widget) snapshot() selectionState {
	return selectionState{
		active:      w.active,
		committed:   w.committed,
		value:       w.field.Value(),
		clone:       w.clone.Value,
		query:       w.query,
		scrollTop:   w.list.ScrollTop,
		label:       w.result.Text,
		placeholder: w.result.HasClass(ClassPlaceholder),
	}
}

func (w *Widget) restore(s selectionState) {
	w.committed = s.committed
	w.field.SetValue(s.value)
	w.clone.Value = s.clone
	w.result.Text = s.label
	w.result.SetClass(ClassPlaceholder, s.placeholder)
	if w.query != s.query {
		w.applyFilter(s.query)
	}
	w.clearHighlight()
	if s.active >= 0 && s.active < len(w.entries) {
		w.active = s.active
		w.entries[s.active].Node.AddClass(ClassOptionSelected)
	}
	w.list.ScrollTop = s.scrollTop
}

// commit applies e all-or-nothing. Listeners are notified only after the
// new state has been checked.
//
// The label goes to the cloned field only. A dedicated search bar keeps the
// user's query; an open inline field is re-filtered so the query matches
// the text it now shows.
func (w *Widget) commit(e *Entry) error {
	prev := w.snapshot()

	w.highlight(e)
	w.committed = e.Index
	w.field.SetValue(e.Record.Value)
	w.clone.Value = e.Record.Label
	if w.cfg.ShowInlineSearch && w.open {
		w.applyFilter(e.Record.Label)
	}
	w.showLabel(e.Record.Label)

	if err := w.verify(); err != nil {
		w.restore(prev)
		w.log.Error("commit rolled back", "value", e.Record.Value, "err", err)
		return err
	}

	w.log.Debug("option committed", "index", e.Index, "value", e.Record.Value)
	w.field.Dispatch()
	return nil
}

// highlight gives e selected status, clearing it from every other entry,
// and scrolls e into view.
func (w *Widget) highlight(e *Entry) {
	w.clearHighlight()
	e.Node.AddClass(ClassOptionSelected)
	w.active = e.Index
	w.scrollIntoView(e)
}

func (w *Widget) clearHighlight() {
	for _, e := range w.entries {
		e.Node.RemoveClass(ClassOptionSelected)
	}
	w.active = -1
}

func (w *Widget) showLabel(label string) {
	w.result.Text = label
	w.result.RemoveClass(ClassPlaceholder)
}

func (w *Widget) showPlaceholder() {
	w.result.Text = w.field.Placeholder
	w.result.AddClass(ClassPlaceholder)
}

// onFieldChange re-syncs after anyone, this widget included, changes the
// bound field.
func (w *Widget) onFieldChange(ev form.ChangeEvent) {
	v := ev.Value
	if v == "" {
		w.committed = -1
		w.clearHighlight()
		w.showPlaceholder()
		if w.cfg.ShowInlineSearch && !w.open {
			w.clone.Value = ""
		}
		w.log.Debug("selection reset by field change")
		return
	}

	// Our own commit, or a repeat of it: keep the entry chosen by position
	// so duplicate values stay independently selectable.
	if c := w.Committed(); c != nil && c.Record.Value == v {
		w.highlight(c)
		w.showLabel(c.Record.Label)
		if w.cfg.ShowInlineSearch && !w.open {
			w.clone.Value = c.Record.Label
		}
		return
	}

	e := w.entryByValue(v)
	if e == nil {
		w.log.Debug("field value matches no entry", "value", v)
		return
	}
	w.highlight(e)
	w.committed = e.Index
	w.showLabel(e.Record.Label)
	if w.cfg.ShowInlineSearch && !w.open {
		w.clone.Value = e.Record.Label
	}
	w.log.Debug("selection synced from field", "index", e.Index, "value", v)
}

// syncFromField adopts a value the field already held before the widget
// was attached. No notification is dispatched.
func (w *Widget) syncFromField() {
	v := w.field.Value()
	if v == "" {
		return
	}
	if e := w.entryByValue(v); e != nil {
		w.committed = e.Index
		w.showLabel(e.Record.Label)
		if w.cfg.ShowInlineSearch {
			w.clone.Value = e.Record.Label
		}
	}
}

// checkInvariants verifies that at most one entry is highlighted and that
// the committed entry's value is the field's value.
func (w *Widget) checkInvariants() error {
	n := 0
	for _, e := range w.entries {
		if e.Node.HasClass(ClassOptionSelected) {
			n++
		}
	}
	if n > 1 {
		return &InvariantViolation{Reason: fmt.Sprintf("%d entries marked selected", n)}
	}
	if c := w.Committed(); c != nil && c.Record.Value != w.field.Value() {
		return &InvariantViolation{Reason: fmt.Sprintf("field holds %q, committed entry has %q", w.field.Value(), c.Record.Value)}
	}
	return nil
}
