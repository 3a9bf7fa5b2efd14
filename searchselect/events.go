package searchselect

import "github.com/ruminaider/search-select/render"

// Key identifies the keys the widget reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeyEscape
	KeyUp
	KeyDown
)

// editsText reports whether the key can change the search text.
func (k Key) editsText() bool { return k == KeyOther }

// KeyEvent is a key press on the search surface.
type KeyEvent struct {
	Key  Key
	Text string // the typed text for KeyOther, if any

	prevented bool
}

// PreventDefault marks the key as consumed: the host must not apply it to
// the search surface's text or scroll position.
func (e *KeyEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e KeyEvent) DefaultPrevented() bool { return e.prevented }

// KeyDown handles a key press before the host edits the search text.
// Other keys leave the bound field alone.
func (w *Widget) KeyDown(ev *KeyEvent) {
	switch ev.Key {
	case KeyEnter:
		ev.PreventDefault()
		w.confirm()
		w.Blur()
	case KeyEscape:
		w.CloseDropdown()
	case KeyUp:
		ev.PreventDefault()
		w.Navigate(Previous)
	case KeyDown:
		ev.PreventDefault()
		w.Navigate(Next)
	}

	if w.cfg.OnKeyDown != nil {
		w.cfg.OnKeyDown(*ev)
	}
}

// KeyUp runs the filter against the search surface's current text. Arrow,
// Enter and Escape never re-filter.
func (w *Widget) KeyUp(ev KeyEvent) {
	if !ev.Key.editsText() {
		return
	}
	w.applyFilter(w.SearchSurface().Value)
}

// SetSearchText replaces the search surface's text without filtering; the
// host calls it between KeyDown and KeyUp.
func (w *Widget) SetSearchText(text string) {
	w.SearchSurface().Value = text
}

// Search sets the search text and filters, as one content-change event.
func (w *Widget) Search(text string) {
	w.SetSearchText(text)
	w.applyFilter(text)
}

// confirm handles Enter inside an open panel: a visible highlighted entry
// is committed, otherwise the first visible entry is clicked.
func (w *Widget) confirm() {
	if !w.open {
		return
	}
	if e := w.Highlighted(); e != nil && !e.hidden {
		if w.committed != e.Index {
			if err := w.commit(e); err != nil {
				return
			}
		}
		w.CloseDropdown()
		return
	}
	if vis := w.visibleEntries(); len(vis) > 0 {
		_ = w.OptionClick(vis[0].Index)
	}
}

// Focus gives the search surface focus. Focusing the inline surface opens
// the panel.
func (w *Widget) Focus() {
	w.focusSurface()
	if w.cfg.ShowInlineSearch && !w.open && !w.field.Disabled {
		w.toggle()
	}
}

// Blur removes focus from the search surface and fires the blur callback.
func (w *Widget) Blur() {
	if !w.focused {
		return
	}
	w.focused = false
	w.SearchSurface().Focused = false
	if w.cfg.OnBlur != nil {
		w.cfg.OnBlur()
	}
}

// Click dispatches a click on n. Clicks on nodes outside the container or
// not currently visible are ignored.
func (w *Widget) Click(n *render.Node) {
	if n == nil || !w.container.Contains(n) || !n.Visible() {
		return
	}

	switch {
	case n.Closest(ClassOption) != nil:
		if e, err := w.EntryFor(n); err == nil {
			_ = w.OptionClick(e.Index)
		}
	case n.Closest(ClassNoMatch) != nil:
		w.noMatch.Hidden = true
		w.CloseDropdown()
	case n.Closest(ClassDisplay) != nil:
		if !w.field.Disabled {
			w.toggle()
		}
	case n.Closest(ClassFillDismiss) != nil:
		w.CloseDropdown()
	case n == w.clone || n == w.searchBar:
		w.Focus()
	}

	if w.cfg.OnActivate != nil {
		w.cfg.OnActivate()
	}
}

// Hover handles the pointer entering n. Hovering an entry clears the
// keyboard highlight without committing anything.
func (w *Widget) Hover(n *render.Node) {
	if _, err := w.EntryFor(n); err != nil {
		return
	}
	w.clearHighlight()
}
