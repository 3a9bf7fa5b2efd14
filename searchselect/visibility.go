package searchselect

// toggle flips the panel and dismiss layer together, moves focus to a
// dedicated search bar on open, and resets the filter either way.
func (w *Widget) toggle() {
	w.open = !w.open

	w.wrapper.SetClass(ClassWrapperHidden, !w.open)
	w.wrapper.Hidden = !w.open
	w.dismiss.SetClass(ClassFillDismissHidden, !w.open)
	w.dismiss.Hidden = !w.open

	if w.open && !w.cfg.ShowInlineSearch {
		w.focusSurface()
	}

	w.resetFilter()
	w.restoreInlineLabel()
	w.log.Debug("dropdown toggled", "open", w.open)
}

// restoreInlineLabel puts the committed label back into the cloned field
// after its text was cleared. In inline mode that field is the display
// while the panel is closed.
func (w *Widget) restoreInlineLabel() {
	if !w.cfg.ShowInlineSearch || w.open {
		return
	}
	if c := w.Committed(); c != nil {
		w.clone.Value = c.Record.Label
	}
}

func (w *Widget) focusSurface() {
	s := w.SearchSurface()
	s.Focused = true
	w.focused = true
}
