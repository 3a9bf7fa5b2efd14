package searchselect

// applyFilter re-evaluates every entry against query and toggles
// visibility. Entries are never removed from the tree.
func (w *Widget) applyFilter(query string) {
	w.query = query
	visible := 0
	for _, e := range w.entries {
		ok := w.cfg.Filter(e.content(), query)
		e.hidden = !ok
		e.Node.Hidden = !ok
		e.Node.SetClass(ClassOptionHidden, !ok)
		if ok {
			visible++
		}
	}
	w.visible = visible
	w.noMatch.Hidden = visible != 0

	w.list.ScrollTop = 0
	if e := w.Highlighted(); e != nil && !e.hidden {
		w.scrollIntoView(e)
	}
	w.log.Debug("filter applied", "query", query, "visible", visible)
}

// resetFilter clears the search surface and shows every entry.
func (w *Widget) resetFilter() {
	w.SearchSurface().Value = ""
	w.applyFilter("")
}

func (w *Widget) visibleEntries() []*Entry {
	out := make([]*Entry, 0, w.visible)
	for _, e := range w.entries {
		if !e.hidden {
			out = append(out, e)
		}
	}
	return out
}
