package searchselect

// Direction of keyboard navigation.
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// Navigate moves the highlight to the adjacent visible entry. With nothing
// highlighted, the first visible entry is highlighted whatever the
// direction. Moving past either end does nothing. Navigation never commits.
func (w *Widget) Navigate(dir Direction) {
	vis := w.visibleEntries()
	if len(vis) == 0 {
		return
	}

	cur := -1
	for i, e := range vis {
		if e.Index == w.active {
			cur = i
			break
		}
	}
	if cur < 0 {
		w.highlight(vis[0])
		return
	}

	next := cur + int(dir)
	if next < 0 || next >= len(vis) {
		return
	}
	w.highlight(vis[next])
}

// scrollIntoView adjusts the list's scroll offset so e is within the
// viewport. Offsets count visible entries only.
func (w *Widget) scrollIntoView(e *Entry) {
	h := w.list.Height
	if h <= 0 || e.hidden {
		return
	}

	row := 0
	for _, x := range w.entries {
		if x == e {
			break
		}
		if !x.hidden {
			row++
		}
	}

	if row < w.list.ScrollTop {
		w.list.ScrollTop = row
	}
	if row >= w.list.ScrollTop+h {
		w.list.ScrollTop = row - h + 1
	}
}
