package searchselect

import (
	"github.com/ruminaider/search-select/option"
	"github.com/ruminaider/search-select/render"
)

// buildContainer creates the parts of the tree that survive SetData:
// container, cloned field, display summary, the empty panel wrapper and the
// dismiss layer.
func (w *Widget) buildContainer() {
	w.container = render.New("div", ClassContainer)
	w.container.ID = newContainerID()

	w.clone = render.New("input", ClassInput)
	w.clone.ID = "cloned-input-" + w.locator
	w.clone.Placeholder = w.field.Placeholder
	w.clone.Hidden = !w.cfg.ShowInlineSearch

	w.display = render.New("div", ClassDisplay, w.cfg.VisibleClass)
	if w.field.Disabled {
		w.display.AddClass(ClassDisplayDisabled)
	}
	w.display.Hidden = w.cfg.ShowInlineSearch

	w.result = render.New("span", ClassResult, ClassNoSelect, ClassPlaceholder)
	w.result.Text = w.field.Placeholder
	w.display.Append(w.result)

	w.wrapper = render.New("div", ClassWrapper, ClassWrapperHidden)
	if w.cfg.PanelSide == PanelRight {
		w.wrapper.AddClass(ClassWrapperRight)
	}
	w.wrapper.Hidden = true

	w.dismiss = render.New("div", ClassFillDismiss, ClassFillDismissHidden)
	w.dismiss.Hidden = true

	w.container.Append(w.clone, w.display, w.wrapper, w.dismiss)
}

// buildDropdown fills the wrapper with the no-match entry, the entry list
// and the search bar, and replaces the render list.
func (w *Widget) buildDropdown(records []option.Record) {
	dropdown := render.New("div", ClassDropdown)

	w.noMatch = render.New("div", ClassNoMatch)
	w.noMatch.Text = w.cfg.EmptyResultText
	w.noMatch.Hidden = true

	w.list = render.New("ul", ClassOptions)
	w.list.Height = w.cfg.MaxVisibleEntries

	w.entries = make([]*Entry, 0, len(records))
	w.byNode = make(map[*render.Node]*Entry, len(records))
	for i, rec := range records {
		e := &Entry{Index: i, Record: rec, Node: w.optionNode(rec)}
		w.entries = append(w.entries, e)
		w.byNode[e.Node] = e
		w.list.Append(e.Node)
	}

	search := render.New("div", ClassSearch)
	if w.cfg.SearchPlacement == SearchTop {
		search.AddClass(ClassSearchTop)
	} else {
		search.AddClass(ClassSearchBottom)
	}
	search.Hidden = w.cfg.ShowInlineSearch

	w.searchBar = render.New("input", ClassSearchBar)
	w.searchBar.Placeholder = w.field.Attr("search-placeholder")
	search.Append(w.searchBar)

	dropdown.Append(w.noMatch)
	if w.cfg.SearchPlacement == SearchTop {
		dropdown.Append(search, w.list)
	} else {
		dropdown.Append(w.list, search)
	}
	w.wrapper.Append(dropdown)
}

func (w *Widget) optionNode(rec option.Record) *render.Node {
	li := render.New("li", ClassOption, ClassNoSelect)
	li.Text = rec.Label
	li.SetAttr(AttrValue, rec.Value)
	li.SetAttr(AttrLabel, rec.Label)
	li.SetAttr(AttrInput, w.field.ID)
	if rec.Subtext != "" {
		sub := render.New("span", ClassOptionSubtext)
		sub.Text = rec.Subtext
		li.Append(sub)
	}
	return li
}
