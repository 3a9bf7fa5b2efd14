package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/search-select/render"
	"github.com/ruminaider/search-select/searchselect"
)

// line is one rendered terminal row and the node a click on it targets.
type line struct {
	text string
	node *render.Node
}

func (m Model) View() string {
	lines := m.layout()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text
		if m.width > 0 {
			out[i] = ansi.Truncate(l.text, m.width, "")
		}
	}
	return strings.Join(out, "\n")
}

// layout renders the widget's tree top to bottom. Hidden nodes take no
// rows, so the same layout resolves mouse rows back to nodes.
func (m Model) layout() []line {
	var lines []line
	if m.Title != "" {
		lines = append(lines, line{text: TitleStyle.Render(m.Title)})
	}

	for _, n := range m.widget.Container().Children() {
		if n.Hidden {
			continue
		}
		switch {
		case n.HasClass(searchselect.ClassInput):
			lines = append(lines, line{text: m.renderInline(n), node: n})
		case n.HasClass(searchselect.ClassDisplay):
			lines = append(lines, line{text: m.renderDisplay(n), node: n})
		case n.HasClass(searchselect.ClassWrapper):
			lines = append(lines, m.renderPanel(n)...)
		}
	}

	return append(lines, line{text: m.helpLine()})
}

func (m Model) arrow() string {
	if m.widget.IsOpen() {
		return ArrowStyle.Render(" ▴")
	}
	return ArrowStyle.Render(" ▾")
}

func (m Model) renderInline(n *render.Node) string {
	pw := m.panelWidth()
	if n.Focused && m.widget.IsOpen() {
		return m.input.View() + m.arrow()
	}
	text := n.Value
	style := EntryStyle
	if text == "" {
		text = n.Placeholder
		style = PlaceholderStyle
	}
	return style.Render(pad(ansi.Truncate(text, pw-2, "…"), pw-2)) + m.arrow()
}

func (m Model) renderDisplay(n *render.Node) string {
	pw := m.panelWidth()
	result := n.Query(searchselect.ClassResult)
	text := ""
	if result != nil {
		text = result.Text
	}
	text = pad(ansi.Truncate(text, pw-2, "…"), pw-2)

	if n.HasClass(searchselect.ClassDisplayDisabled) {
		return DisplayDisabledStyle.Render(text + "  ")
	}
	if result != nil && result.HasClass(searchselect.ClassPlaceholder) {
		text = PlaceholderStyle.Render(text)
	}
	return DisplayStyle.Render(text) + m.arrow()
}

func (m Model) renderPanel(wrapper *render.Node) []line {
	dropdown := wrapper.Query(searchselect.ClassDropdown)
	if dropdown == nil {
		return nil
	}
	pw := m.panelWidth()

	var inner []line
	for _, c := range dropdown.Children() {
		if c.Hidden {
			continue
		}
		switch {
		case c.HasClass(searchselect.ClassNoMatch):
			inner = append(inner, line{text: NoMatchStyle.Render(ansi.Truncate(c.Text, pw, "…")), node: c})
		case c.HasClass(searchselect.ClassSearch):
			inner = append(inner, m.renderSearch(c, pw)...)
		case c.HasClass(searchselect.ClassOptions):
			inner = append(inner, m.renderEntries(c, pw)...)
		}
	}

	texts := make([]string, len(inner))
	for i, l := range inner {
		texts[i] = l.text
	}
	box := strings.Split(PanelStyle.Render(strings.Join(texts, "\n")), "\n")

	indent := ""
	if wrapper.HasClass(searchselect.ClassWrapperRight) && m.width > 0 {
		if gap := m.width - lipgloss.Width(box[0]); gap > 0 {
			indent = strings.Repeat(" ", gap)
		}
	}

	out := make([]line, len(box))
	for i, row := range box {
		out[i] = line{text: indent + row, node: wrapper}
		if i > 0 && i-1 < len(inner) && inner[i-1].node != nil {
			out[i].node = inner[i-1].node
		}
	}
	return out
}

func (m Model) renderSearch(search *render.Node, pw int) []line {
	bar := search.Query(searchselect.ClassSearchBar)
	rule := line{text: SeparatorStyle.Render(strings.Repeat("─", pw)), node: search}
	input := line{text: SearchPromptStyle.Render("› ") + m.input.View(), node: bar}
	if search.HasClass(searchselect.ClassSearchTop) {
		return []line{input, rule}
	}
	return []line{rule, input}
}

func (m Model) renderEntries(list *render.Node, pw int) []line {
	var visible []*render.Node
	for _, c := range list.Children() {
		if !c.Hidden {
			visible = append(visible, c)
		}
	}

	start := min(list.ScrollTop, len(visible))
	end := len(visible)
	if list.Height > 0 {
		end = min(start+list.Height, len(visible))
	}

	var committed *render.Node
	if e := m.widget.Committed(); e != nil {
		committed = e.Node
	}

	var out []line
	if start > 0 {
		out = append(out, line{text: ScrollHintStyle.Render(fmt.Sprintf("↑ %d more", start)), node: list})
	}
	for _, n := range visible[start:end] {
		out = append(out, line{text: renderEntry(n, n == committed, pw), node: n})
	}
	if rest := len(visible) - end; rest > 0 {
		out = append(out, line{text: ScrollHintStyle.Render(fmt.Sprintf("↓ %d more", rest)), node: list})
	}
	return out
}

func renderEntry(n *render.Node, committed bool, pw int) string {
	mark := "  "
	if committed {
		mark = "✓ "
	}
	label := n.Attr(searchselect.AttrLabel)
	subtext := ""
	if sub := n.Query(searchselect.ClassOptionSubtext); sub != nil {
		subtext = sub.Text
	}

	if n.HasClass(searchselect.ClassOptionSelected) {
		plain := mark + label
		if subtext != "" {
			plain += "  " + subtext
		}
		return HighlightStyle.Render(pad(ansi.Truncate(plain, pw, "…"), pw))
	}

	text := mark
	if committed {
		text = CommittedMarkStyle.Render(mark)
	}
	text += EntryStyle.Render(label)
	if subtext != "" {
		text += "  " + SubtextStyle.Render(subtext)
	}
	return ansi.Truncate(text, pw, "…")
}

func (m Model) helpLine() string {
	type hint struct{ key, desc string }
	hints := []hint{{"enter", "submit"}, {"esc", "cancel"}, {"type", "search"}}
	if m.widget.IsOpen() {
		hints = []hint{{"↑/↓", "move"}, {"enter", "select"}, {"esc", "close"}}
	}
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = StatusBarKeyStyle.Render(h.key) + " " + h.desc
	}
	return StatusBarStyle.Render(strings.Join(parts, " · "))
}

// pad right-fills s with spaces to width cells.
func pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
