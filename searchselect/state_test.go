package searchselect

import (
	"testing"

	"github.com/ruminaider/search-select/form"
	"github.com/ruminaider/search-select/match"
	"github.com/ruminaider/search-select/option"
	"github.com/ruminaider/search-select/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Visibility ---

func TestOpenCloseIdempotent(t *testing.T) {
	w, _ := newWidget(t)
	root := w.Container()
	wrapper, dismiss := root.Query(ClassWrapper), root.Query(ClassFillDismiss)

	w.OpenDropdown(false)
	w.OpenDropdown(false)
	assert.True(t, w.IsOpen())
	assert.False(t, wrapper.HasClass(ClassWrapperHidden))
	assert.False(t, dismiss.HasClass(ClassFillDismissHidden))
	assert.False(t, wrapper.Hidden)
	assert.False(t, dismiss.Hidden)

	w.CloseDropdown()
	w.CloseDropdown()
	assert.False(t, w.IsOpen())
	assert.True(t, wrapper.HasClass(ClassWrapperHidden))
	assert.True(t, dismiss.HasClass(ClassFillDismissHidden))
	assert.True(t, wrapper.Hidden)
	assert.True(t, dismiss.Hidden)
}

func TestToggleResetsFilter(t *testing.T) {
	w, _ := newWidget(t)
	w.OpenDropdown(false)
	w.Search("z")
	require.Zero(t, w.VisibleCount())

	w.CloseDropdown()
	assert.Equal(t, "", w.Query())
	assert.Equal(t, 3, w.VisibleCount())
	assert.True(t, w.Container().Query(ClassNoMatch).Hidden)

	w.Search("b")
	w.OpenDropdown(false)
	assert.Equal(t, 3, w.VisibleCount())
	assert.Equal(t, "", w.SearchSurface().Value)
}

func TestDedicatedSearchTakesFocusOnOpen(t *testing.T) {
	w, _ := newWidget(t, WithInlineSearch(false))
	bar := w.Container().Query(ClassSearchBar)

	w.OpenDropdown(false)
	assert.True(t, w.Focused())
	assert.True(t, bar.Focused)
}

func TestInlineSearchNotFocusedByOpen(t *testing.T) {
	w, _ := newWidget(t)
	w.OpenDropdown(true)
	assert.True(t, w.IsOpen())
	assert.False(t, w.Focused())
}

func TestInlineFocusOpens(t *testing.T) {
	w, _ := newWidget(t)
	w.Click(w.SearchSurface())
	assert.True(t, w.IsOpen())
	assert.True(t, w.Focused())

	w.Focus()
	assert.True(t, w.IsOpen(), "focusing again keeps the panel open")
}

func TestInlineCloseRestoresLabel(t *testing.T) {
	w, _ := newWidget(t)
	require.NoError(t, w.OptionClick(1))
	clone := w.SearchSurface()
	assert.Equal(t, "Banana", clone.Value)

	w.OpenDropdown(false)
	assert.Equal(t, "", clone.Value)
	typeText(w, "ch")
	w.CloseDropdown()
	assert.Equal(t, "Banana", clone.Value)
}

// --- Filter ---

func TestFilterZeroResults(t *testing.T) {
	w, _ := newWidget(t, WithFilter(match.Contains))
	w.OpenDropdown(false)

	typeText(w, "z")
	assert.Zero(t, w.VisibleCount())
	assert.False(t, w.Container().Query(ClassNoMatch).Hidden)
	for _, n := range w.Container().QueryAll(ClassOption) {
		assert.True(t, n.HasClass(ClassOptionHidden))
	}
	assert.Len(t, w.Container().QueryAll(ClassOption), 3, "entries are never removed")
}

func TestFilterContainsKeepsOrder(t *testing.T) {
	w, _ := newWidget(t, WithFilter(match.Contains))
	w.OpenDropdown(false)

	typeText(w, "a")
	assert.Equal(t, 2, w.VisibleCount())
	assert.Equal(t, []string{"Apple", "Banana"}, visibleLabels(w))
	assert.True(t, w.Container().Query(ClassNoMatch).Hidden)
}

func TestFilterStartsWithDefault(t *testing.T) {
	w, _ := newWidget(t)
	w.OpenDropdown(false)
	typeText(w, "b")
	assert.Equal(t, []string{"Banana"}, visibleLabels(w))
	assert.Equal(t, "b", w.Query())
}

func TestFilterMatchesSubtext(t *testing.T) {
	w, _ := newWidget(t,
		WithData(option.RecordOption{Label: "Lemon", Subtext: "sour"}, option.StringOption("Melon")),
		WithFilter(match.Contains))
	w.Search("sour")
	assert.Equal(t, []string{"Lemon"}, visibleLabels(w))
}

func TestArrowKeyUpDoesNotRefilter(t *testing.T) {
	w, _ := newWidget(t)
	w.OpenDropdown(false)
	typeText(w, "c")
	require.Equal(t, 1, w.VisibleCount())

	// Text changed behind the filter's back; arrows must not pick it up.
	w.SetSearchText("")
	w.KeyUp(KeyEvent{Key: KeyDown})
	w.KeyUp(KeyEvent{Key: KeyUp})
	assert.Equal(t, 1, w.VisibleCount())

	w.KeyUp(KeyEvent{Key: KeyOther})
	assert.Equal(t, 3, w.VisibleCount())
}

// --- Navigation ---

func TestNavigateFromNothingSelectsFirst(t *testing.T) {
	for _, dir := range []Direction{Previous, Next} {
		w, f := newWidget(t)
		w.OpenDropdown(false)
		w.Navigate(dir)
		require.NotNil(t, w.Highlighted())
		assert.Equal(t, 0, w.Highlighted().Index)
		assert.Equal(t, "", f.Value(), "navigation never commits")
		assert.True(t, w.IsOpen())
	}
}

func TestNavigateBoundaries(t *testing.T) {
	w, _ := newWidget(t)
	w.OpenDropdown(false)

	for i := 0; i < 3; i++ {
		press(w, KeyDown)
	}
	require.Equal(t, 2, w.Highlighted().Index)

	press(w, KeyDown)
	assert.Equal(t, 2, w.Highlighted().Index, "no wraparound past the end")

	press(w, KeyUp)
	press(w, KeyUp)
	press(w, KeyUp)
	assert.Equal(t, 0, w.Highlighted().Index, "no wraparound past the start")
	assert.Equal(t, 1, selectedNodes(w))
}

func TestNavigateSkipsHidden(t *testing.T) {
	w, _ := newWidget(t, WithStrings("Apple", "Avocado", "Banana", "Apricot"))
	w.OpenDropdown(false)
	typeText(w, "a")
	require.Equal(t, []string{"Apple", "Avocado", "Apricot"}, visibleLabels(w))

	press(w, KeyDown)
	press(w, KeyDown)
	press(w, KeyDown)
	assert.Equal(t, "Apricot", w.Highlighted().Record.Label)
}

func TestNavigateWithHiddenHighlightRestarts(t *testing.T) {
	w, _ := newWidget(t)
	w.OpenDropdown(false)
	press(w, KeyDown)
	press(w, KeyDown)
	require.Equal(t, "Banana", w.Highlighted().Record.Label)

	typeText(w, "c")
	press(w, KeyDown)
	assert.Equal(t, "Cherry", w.Highlighted().Record.Label)
}

func TestNavigateEmptyIsNoop(t *testing.T) {
	w, _ := newWidget(t)
	w.OpenDropdown(false)
	typeText(w, "z")
	press(w, KeyDown)
	assert.Nil(t, w.Highlighted())
}

func TestArrowKeysPreventDefault(t *testing.T) {
	w, _ := newWidget(t)
	assert.True(t, press(w, KeyDown).DefaultPrevented())
	assert.True(t, press(w, KeyUp).DefaultPrevented())
	assert.True(t, press(w, KeyEnter).DefaultPrevented())
	assert.False(t, press(w, KeyOther).DefaultPrevented())
	assert.False(t, press(w, KeyEscape).DefaultPrevented())
}

func TestNavigateScrollsIntoView(t *testing.T) {
	w, _ := newWidget(t, WithStrings("a1", "a2", "a3", "a4", "a5"), WithMaxVisibleEntries(2))
	list := w.Container().Query(ClassOptions)
	w.OpenDropdown(false)

	for i := 0; i < 4; i++ {
		w.Navigate(Next)
	}
	assert.Equal(t, 3, w.Highlighted().Index)
	assert.Equal(t, 2, list.ScrollTop)

	w.Navigate(Previous)
	assert.Equal(t, 2, list.ScrollTop, "already in view")

	w.Navigate(Previous)
	w.Navigate(Previous)
	assert.Equal(t, 0, w.Highlighted().Index)
	assert.Equal(t, 0, list.ScrollTop)
}

// --- Selection ---

func TestSelectOptionRoundTrip(t *testing.T) {
	w, f := newWidget(t, WithData(option.RecordOption{Label: "Banana", Value: "ban"}))
	changes := countChanges(f)

	require.NoError(t, w.SelectOption(0))
	assert.Equal(t, "ban", f.Value())
	assert.Equal(t, "Banana", w.Container().Query(ClassResult).Text)
	assert.False(t, w.Container().Query(ClassResult).HasClass(ClassPlaceholder))
	assert.Equal(t, "Banana", w.SearchSurface().Value)
	assert.Equal(t, []string{"ban"}, *changes)
	assert.Equal(t, 0, w.Committed().Index)
	assert.Equal(t, 0, w.Highlighted().Index)
}

func TestSelectOptionMutualExclusion(t *testing.T) {
	w, _ := newWidget(t)
	require.NoError(t, w.SelectOption(0))
	require.NoError(t, w.SelectOption(2))
	assert.Equal(t, 1, selectedNodes(w))
	assert.True(t, w.Entries()[2].Node.HasClass(ClassOptionSelected))
}

func TestSelectOptionUnknownIndex(t *testing.T) {
	w, f := newWidget(t)
	changes := countChanges(f)
	require.NoError(t, w.SelectOption(1))

	err := w.SelectOption(7)
	assert.ErrorIs(t, err, ErrUnknownEntry)
	assert.Equal(t, "Banana", f.Value())
	assert.Equal(t, 1, w.Highlighted().Index)
	assert.Len(t, *changes, 1)

	assert.ErrorIs(t, w.OptionClick(-1), ErrUnknownEntry)
}

func TestSelectOptionKeepsDedicatedQuery(t *testing.T) {
	w, f := newWidget(t, WithInlineSearch(false))
	w.OpenDropdown(true)
	w.Search("b")

	require.NoError(t, w.SelectOption(1))
	assert.Equal(t, "Banana", f.Value())
	assert.Equal(t, "b", w.Query())
	assert.Equal(t, w.Query(), w.SearchSurface().Value)
	assert.Equal(t, []string{"Banana"}, visibleLabels(w))
	assert.Equal(t, "Banana", w.clone.Value)
}

func TestSelectOptionWhileInlineOpenFiltersByLabel(t *testing.T) {
	w, _ := newWidget(t)
	w.OpenDropdown(false)

	require.NoError(t, w.SelectOption(2))
	assert.Equal(t, "Cherry", w.SearchSurface().Value)
	assert.Equal(t, "Cherry", w.Query())
	assert.Equal(t, []string{"Cherry"}, visibleLabels(w))
}

func TestDuplicateValuesSelectableByPosition(t *testing.T) {
	w, f := newWidget(t, WithData(
		option.RecordOption{Label: "First", Value: "x"},
		option.RecordOption{Label: "Second", Value: "x"}))

	require.NoError(t, w.SelectOption(1))
	assert.Equal(t, "x", f.Value())
	assert.Equal(t, 1, w.Highlighted().Index)
	assert.Equal(t, "Second", w.Container().Query(ClassResult).Text)
}

func TestOptionClickClosesPanel(t *testing.T) {
	activated := 0
	w, f := newWidget(t, WithOnActivate(func() { activated++ }))
	w.OpenDropdown(false)

	w.Click(w.Entries()[2].Node)
	assert.Equal(t, "Cherry", f.Value())
	assert.False(t, w.IsOpen())
	assert.Equal(t, 1, activated)
}

func TestClickSubtextSelectsEntry(t *testing.T) {
	w, f := newWidget(t, WithData(option.RecordOption{Label: "Lemon", Value: "l", Subtext: "sour"}))
	w.OpenDropdown(false)
	w.Click(w.Container().Query(ClassOptionSubtext))
	assert.Equal(t, "l", f.Value())
}

func TestClickHiddenEntryIgnored(t *testing.T) {
	w, f := newWidget(t)
	w.OpenDropdown(false)
	typeText(w, "c")
	w.Click(w.Entries()[0].Node)
	assert.Equal(t, "", f.Value())
	assert.True(t, w.IsOpen())
}

func TestClickOutsideIgnored(t *testing.T) {
	activated := 0
	w, _ := newWidget(t, WithOnActivate(func() { activated++ }))
	w.OpenDropdown(false)
	w.Click(render.New("div"))
	assert.True(t, w.IsOpen())
	assert.Zero(t, activated)
}

func TestClickDismissLayerCloses(t *testing.T) {
	w, f := newWidget(t)
	w.OpenDropdown(false)
	press(w, KeyDown)
	w.Click(w.Container().Query(ClassFillDismiss))
	assert.False(t, w.IsOpen())
	assert.Equal(t, "", f.Value())
}

func TestClickNoMatchCloses(t *testing.T) {
	w, _ := newWidget(t)
	w.OpenDropdown(false)
	typeText(w, "z")
	noMatch := w.Container().Query(ClassNoMatch)
	require.False(t, noMatch.Hidden)

	w.Click(noMatch)
	assert.False(t, w.IsOpen())
	assert.True(t, noMatch.Hidden)
}

func TestClickDisplayToggles(t *testing.T) {
	w, _ := newWidget(t, WithInlineSearch(false))
	display := w.Container().Query(ClassResult)
	w.Click(display)
	assert.True(t, w.IsOpen())
	w.Click(display)
	assert.False(t, w.IsOpen())
}

func TestHoverClearsHighlight(t *testing.T) {
	w, f := newWidget(t)
	w.OpenDropdown(false)
	press(w, KeyDown)
	require.NotNil(t, w.Highlighted())

	w.Hover(w.Entries()[1].Node)
	assert.Nil(t, w.Highlighted())
	assert.Zero(t, selectedNodes(w))
	assert.Equal(t, "", f.Value())
	assert.True(t, w.IsOpen())

	w.Hover(w.Container().Query(ClassFillDismiss))
	w.Hover(nil)
}

// --- Keyboard commit ---

func TestEnterCommitsFirstVisible(t *testing.T) {
	w, f := newWidget(t)
	changes := countChanges(f)
	w.OpenDropdown(false)
	typeText(w, "b")

	press(w, KeyEnter)
	assert.Equal(t, "Banana", f.Value())
	assert.False(t, w.IsOpen())
	assert.Equal(t, []string{"Banana"}, *changes)
}

func TestEnterCommitsHighlighted(t *testing.T) {
	w, f := newWidget(t)
	w.OpenDropdown(false)
	press(w, KeyDown)
	press(w, KeyDown)
	press(w, KeyDown)

	press(w, KeyEnter)
	assert.Equal(t, "Cherry", f.Value())
	assert.False(t, w.IsOpen())
	assert.Equal(t, "Cherry", w.Container().Query(ClassResult).Text)
}

func TestEnterOnCommittedEntryOnlyCloses(t *testing.T) {
	w, f := newWidget(t)
	require.NoError(t, w.SelectOption(0))
	changes := countChanges(f)
	w.OpenDropdown(false)
	require.Equal(t, 0, w.Highlighted().Index, "highlight survives reopening")

	press(w, KeyEnter)
	assert.False(t, w.IsOpen())
	assert.Empty(t, *changes)
}

func TestEnterWithNothingVisibleIsNoop(t *testing.T) {
	w, f := newWidget(t)
	w.OpenDropdown(false)
	typeText(w, "z")
	press(w, KeyEnter)
	assert.Equal(t, "", f.Value())
	assert.True(t, w.IsOpen())
}

func TestEnterWhileClosedDoesNotCommit(t *testing.T) {
	w, f := newWidget(t)
	press(w, KeyEnter)
	assert.Equal(t, "", f.Value())
	assert.False(t, w.IsOpen())
}

func TestEnterBlurs(t *testing.T) {
	blurred := 0
	w, _ := newWidget(t, WithInlineSearch(false), WithOnBlur(func() { blurred++ }))
	w.OpenDropdown(true)
	require.True(t, w.Focused())

	press(w, KeyEnter)
	assert.False(t, w.Focused())
	assert.Equal(t, 1, blurred)

	w.Blur()
	assert.Equal(t, 1, blurred, "blur on an unfocused surface is silent")
}

func TestEscapeClosesWithoutCommit(t *testing.T) {
	w, f := newWidget(t)
	w.OpenDropdown(false)
	press(w, KeyDown)
	press(w, KeyEscape)
	assert.False(t, w.IsOpen())
	assert.Equal(t, "", f.Value())

	press(w, KeyEscape)
	assert.False(t, w.IsOpen(), "escape never opens")
}

func TestTypingKeepsCommittedValue(t *testing.T) {
	w, f := newWidget(t)
	require.NoError(t, w.OptionClick(0))
	w.OpenDropdown(false)
	typeText(w, "ch")
	assert.Equal(t, "Apple", f.Value())
}

func TestKeyDownCallbackRunsAfterHandling(t *testing.T) {
	var seen []bool
	var keys []Key
	var w *Widget
	w, _ = newWidget(t, WithOnKeyDown(func(ev KeyEvent) {
		keys = append(keys, ev.Key)
		seen = append(seen, w.IsOpen())
	}))
	w.OpenDropdown(false)

	press(w, KeyOther)
	press(w, KeyEscape)
	assert.Equal(t, []Key{KeyOther, KeyEscape}, keys)
	assert.Equal(t, []bool{true, false}, seen)
}

// --- External field mutation ---

func TestExternalChangeSelectsEntry(t *testing.T) {
	w, f := newWidget(t)
	f.Change("Banana")

	require.NotNil(t, w.Highlighted())
	assert.Equal(t, 1, w.Highlighted().Index)
	assert.Equal(t, "Banana", w.Container().Query(ClassResult).Text)
	assert.Equal(t, "Banana", w.SearchSurface().Value)
}

func TestExternalChangeToCommittedValueRestoresHighlight(t *testing.T) {
	w, f := newWidget(t)
	require.NoError(t, w.SelectOption(1))
	w.OpenDropdown(false)
	w.Hover(w.Entries()[0].Node)
	require.Nil(t, w.Highlighted())

	f.Change("Banana")
	require.NotNil(t, w.Highlighted())
	assert.Equal(t, 1, w.Highlighted().Index)
	assert.Equal(t, 1, selectedNodes(w))
	assert.Equal(t, "Banana", w.Container().Query(ClassResult).Text)
}

func TestExternalChangeToCommittedDuplicateKeepsPosition(t *testing.T) {
	w, f := newWidget(t, WithData(
		option.RecordOption{Label: "First", Value: "x"},
		option.RecordOption{Label: "Second", Value: "x"}))
	require.NoError(t, w.SelectOption(1))
	w.clearHighlight()
	w.clone.Value = ""

	f.Change("x")
	assert.Equal(t, 1, w.Highlighted().Index)
	assert.Equal(t, "Second", w.clone.Value)
}

func TestExternalResetRestoresPlaceholder(t *testing.T) {
	w, f := newWidget(t)
	require.NoError(t, w.SelectOption(2))

	f.Change("")
	result := w.Container().Query(ClassResult)
	assert.Equal(t, "Pick a fruit", result.Text)
	assert.True(t, result.HasClass(ClassPlaceholder))
	assert.Zero(t, selectedNodes(w))
	assert.Nil(t, w.Highlighted())
	assert.Nil(t, w.Committed())
	assert.Equal(t, "", w.SearchSurface().Value)
}

func TestExternalUnknownValueIgnored(t *testing.T) {
	w, f := newWidget(t)
	require.NoError(t, w.SelectOption(0))
	f.Change("Kiwi")
	assert.Equal(t, "Apple", w.Container().Query(ClassResult).Text)
	assert.Equal(t, 0, w.Highlighted().Index)
}

func TestListenersBeforeAndAfterConstruction(t *testing.T) {
	f := newField()
	var before, after []string
	f.OnChange(func(ev form.ChangeEvent) { before = append(before, ev.Value) })

	w, err := New(form.New(f), "#fruit", WithStrings(fruit...))
	require.NoError(t, err)
	f.OnChange(func(ev form.ChangeEvent) { after = append(after, ev.Value) })

	require.NoError(t, w.OptionClick(1))
	assert.Equal(t, []string{"Banana"}, before)
	assert.Equal(t, []string{"Banana"}, after)
}

func TestDetachStopsSync(t *testing.T) {
	f := newField()
	w, err := New(form.New(f), "#fruit", WithStrings(fruit...))
	require.NoError(t, err)
	w.Detach()
	f.Change("Cherry")
	assert.Nil(t, w.Highlighted())
}

func TestInvariantCheck(t *testing.T) {
	w, f := newWidget(t)
	require.NoError(t, w.checkInvariants())

	w.Entries()[0].Node.AddClass(ClassOptionSelected)
	w.Entries()[1].Node.AddClass(ClassOptionSelected)
	var violation *InvariantViolation
	require.ErrorAs(t, w.checkInvariants(), &violation)
	assert.Contains(t, violation.Error(), "2 entries")

	w.clearHighlight()
	require.NoError(t, w.SelectOption(0))
	f.SetValue("tampered")
	require.ErrorAs(t, w.checkInvariants(), &violation)
}

func TestCommitRollsBackOnViolation(t *testing.T) {
	w, f := newWidget(t, WithInlineSearch(false))
	require.NoError(t, w.SelectOption(0))
	w.OpenDropdown(true)
	w.Search("b")
	press(w, KeyDown)
	require.Equal(t, 1, w.Highlighted().Index)
	changes := countChanges(f)

	// A stray selected mark left on another entry breaks exclusivity.
	w.verify = func() error {
		w.entries[2].Node.AddClass(ClassOptionSelected)
		return w.checkInvariants()
	}

	err := w.SelectOption(1)
	var violation *InvariantViolation
	require.ErrorAs(t, err, &violation)

	assert.Equal(t, "Apple", f.Value())
	assert.Empty(t, *changes)
	require.NotNil(t, w.Committed())
	assert.Equal(t, 0, w.Committed().Index)
	require.NotNil(t, w.Highlighted())
	assert.Equal(t, 1, w.Highlighted().Index)
	assert.Equal(t, 1, selectedNodes(w))
	assert.Equal(t, "b", w.SearchSurface().Value)
	assert.Equal(t, "Apple", w.clone.Value)

	result := w.Container().Query(ClassResult)
	assert.Equal(t, "Apple", result.Text)
	assert.False(t, result.HasClass(ClassPlaceholder))
}

func TestCommitRollbackRestoresPlaceholder(t *testing.T) {
	w, f := newWidget(t)
	w.OpenDropdown(false)
	changes := countChanges(f)
	w.verify = func() error { return &InvariantViolation{Reason: "rejected"} }

	assert.Error(t, w.OptionClick(1))
	assert.True(t, w.IsOpen())
	assert.Empty(t, f.Value())
	assert.Empty(t, *changes)
	assert.Nil(t, w.Committed())
	assert.Nil(t, w.Highlighted())
	assert.Equal(t, "", w.Query())
	assert.Equal(t, 3, w.VisibleCount())
	assert.Equal(t, "", w.SearchSurface().Value)

	result := w.Container().Query(ClassResult)
	assert.Equal(t, "Pick a fruit", result.Text)
	assert.True(t, result.HasClass(ClassPlaceholder))
}
