package option

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Label
	}
	return out
}

func TestNormalizeMixed(t *testing.T) {
	src := []Source{
		StringOption("Apple"),
		RecordOption{Label: "Banana", Value: "ban", Subtext: "yellow"},
		RecordOption{Label: "Cherry"},
	}
	got, err := Normalize(src, nil)
	require.NoError(t, err)

	want := []Record{
		{Value: "Apple", Label: "Apple"},
		{Value: "ban", Label: "Banana", Subtext: "yellow"},
		{Value: "Cherry", Label: "Cherry"},
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestNormalizeKeepsDuplicates(t *testing.T) {
	got, err := Normalize(Strings("x", "x"), nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestNormalizeRejectsMalformed(t *testing.T) {
	_, err := Normalize([]Source{StringOption("ok"), RecordOption{Value: "v"}}, nil)
	var invalid *InvalidSourceError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 1, invalid.Index)

	_, err = Normalize([]Source{nil}, nil)
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, invalid.Index)
}

func TestSortByLabel(t *testing.T) {
	got, err := Normalize([]Source{RecordOption{Label: "b"}, RecordOption{Label: "A"}}, SortByLabel)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "b"}, labels(got))
}

func TestSortIsStable(t *testing.T) {
	src := []Source{
		RecordOption{Label: "same", Value: "1"},
		RecordOption{Label: "SAME", Value: "2"},
		RecordOption{Label: "a", Value: "3"},
		RecordOption{Label: "Same", Value: "4"},
	}
	got, err := Normalize(src, SortByLabel)
	require.NoError(t, err)

	var values []string
	for _, r := range got {
		values = append(values, r.Value)
	}
	assert.Equal(t, []string{"3", "1", "2", "4"}, values)
}

func TestSortAlphabeticUsesValue(t *testing.T) {
	src := []Source{
		RecordOption{Label: "first", Value: "z"},
		StringOption("m"),
		RecordOption{Label: "last", Value: "A"},
	}
	got, err := Normalize(src, SortAlphabetic)
	require.NoError(t, err)
	assert.Equal(t, []string{"last", "m", "first"}, labels(got))
}

func TestComparatorSigns(t *testing.T) {
	a, b := Record{Label: "a", Value: "a"}, Record{Label: "B", Value: "B"}
	assert.Equal(t, -1, SortByLabel(a, b))
	assert.Equal(t, 1, SortByLabel(b, a))
	assert.Equal(t, 0, SortByLabel(a, Record{Label: "A"}))
	assert.Equal(t, -1, SortAlphabetic(a, b))
}

func TestLookupSort(t *testing.T) {
	cmpFn, err := LookupSort("none")
	require.NoError(t, err)
	assert.Nil(t, cmpFn)

	cmpFn, err = LookupSort("Label")
	require.NoError(t, err)
	assert.NotNil(t, cmpFn)

	_, err = LookupSort("random")
	assert.ErrorContains(t, err, "unknown sort")
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
- Apple
- label: Banana
  value: ban
  subtext: yellow
- {label: Cherry}
`)
	src, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, src, 3)
	assert.Equal(t, StringOption("Apple"), src[0])
	assert.Equal(t, RecordOption{Label: "Banana", Value: "ban", Subtext: "yellow"}, src[1])
	assert.Equal(t, RecordOption{Label: "Cherry"}, src[2])
}

func TestParseJSON(t *testing.T) {
	src, err := Parse([]byte(`["a", {"label": "B", "value": "b"}]`))
	require.NoError(t, err)
	assert.Equal(t, []Source{StringOption("a"), RecordOption{Label: "B", Value: "b"}}, src)
}

func TestParseRejectsNested(t *testing.T) {
	_, err := Parse([]byte("- [nested, list]\n"))
	var invalid *InvalidSourceError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, invalid.Index)

	_, err = Parse([]byte("label: not-a-list\n"))
	assert.ErrorContains(t, err, "must be a list")
}
