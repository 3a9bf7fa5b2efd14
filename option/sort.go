package option

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Comparator orders two records, returning -1, 0 or 1.
type Comparator func(a, b Record) int

func compareFolded(a, b string) int {
	// A Caser is not safe for concurrent use.
	fold := cases.Fold()
	fa, fb := fold.String(a), fold.String(b)
	switch {
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	}
	return 0
}

// SortAlphabetic orders records by their underlying string value,
// ignoring case.
func SortAlphabetic(a, b Record) int {
	return compareFolded(a.Value, b.Value)
}

// SortByLabel orders records by label, ignoring case.
func SortByLabel(a, b Record) int {
	return compareFolded(a.Label, b.Label)
}

// LookupSort resolves a sort policy by name. "" and "none" return nil,
// meaning input order is kept.
func LookupSort(name string) (Comparator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return nil, nil
	case "alphabetic", "string":
		return SortAlphabetic, nil
	case "label":
		return SortByLabel, nil
	}
	return nil, fmt.Errorf("unknown sort %q (want none, alphabetic or label)", name)
}
