// Package match provides the predicates used to decide whether an option's
// text satisfies what the user typed into the search surface.
//
// Every policy trims the query, matches case-insensitively, and treats the
// query as literal text: "a.b" never matches "axb".
package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sahilm/fuzzy"
)

// Func reports whether candidate text satisfies the raw query.
type Func func(text, query string) bool

// patternCacheSize bounds the number of compiled query patterns kept around.
// Typing a query compiles one pattern per keystroke.
const patternCacheSize = 256

var patterns *lru.Cache[string, *regexp2.Regexp]

func init() {
	var err error
	patterns, err = lru.New[string, *regexp2.Regexp](patternCacheSize)
	if err != nil {
		panic(fmt.Sprintf("match: creating pattern cache: %v", err))
	}
}

// StartsWith matches when text begins with the trimmed query.
func StartsWith(text, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return test("^"+Escape(q), text)
}

// Contains matches when text contains the trimmed query anywhere.
func Contains(text, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return test(Escape(q), text)
}

// Fuzzy matches when the query's characters appear in text in order, not
// necessarily adjacent ("bnn" matches "Banana").
func Fuzzy(text, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return len(fuzzy.Find(q, []string{text})) > 0
}

// Escape quotes every pattern metacharacter in s.
func Escape(s string) string {
	return regexp2.Escape(s)
}

func test(expr, text string) bool {
	re, ok := patterns.Get(expr)
	if !ok {
		var err error
		re, err = regexp2.Compile(expr, regexp2.IgnoreCase)
		if err != nil {
			// Escaped input always compiles; treat anything else as no match.
			return false
		}
		patterns.Add(expr, re)
	}
	ok, err := re.MatchString(text)
	return err == nil && ok
}

var policies = map[string]Func{
	"startswith": StartsWith,
	"contains":   Contains,
	"fuzzy":      Fuzzy,
}

// Lookup returns the policy registered under name (case-insensitive, "-"
// and "_" ignored).
func Lookup(name string) (Func, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	if fn, ok := policies[key]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("unknown filter %q (want one of %s)", name, strings.Join(Names(), ", "))
}

// Names lists the registered policy names.
func Names() []string {
	names := make([]string, 0, len(policies))
	for n := range policies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
