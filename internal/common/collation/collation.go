// Package collation sorts display names the way a user's locale expects,
// so "émile" sorts next to "Emile" instead of after "zoe".
package collation

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is used when a locale tag is empty or unparsable.
const DefaultLocale = "en"

// Tag parses locale, falling back to DefaultLocale.
func Tag(locale string) language.Tag {
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Compare orders a and b for the locale. A collator is not safe for
// concurrent use, so each call builds its own.
func Compare(locale, a, b string) int {
	return collate.New(Tag(locale)).CompareString(a, b)
}

// SortStable sorts items by key under the locale, keeping the input order of
// equal keys.
func SortStable[T any](locale string, items []T, key func(T) string) {
	c := collate.New(Tag(locale))
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(key(items[i]), key(items[j])) < 0
	})
}
