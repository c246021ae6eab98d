package collation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTag(t *testing.T) {
	assert.Equal(t, language.English, Tag(""))
	assert.Equal(t, language.English, Tag("not a tag!"))
	assert.Equal(t, language.MustParse("fr"), Tag("fr"))
}

func TestCompare(t *testing.T) {
	assert.Negative(t, Compare("en", "apple", "Banana"))
	assert.Positive(t, Compare("en", "zoe", "Émile"))
	assert.Zero(t, Compare("en", "same", "same"))
}

func TestSortStable(t *testing.T) {
	names := []string{"zoe", "Émile", "adam", "Adam"}
	SortStable("en", names, func(s string) string { return s })
	assert.Equal(t, "zoe", names[len(names)-1])
	assert.Equal(t, "Émile", names[2])
}
