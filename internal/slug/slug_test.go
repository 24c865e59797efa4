package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Fiction":           "fiction",
		"Science Fiction":   "science-fiction",
		"  Self   Help ":    "self-help",
		"Children's Books!": "childrens-books",
		"Sci-Fi & Fantasy":  "sci-fi-fantasy",
		"":                  "",
		"小说":                "小说",
		"Ciência Ficção":    "ciência-ficção",
		"ИСТОРИЯ":           "история",
		"!!!":               "",
	}

	for in, want := range cases {
		assert.Equal(t, want, Make(in), "input %q", in)
	}
}

func TestUnique(t *testing.T) {
	a := Unique("The Hobbit")
	b := Unique("The Hobbit")

	assert.True(t, strings.HasPrefix(a, "the-hobbit-"))
	assert.Len(t, a, len("the-hobbit-")+8)
	assert.NotEqual(t, a, b)
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "city-library-1700000000", WithSuffix("city-library", "1700000000"))
	assert.Equal(t, "x", WithSuffix("", "x"))
}
