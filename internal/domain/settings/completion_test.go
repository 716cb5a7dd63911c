package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCompletionSet(t *testing.T) {
	set := ParseCompletionSet("January, February ,,March")
	assert.Len(t, set, 3)
	assert.True(t, set.Contains("January"))
	assert.True(t, set.Contains("February"))
	assert.True(t, set.Contains("March"))
	assert.False(t, set.Contains("April"))

	assert.Empty(t, ParseCompletionSet(""))
	assert.Empty(t, ParseCompletionSet(" , ,"))
}

func TestAddIsIdempotent(t *testing.T) {
	set := ParseCompletionSet("January")

	assert.True(t, set.Add("February"))
	assert.False(t, set.Add("February"))
	assert.False(t, set.Add("January"))

	// Membership is a set union: no duplicates regardless of how many
	// times a label is added.
	assert.Equal(t, "January,February", set.String())
}

func TestStringCalendarOrder(t *testing.T) {
	set := CompletionSet{}
	set.Add("March")
	set.Add("January")
	set.Add("December")
	assert.Equal(t, "January,March,December", set.String())
}

func TestStringRoundTrip(t *testing.T) {
	set := ParseCompletionSet("February,January")
	again := ParseCompletionSet(set.String())
	assert.Equal(t, set, again)
}
