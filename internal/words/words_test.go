package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesAndFilters(t *testing.T) {
	d, err := New(
		[]string{"reach", " Smart ", "reach", "toolong", "abc", "naïve", ""},
		[]string{"arche", "12345"},
	)
	require.NoError(t, err)

	answers, allowed := d.Stats()
	assert.Equal(t, 2, answers) // reach, smart (dupe and invalid entries dropped)
	assert.Equal(t, 3, allowed) // answers ∪ {arche}

	assert.True(t, d.Contains("REACH"))
	assert.True(t, d.Contains("reach"))
	assert.True(t, d.Contains("arche"))
	assert.False(t, d.Contains("toolong"))
	assert.False(t, d.Contains("abc"))

	assert.True(t, d.IsAnswer("smart"))
	assert.False(t, d.IsAnswer("arche"))
}

func TestNewRejectsEmptyAnswers(t *testing.T) {
	_, err := New(nil, []string{"arche"})
	assert.Error(t, err)

	_, err = New([]string{"abc", "toolong"}, nil)
	assert.Error(t, err)
}

func TestRandomReturnsAnswer(t *testing.T) {
	d, err := New([]string{"reach", "smart", "snout"}, nil)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		w := d.Random()
		assert.True(t, d.IsAnswer(w), w)
		assert.Len(t, w, Length)
	}
}

func TestDefaultLoadsEmbeddedLists(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	answers, allowed := d.Stats()
	assert.Greater(t, answers, 0)
	assert.GreaterOrEqual(t, allowed, answers)

	// Spot-check the embedded lists.
	assert.True(t, d.IsAnswer("reach"))
	assert.True(t, d.Contains("arche"))
	assert.False(t, d.IsAnswer("arche"))
}
