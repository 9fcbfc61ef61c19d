package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	main, err := Get("")
	require.NoError(t, err)
	assert.Contains(t, main, "thebook Guide")

	scoring, err := Get("scoring")
	require.NoError(t, err)
	assert.Contains(t, scoring, "Relevancy")

	_, err = Get("nonexistent")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	names, err := List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"config", "fetch", "reader", "scoring"}, names)
}
