package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextPool_OnePassCoversAllTexts(t *testing.T) {
	texts := []string{"alpha", "bravo", "charlie", "delta"}
	pool := newTextPool(texts)

	seen := make(map[string]int)
	for i := 0; i < pool.Len(); i++ {
		seen[pool.Next()]++
	}

	require.Len(t, seen, len(texts))
	for _, text := range texts {
		assert.Equal(t, 1, seen[text], "each text appears exactly once per pass")
	}
}

func TestTextPool_WrapsAround(t *testing.T) {
	pool := newTextPool([]string{"only"})

	for i := 0; i < 5; i++ {
		assert.Equal(t, "only", pool.Next())
	}
}

func TestDefaultPool_NoBlankTexts(t *testing.T) {
	pool := newDefaultPool()
	require.Greater(t, pool.Len(), 0)

	for i := 0; i < pool.Len(); i++ {
		assert.NotEmpty(t, pool.Next())
	}
}
