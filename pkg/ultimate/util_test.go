package ultimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// firstCardGenerator always deals the top card of the deck
type firstCardGenerator struct{}

func (firstCardGenerator) Intn(n int) int {
	return 0
}

func setupGame(t *testing.T, name string, opts Options) *Game {
	t.Helper()

	game, err := newGame(name, opts, firstCardGenerator{})
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return game
}
