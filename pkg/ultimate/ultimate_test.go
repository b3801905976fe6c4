package ultimate

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"ultimateholdem/pkg/deck"
	"ultimateholdem/pkg/snapshot"
	"ultimateholdem/pkg/wager"
)

func TestNewGame(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame("  Alice ", DefaultOptions())
	a.NoError(err)

	p := game.Player()
	a.Equal("Alice", p.Name())
	a.NotEqual(p.FirstCard(), p.SecondCard())
	a.Equal(wager.Empty(), p.Wager())
	a.True(game.HandState().IsPreFlop())
	a.Equal(46, game.Deck().CardsLeft())
	a.False(game.Deck().Contains(p.FirstCard()))
	a.False(game.Deck().Contains(p.SecondCard()))

	s := p.String()
	a.True(strings.Contains(s, "Alice"))
	a.True(strings.Contains(s, p.FirstCard().String()))
	a.True(strings.Contains(s, p.SecondCard().String()))

	_, err = NewGame(" ", DefaultOptions())
	a.True(errors.Is(err, ErrMissingName))
}

func TestNewGame_StandardDeck(t *testing.T) {
	opts := DefaultOptions()
	opts.StandardDeck = true

	game, err := NewGame("Bob", opts)
	assert.NoError(t, err)
	assert.Equal(t, 50, game.Deck().CardsLeft())
}

func TestNewGame_Seeded(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42

	g1, err := NewGame("Carol", opts)
	assert.NoError(t, err)
	g2, err := NewGame("Carol", opts)
	assert.NoError(t, err)

	assert.Equal(t, g1.Player().HoleCards(), g2.Player().HoleCards())
	assert.NotEqual(t, g1.ID(), g2.ID())
	assert.Equal(t, int64(42), g1.Log().Seed)
}

func TestGame_HandState(t *testing.T) {
	a := assert.New(t)

	game := setupGame(t, "Dave", DefaultOptions())
	a.True(game.HandState().IsPreFlop())

	game.PlayFlop()
	a.True(game.HandState().IsFlop())
	a.False(game.HandState().IsPreFlop())

	game.PlayPostFlop()
	a.True(game.HandState().IsPostFlop())
	a.False(game.HandState().IsFlop())

	a.Equal([]string{"pre-flop", "flop", "post-flop"}, game.Log().States)
}

func TestGame_Log(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	opts.Number = 3
	game := setupGame(t, "Erin", opts)

	log := game.Log()
	a.Equal(3, log.Game)
	a.Equal(game.ID(), log.ID)
	a.Equal("Erin", log.Player)
	a.Equal(deck.NewDeck(deck.BuildCompleteDeck()).HashCode(), log.DeckHash)
	a.Equal([]string{"Suit: Spades, Value: 2", "Suit: Spades, Value: 3"}, log.Deals)

	// the log returned is a copy
	log.Deals[0] = "changed"
	a.Equal("Suit: Spades, Value: 2", game.Log().Deals[0])

	b, err := json.Marshal(log)
	a.NoError(err)
	a.True(strings.Contains(string(b), `"game":3`))
	a.False(strings.Contains(string(b), `"seed"`))
}

func TestGame_State(t *testing.T) {
	a := assert.New(t)

	game := setupGame(t, "Frank", DefaultOptions())
	game.PlayFlop()

	state, err := game.State()
	a.NoError(err)
	a.Equal(game.ID(), state.ID)
	a.Equal(46, state.CardsLeft)
	a.Equal("card_images/two_spades.jpg", state.HoleCards[0].ImagePath)
	a.Equal("card_images/three_spades.jpg", state.HoleCards[1].ImagePath)
	a.True(state.HandState.IsFlop())

	state.ID = ""
	snapshot.ValidateSnapshot(t, state, 0)
}

func TestGame_StateImageDir(t *testing.T) {
	opts := DefaultOptions()
	opts.ImageDir = "static"

	game := setupGame(t, "Grace", opts)
	state, err := game.State()
	assert.NoError(t, err)
	assert.Equal(t, "static/two_spades.jpg", state.HoleCards[0].ImagePath)
}

func TestGame_DeckExhausted(t *testing.T) {
	game := setupGame(t, "Heidi", DefaultOptions())
	game.deck = deck.NewDeck(nil)

	_, err := game.deal()
	assert.True(t, errors.Is(err, deck.ErrDeckExhausted))
	assert.EqualError(t, err, "could not deal hole card: deck exhausted")
}

func TestNewCardState(t *testing.T) {
	_, err := NewCardState(deck.Card{}, "card_images")
	assert.True(t, errors.Is(err, deck.ErrUnknownRank))
}
