package ultimate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"ultimateholdem/internal/rng"
	"ultimateholdem/pkg/deck"
	"ultimateholdem/pkg/handstate"
	"ultimateholdem/pkg/player"
	"ultimateholdem/pkg/wager"
)

// ErrMissingName is returned when a game is started without a player name
var ErrMissingName = errors.New("player name is required")

// Game is a single hand of Ultimate Texas Hold'em for one player
type Game struct {
	id        uuid.UUID
	options   Options
	gen       rng.Generator
	deck      deck.Deck
	player    player.Player
	handState handstate.HandState
	log       GameLog
	logger    logrus.FieldLogger
}

// NewGame builds a deck, deals the player two hole cards and starts the hand pre-flop
func NewGame(name string, opts Options) (*Game, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}

	if opts.ImageDir == "" {
		opts.ImageDir = deck.ImageDir
	}

	var gen rng.Generator = rng.Crypto{}
	if opts.Seed != 0 {
		gen = rng.NewSeeded(opts.Seed)
	}

	return newGame(name, opts, gen)
}

func newGame(name string, opts Options, gen rng.Generator) (*Game, error) {
	id := uuid.New()
	d := opts.buildDeck()

	g := &Game{
		id:        id,
		options:   opts,
		gen:       gen,
		deck:      d,
		handState: handstate.New(),
		log: GameLog{
			Game:     opts.Number,
			ID:       id.String(),
			Player:   name,
			Seed:     opts.Seed,
			DeckHash: d.HashCode(),
			Deals:    make([]string, 0, 2),
			States:   make([]string, 0, 3),
		},
		logger: logrus.WithField("gameID", id.String()),
	}

	g.logState()

	first, err := g.deal()
	if err != nil {
		return nil, err
	}

	second, err := g.deal()
	if err != nil {
		return nil, err
	}

	g.player = player.New(name, first, second, wager.Empty())
	g.logger.WithField("player", g.player.String()).Info("hand started")

	return g, nil
}

func (g *Game) deal() (deck.Card, error) {
	card, remaining, err := g.deck.Deal(g.gen)
	if err != nil {
		return deck.Card{}, fmt.Errorf("could not deal hole card: %w", err)
	}

	g.deck = remaining
	g.logDeal(card.String())
	g.logger.WithFields(logrus.Fields{
		"card":      card.String(),
		"cardsLeft": remaining.CardsLeft(),
	}).Debug("dealt card")

	return card, nil
}

// ID returns the game's unique identifier
func (g *Game) ID() string {
	return g.id.String()
}

// Player returns the player in the hand
func (g *Game) Player() player.Player {
	return g.player
}

// HandState returns the current betting round
func (g *Game) HandState() handstate.HandState {
	return g.handState
}

// Deck returns the cards that have not been dealt
func (g *Game) Deck() deck.Deck {
	return g.deck
}

// PlayFlop moves the hand to the flop
func (g *Game) PlayFlop() {
	g.setHandState(g.handState.PlayFlop())
}

// PlayPostFlop moves the hand past the flop
func (g *Game) PlayPostFlop() {
	g.setHandState(g.handState.PlayPostFlop())
}

func (g *Game) setHandState(next handstate.HandState) {
	g.logger.WithFields(logrus.Fields{
		"from": g.handState.String(),
		"to":   next.String(),
	}).Debug("hand state changed")

	g.handState = next
	g.logState()
}

// Log returns a copy of the game log
func (g *Game) Log() GameLog {
	log := g.log
	log.Deals = append([]string{}, g.log.Deals...)
	log.States = append([]string{}, g.log.States...)

	return log
}
