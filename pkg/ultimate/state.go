package ultimate

import (
	"ultimateholdem/pkg/deck"
	"ultimateholdem/pkg/handstate"
	"ultimateholdem/pkg/player"
)

// CardState is a card along with the image a client should render for it
type CardState struct {
	Card      deck.Card `json:"card"`
	ImagePath string    `json:"imagePath"`
}

// State is the state of the game
type State struct {
	ID        string              `json:"id"`
	Player    player.Player       `json:"player"`
	HoleCards []CardState         `json:"holeCards"`
	HandState handstate.HandState `json:"handState"`
	CardsLeft int                 `json:"cardsLeft"`
	DeckHash  string              `json:"deckHash"`
}

// NewCardState returns the card and its image path inside of dir
func NewCardState(card deck.Card, dir string) (CardState, error) {
	p, err := card.ImagePathIn(dir)
	if err != nil {
		return CardState{}, err
	}

	return CardState{Card: card, ImagePath: p}, nil
}

// State returns the current state of the game
func (g *Game) State() (*State, error) {
	holeCards := g.player.HoleCards()
	cards := make([]CardState, len(holeCards))
	for i, card := range holeCards {
		cs, err := NewCardState(card, g.options.ImageDir)
		if err != nil {
			return nil, err
		}

		cards[i] = cs
	}

	return &State{
		ID:        g.ID(),
		Player:    g.player,
		HoleCards: cards,
		HandState: g.handState,
		CardsLeft: g.deck.CardsLeft(),
		DeckHash:  g.deck.HashCode(),
	}, nil
}
