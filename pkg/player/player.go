package player

import (
	"encoding/json"
	"fmt"

	"ultimateholdem/pkg/deck"
	"ultimateholdem/pkg/wager"
)

// Player is a seated player with two hole cards and a wager
type Player struct {
	name   string
	first  deck.Card
	second deck.Card
	wager  wager.Wager
}

// New returns a player
func New(name string, first, second deck.Card, w wager.Wager) Player {
	return Player{
		name:   name,
		first:  first,
		second: second,
		wager:  w,
	}
}

// Name returns the player's name
func (p Player) Name() string {
	return p.name
}

// FirstCard returns the first hole card
func (p Player) FirstCard() deck.Card {
	return p.first
}

// SecondCard returns the second hole card
func (p Player) SecondCard() deck.Card {
	return p.second
}

// HoleCards returns both hole cards in the order they were dealt
func (p Player) HoleCards() [2]deck.Card {
	return [2]deck.Card{p.first, p.second}
}

// Wager returns the player's wager
func (p Player) Wager() wager.Wager {
	return p.wager
}

func (p Player) String() string {
	return fmt.Sprintf("Player Name: %s, First Card: %s, Second Card: %s", p.name, p.first, p.second)
}

// MarshalJSON encodes JSON
func (p Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name      string       `json:"name"`
		HoleCards [2]deck.Card `json:"holeCards"`
		Wager     wager.Wager  `json:"wager"`
	}{
		Name:      p.name,
		HoleCards: p.HoleCards(),
		Wager:     p.wager,
	})
}
