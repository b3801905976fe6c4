package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ultimateholdem/internal/rng"
)

// ErrDeckExhausted is returned when Deal() is attempted and there are no more cards
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck represents a draw pool of cards
// A Deck is never modified once created. Deal returns a new Deck, so every holder of
// the original keeps seeing the same cards.
type Deck struct {
	cards []Card
}

// NewDeck returns a deck holding a copy of cards
func NewDeck(cards []Card) Deck {
	c := make([]Card, len(cards))
	copy(c, cards)

	return Deck{cards: c}
}

// Deal removes a random card from the deck
// The dealt card and a new deck without it are returned. The relative order of the remaining
// cards is preserved. If the deck is empty, ErrDeckExhausted is returned.
func (d Deck) Deal(gen rng.Generator) (Card, Deck, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, d, ErrDeckExhausted
	}

	i := gen.Intn(n)
	if i < 0 || i >= n {
		panic(fmt.Sprintf("generator returned %d, outside of [0, %d)", i, n))
	}

	remaining := make([]Card, 0, n-1)
	remaining = append(remaining, d.cards[:i]...)
	remaining = append(remaining, d.cards[i+1:]...)

	return d.cards[i], Deck{cards: remaining}, nil
}

// DealN deals n cards, one at a time
// On error, the original deck is returned along with no cards.
func (d Deck) DealN(gen rng.Generator, n int) ([]Card, Deck, error) {
	cards := make([]Card, 0, n)
	next := d
	for i := 0; i < n; i++ {
		card, remaining, err := next.Deal(gen)
		if err != nil {
			return nil, d, err
		}

		cards = append(cards, card)
		next = remaining
	}

	return cards, next, nil
}

// Cards returns a copy of the cards in the deck
func (d Deck) Cards() []Card {
	c := make([]Card, len(d.cards))
	copy(c, d.cards)

	return c
}

// Contains returns true if the card is in the deck
func (d Deck) Contains(card Card) bool {
	for _, c := range d.cards {
		if c == card {
			return true
		}
	}

	return false
}

// CanDeal returns true if there are {want} cards left in the deck
func (d Deck) CanDeal(want int) bool {
	return len(d.cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d Deck) CardsLeft() int {
	return len(d.cards)
}

// HashCode returns a SHA1 hash code of the deck.
func (d Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

func (d Deck) String() string {
	s := make([]string, len(d.cards))
	for i, card := range d.cards {
		s[i] = card.String()
	}

	return "[" + strings.Join(s, "; ") + "]"
}

// MarshalJSON encodes JSON
func (d Deck) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.cards)
}
