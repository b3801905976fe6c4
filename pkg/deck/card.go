package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrInvalidSuit is returned when a card is created with a suit outside of Suits
var ErrInvalidSuit = errors.New("invalid suit")

// ErrInvalidValue is returned when a card is created with a value outside of Values
var ErrInvalidValue = errors.New("invalid value")

// ErrUnknownRank is returned when a card's value has no image mapping
var ErrUnknownRank = errors.New("unknown rank")

// ImageDir is the directory card images are relative to
const ImageDir = "card_images"

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "Spades"
	Hearts   Suit = "Hearts"
	Clubs    Suit = "Clubs"
	Diamonds Suit = "Diamonds"
)

// Suits is the order suits are built in
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

// Valid returns true if the suit is one of Suits
func (s Suit) Valid() bool {
	for _, suit := range Suits {
		if s == suit {
			return true
		}
	}

	return false
}

// Value is the rank printed on a card
type Value string

// value constants
const (
	Two   Value = "2"
	Three Value = "3"
	Four  Value = "4"
	Five  Value = "5"
	Six   Value = "6"
	Seven Value = "7"
	Eight Value = "8"
	Nine  Value = "9"
	Ten   Value = "10"
	Jack  Value = "Jack"
	Queen Value = "Queen"
	King  Value = "King"
	Ace   Value = "Ace"
)

// Values is every value a card can hold
var Values = []Value{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Valid returns true if the value is one of Values
func (v Value) Valid() bool {
	for _, value := range Values {
		if v == value {
			return true
		}
	}

	return false
}

var rankWords = map[Value]string{
	Two:   "two",
	Three: "three",
	Four:  "four",
	Five:  "five",
	Six:   "six",
	Seven: "seven",
	Eight: "eight",
	Nine:  "nine",
	Ten:   "ten",
	Jack:  "jack",
	Queen: "queen",
	King:  "king",
	Ace:   "ace",
}

// Card is an individual playing card
// Cards are values; two cards are equal if their suit and value match.
type Card struct {
	suit  Suit
	value Value
}

// NewCard returns a card after checking the suit and value
func NewCard(suit, value string) (Card, error) {
	s := Suit(suit)
	if !s.Valid() {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidSuit, suit)
	}

	v := Value(value)
	if !v.Valid() {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidValue, value)
	}

	return Card{suit: s, value: v}, nil
}

// MustNewCard is like NewCard, but panics on an invalid suit or value
func MustNewCard(suit Suit, value Value) Card {
	card, err := NewCard(string(suit), string(value))
	if err != nil {
		panic(err)
	}

	return card
}

// GetSuit returns the card's suit
func (c Card) GetSuit() Suit {
	return c.suit
}

// GetValue returns the card's value
func (c Card) GetValue() Value {
	return c.value
}

func (c Card) String() string {
	return fmt.Sprintf("Suit: %s, Value: %s", c.suit, c.value)
}

// ImagePath returns the path to the card's image, relative to ImageDir
// i.e., card_images/ace_spades.jpg
func (c Card) ImagePath() (string, error) {
	return c.ImagePathIn(ImageDir)
}

// ImagePathIn is like ImagePath, but relative to dir
func (c Card) ImagePathIn(dir string) (string, error) {
	word, ok := rankWords[c.value]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRank, c.value)
	}

	return path.Join(dir, fmt.Sprintf("%s_%s.jpg", word, strings.ToLower(string(c.suit)))), nil
}

type cardJSON struct {
	Suit  Suit  `json:"suit"`
	Value Value `json:"value"`
}

// MarshalJSON encodes JSON
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{Suit: c.suit, Value: c.value})
}

// UnmarshalJSON decodes JSON
// The suit and value are validated the same way NewCard does.
func (c *Card) UnmarshalJSON(b []byte) error {
	var cj cardJSON
	if err := json.Unmarshal(b, &cj); err != nil {
		return err
	}

	card, err := NewCard(string(cj.Suit), string(cj.Value))
	if err != nil {
		return err
	}

	*c = card
	return nil
}
