package deck

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCard(t *testing.T) {
	a := assert.New(t)

	card, err := NewCard("Hearts", "10")
	a.NoError(err)
	a.Equal(Hearts, card.GetSuit())
	a.Equal(Ten, card.GetValue())
	a.Equal(MustNewCard(Hearts, Ten), card)

	_, err = NewCard("Stars", "10")
	a.True(errors.Is(err, ErrInvalidSuit))
	a.EqualError(err, `invalid suit: "Stars"`)

	_, err = NewCard("Hearts", "1")
	a.True(errors.Is(err, ErrInvalidValue))

	_, err = NewCard("hearts", "Ace")
	a.True(errors.Is(err, ErrInvalidSuit))

	a.Panics(func() {
		MustNewCard(Spades, "Joker")
	})
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "Suit: Spades, Value: Ace", MustNewCard(Spades, Ace).String())
	assert.Equal(t, "Suit: Diamonds, Value: 7", MustNewCard(Diamonds, Seven).String())
}

func TestCard_ImagePath(t *testing.T) {
	a := assert.New(t)

	p, err := MustNewCard(Spades, Ace).ImagePath()
	a.NoError(err)
	a.Equal("card_images/ace_spades.jpg", p)

	p, err = MustNewCard(Hearts, Ten).ImagePath()
	a.NoError(err)
	a.Equal("card_images/ten_hearts.jpg", p)

	p, err = MustNewCard(Clubs, Two).ImagePathIn("static/cards")
	a.NoError(err)
	a.Equal("static/cards/two_clubs.jpg", p)

	for _, suit := range Suits {
		for _, value := range Values {
			_, err := MustNewCard(suit, value).ImagePath()
			a.NoError(err, "%s %s", suit, value)
		}
	}

	p, err = Card{}.ImagePath()
	a.True(errors.Is(err, ErrUnknownRank))
	a.Equal("", p)
}

func TestCard_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(MustNewCard(Clubs, Queen))
	a.NoError(err)
	a.Equal(`{"suit":"Clubs","value":"Queen"}`, string(b))

	var card Card
	a.NoError(json.Unmarshal([]byte(`{"suit":"Hearts","value":"9"}`), &card))
	a.Equal(MustNewCard(Hearts, Nine), card)

	err = json.Unmarshal([]byte(`{"suit":"Hearts","value":"1"}`), &card)
	a.True(errors.Is(err, ErrInvalidValue))
}

func TestSuit_Valid(t *testing.T) {
	assert.True(t, Diamonds.Valid())
	assert.False(t, Suit("").Valid())
	assert.True(t, Jack.Valid())
	assert.False(t, Value("11").Valid())
}
