package deck

// NumberRanks are the ranks BuildNumberCards produces
// 10 is not included; BuildStandardDeck adds it.
var NumberRanks = []Value{Two, Three, Four, Five, Six, Seven, Eight, Nine}

// Faces are the values BuildFaceCards produces
// King is listed twice and Jack is absent; BuildStandardDeck uses one of each face.
var Faces = []Value{Ace, King, Queen, King}

var standardFaces = []Value{Jack, Queen, King, Ace}

// BuildNumberCards returns one card per suit for each of NumberRanks (32 cards)
func BuildNumberCards() []Card {
	return buildCards(NumberRanks)
}

// BuildFaceCards returns one card per suit for each of Faces (16 cards)
func BuildFaceCards() []Card {
	return buildCards(Faces)
}

// BuildCompleteDeck returns the number cards followed by the face cards (48 cards)
func BuildCompleteDeck() []Card {
	numbers := BuildNumberCards()
	faces := BuildFaceCards()

	cards := make([]Card, 0, len(numbers)+len(faces))
	cards = append(cards, numbers...)
	return append(cards, faces...)
}

// BuildStandardDeck returns a 52-card deck: 2 through 10, then Jack, Queen, King and Ace
func BuildStandardDeck() []Card {
	numbers := append(append([]Value{}, NumberRanks...), Ten)
	cards := make([]Card, 0, 52)
	cards = append(cards, buildCards(numbers)...)
	return append(cards, buildCards(standardFaces)...)
}

func buildCards(values []Value) []Card {
	cards := make([]Card, 0, len(Suits)*len(values))
	for _, suit := range Suits {
		for _, value := range values {
			cards = append(cards, Card{
				suit:  suit,
				value: value,
			})
		}
	}

	return cards
}
