package ultimate

import "ultimateholdem/pkg/deck"

// Options are the options for a hand of Ultimate Texas Hold'em
type Options struct {
	// StandardDeck deals from the 52-card deck instead of the 48-card complete deck
	StandardDeck bool
	// Seed makes the deal reproducible. When 0, a crypto-secure generator is used.
	Seed int64
	// ImageDir is where card images are found
	ImageDir string
	// Number is the game number recorded in the log
	Number int
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		ImageDir: deck.ImageDir,
		Number:   1,
	}
}

func (o Options) buildDeck() deck.Deck {
	if o.StandardDeck {
		return deck.NewDeck(deck.BuildStandardDeck())
	}

	return deck.NewDeck(deck.BuildCompleteDeck())
}
