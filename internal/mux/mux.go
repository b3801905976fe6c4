package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"ultimateholdem/internal/config"
	"ultimateholdem/pkg/deck"
)

// Mux handles HTTP requests for rendering clients
type Mux struct {
	*gmux.Router
	version  string
	imageDir string
	deck     deck.Deck
}

// NewMux returns a new HTTP mux
func NewMux(version string, cfg config.Config) *Mux {
	cards := deck.BuildCompleteDeck()
	if cfg.Deck.Standard {
		cards = deck.BuildStandardDeck()
	}

	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		imageDir: cfg.ImageDir,
		deck:     deck.NewDeck(cards),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/deck").Handler(this.getDeck())
	r.Methods(http.MethodGet).Path("/card/{suit}/{value}").Handler(this.getCard())

	// image paths are always relative to deck.ImageDir, regardless of where they are served from
	prefix := "/" + deck.ImageDir + "/"
	r.Methods(http.MethodGet).PathPrefix(prefix).Handler(http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.ImageDir))))

	return this
}
