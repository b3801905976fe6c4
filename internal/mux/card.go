package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"ultimateholdem/pkg/deck"
	"ultimateholdem/pkg/ultimate"
)

type deckResponse struct {
	Count int                  `json:"count"`
	Hash  string               `json:"hash"`
	Cards []ultimate.CardState `json:"cards"`
}

func (m *Mux) getDeck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards := m.deck.Cards()
		states := make([]ultimate.CardState, len(cards))
		for i, card := range cards {
			cs, err := ultimate.NewCardState(card, deck.ImageDir)
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}

			states[i] = cs
		}

		writeJSON(w, http.StatusOK, deckResponse{
			Count: len(states),
			Hash:  m.deck.HashCode(),
			Cards: states,
		})
	}
}

func (m *Mux) getCard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := gmux.Vars(r)
		card, err := deck.NewCard(vars["suit"], vars["value"])
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		cs, err := ultimate.NewCardState(card, deck.ImageDir)
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		writeJSON(w, http.StatusOK, cs)
	}
}
