package ultimate

// GameLog is a record of a single hand
type GameLog struct {
	Game     int      `json:"game"`
	ID       string   `json:"id"`
	Player   string   `json:"player"`
	Seed     int64    `json:"seed,omitempty"`
	DeckHash string   `json:"deckHash"`
	Deals    []string `json:"deals"`
	States   []string `json:"states"`
}

func (g *Game) logDeal(card string) {
	g.log.Deals = append(g.log.Deals, card)
}

func (g *Game) logState() {
	g.log.States = append(g.log.States, g.handState.String())
}
