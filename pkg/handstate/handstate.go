package handstate

import "encoding/json"

// HandState is the betting round a hand is in
// Exactly one of pre-flop, flop and post-flop is ever true.
type HandState int

// constants for HandState
const (
	PreFlop HandState = iota
	Flop
	PostFlop
)

// New returns the state a hand starts in
func New() HandState {
	return PreFlop
}

// PlayFlop returns the flop state
// The current state is not checked. The caller should replace its state with the result.
func (h HandState) PlayFlop() HandState {
	return Flop
}

// PlayPostFlop returns the post-flop state
// The current state is not checked. The caller should replace its state with the result.
func (h HandState) PlayPostFlop() HandState {
	return PostFlop
}

// IsPreFlop returns true if no community cards have been played
func (h HandState) IsPreFlop() bool {
	return h == PreFlop
}

// IsFlop returns true during the flop
func (h HandState) IsFlop() bool {
	return h == Flop
}

// IsPostFlop returns true after the flop
func (h HandState) IsPostFlop() bool {
	return h == PostFlop
}

func (h HandState) String() string {
	switch h {
	case PreFlop:
		return "pre-flop"
	case Flop:
		return "flop"
	case PostFlop:
		return "post-flop"
	}

	return ""
}

// MarshalJSON encodes JSON
func (h HandState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		PreFlop  bool   `json:"preFlop"`
		Flop     bool   `json:"flop"`
		PostFlop bool   `json:"postFlop"`
	}{
		ID:       int(h),
		Name:     h.String(),
		PreFlop:  h.IsPreFlop(),
		Flop:     h.IsFlop(),
		PostFlop: h.IsPostFlop(),
	})
}
