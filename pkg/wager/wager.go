package wager

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when a bet amount is negative or not a number
var ErrInvalidAmount = errors.New("invalid bet amount")

// Bet is a single bet slot
type Bet struct {
	Active bool   `json:"active"`
	Amount uint64 `json:"amount"`
}

// Wager is a player's bet ledger
// Bet amounts cannot go below zero, but the balance can.
type Wager struct {
	Ante    Bet   `json:"ante"`
	Blinds  Bet   `json:"blinds"`
	Play    Bet   `json:"play"`
	Trips   Bet   `json:"trips"`
	Balance int64 `json:"balance"`
}

// New returns a wager
func New(ante, blinds, play, trips Bet, balance int64) Wager {
	return Wager{
		Ante:    ante,
		Blinds:  blinds,
		Play:    play,
		Trips:   trips,
		Balance: balance,
	}
}

// Empty returns a wager with no active bets and a zero balance
func Empty() Wager {
	return Wager{}
}

// ParseAmount parses a bet amount
// Negative amounts are rejected rather than clamped.
func ParseAmount(s string) (uint64, error) {
	amount, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return amount, nil
}

// ParseBet returns an active bet for a non-zero amount, or an inactive bet for zero
func ParseBet(s string) (Bet, error) {
	amount, err := ParseAmount(s)
	if err != nil {
		return Bet{}, err
	}

	return Bet{Active: amount > 0, Amount: amount}, nil
}

func (b Bet) String() string {
	if !b.Active {
		return "off"
	}

	return strconv.FormatUint(b.Amount, 10)
}

func (w Wager) String() string {
	return fmt.Sprintf("Ante: %s, Blinds: %s, Play: %s, Trips: %s, Balance: %d", w.Ante, w.Blinds, w.Play, w.Trips, w.Balance)
}
