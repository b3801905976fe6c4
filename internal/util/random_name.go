package util

import (
	"fmt"

	"ultimateholdem/internal/rng"
)

var adjectives = []string{
	"Lucky", "Steady", "Bold", "Quiet", "Sly", "Stone-Faced", "Reckless", "Patient", "Grinning", "Cool",
	"Shuffling", "Bluffing", "Folding", "Raising", "Calling", "Checking", "High-Rolling", "Sharp", "Wild",
}

var nicknames = []string{
	"Shark", "Fish", "Whale", "Donkey", "Rock", "Maniac", "Nit", "Grinder", "Dealer", "Pit Boss",
	"Croupier", "Gambler", "Ace", "Kicker", "Sharpie", "Rounder", "Hustler",
}

// GetRandomName returns a random player name by combining an adjective with a nickname
func GetRandomName(gen rng.Generator) string {
	adjectivesIndex := gen.Intn(len(adjectives))
	nicknamesIndex := gen.Intn(len(nicknames))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], nicknames[nicknamesIndex])
}
