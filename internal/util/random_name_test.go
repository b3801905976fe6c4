package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"ultimateholdem/internal/rng"
)

type fixedGenerator int

func (f fixedGenerator) Intn(n int) int {
	return int(f) % n
}

func TestGetRandomName(t *testing.T) {
	assert.Equal(t, "Lucky Shark", GetRandomName(fixedGenerator(0)))
	assert.Equal(t, "Steady Fish", GetRandomName(fixedGenerator(1)))

	assert.Equal(t, GetRandomName(rng.NewSeeded(5)), GetRandomName(rng.NewSeeded(5)))
	assert.NotEqual(t, "", strings.TrimSpace(GetRandomName(rng.Crypto{})))
}
