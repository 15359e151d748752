package postgres

import (
	"fmt"
	"math/rand"
)

// RandomDocRefGenerator produces random numeric document reference tags.
type RandomDocRefGenerator struct{}

// NewRandomDocRefGenerator creates a new RandomDocRefGenerator.
func NewRandomDocRefGenerator() *RandomDocRefGenerator {
	return &RandomDocRefGenerator{}
}

// Group returns a 4-digit tag shared by one installment series.
func (g *RandomDocRefGenerator) Group() string {
	return fmt.Sprintf("%04d", rand.Intn(10000))
}

// Single returns a 5-digit tag for a standalone obligation.
func (g *RandomDocRefGenerator) Single() string {
	return fmt.Sprintf("%05d", rand.Intn(100000))
}
