package model

import "strings"

// MaxNationalNumber is the highest National Pokédex number known to the catalog.
const MaxNationalNumber = 1025

// generationBounds holds the last national number of each generation, in order.
var generationBounds = [...]int{151, 251, 386, 493, 649, 721, 809, 905, 1025}

// Species is one entry of the National Pokédex catalog.
// It is a pure domain model shared by the HTTP, service and repository layers.
type Species struct {
	Number           int    `json:"number"`
	Name             string `json:"name"`
	PrimaryType      string `json:"primary_type"`
	SecondaryType    string `json:"secondary_type,omitempty"`
	Generation       int    `json:"generation"`
	EvolutionChainID int    `json:"evolution_chain_id"`
	EvolvesFrom      *int   `json:"evolves_from,omitempty"`
	SpriteURL        string `json:"sprite_url,omitempty"`
}

// HasType reports whether either type slot equals t, ignoring case.
func (s Species) HasType(t string) bool {
	if t == "" {
		return false
	}
	return strings.EqualFold(s.PrimaryType, t) || strings.EqualFold(s.SecondaryType, t)
}

// ValidNationalNumber reports whether n is inside the catalog range.
func ValidNationalNumber(n int) bool {
	return n >= 1 && n <= MaxNationalNumber
}

// GenerationOf returns the generation (1-based) a national number was introduced in, or 0 if the
// number is outside the catalog.
func GenerationOf(number int) int {
	if !ValidNationalNumber(number) {
		return 0
	}
	for i, last := range generationBounds {
		if number <= last {
			return i + 1
		}
	}
	return 0
}

// GenerationCount returns how many generations the catalog spans.
func GenerationCount() int {
	return len(generationBounds)
}

// GenerationSize returns the number of species introduced in generation g.
func GenerationSize(g int) int {
	if g < 1 || g > len(generationBounds) {
		return 0
	}
	if g == 1 {
		return generationBounds[0]
	}
	return generationBounds[g-1] - generationBounds[g-2]
}
