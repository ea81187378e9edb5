package guide

import (
	"context"
	"strings"
)

// DefaultMealPrice is the meal price reported by fallback guides.
const DefaultMealPrice = "25 EUR"

// DefaultSpots are the placeholder spots cycled through by fallback guides.
var DefaultSpots = []string{
	"Quartier historique",
	"Musée principal",
	"Parc central",
}

// FallbackGenerator builds guides locally without any I/O.
type FallbackGenerator struct {
	spots []string
}

// NewFallbackGenerator constructs a FallbackGenerator over spots.
// An empty list selects DefaultSpots.
func NewFallbackGenerator(spots ...string) *FallbackGenerator {
	if len(spots) == 0 {
		spots = DefaultSpots
	}
	cp := make([]string, len(spots))
	copy(cp, spots)
	return &FallbackGenerator{spots: cp}
}

// EffectiveCount returns count when positive, otherwise the number of placeholder spots.
func (g *FallbackGenerator) EffectiveCount(count int) int {
	if count > 0 {
		return count
	}
	return len(g.spots)
}

// Spots returns exactly EffectiveCount(count) entries, cycling the placeholder list.
func (g *FallbackGenerator) Spots(count int) []string {
	n := g.EffectiveCount(count)
	out := make([]string, n)
	for i := range out {
		out[i] = g.spots[i%len(g.spots)]
	}
	return out
}

// Render returns the fallback JSON document for destination and count.
// Keys are written in a fixed order and only double quotes in the
// destination are escaped, so consumers can rely on the exact bytes.
func (g *FallbackGenerator) Render(destination string, count int) string {
	var b strings.Builder
	b.Grow(128)

	b.WriteString(`{"ville_ou_pays":"`)
	b.WriteString(escapeQuotes(NormalizeDestination(destination)))
	b.WriteString(`","endroits_a_visiter":[`)
	for i, spot := range g.Spots(count) {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(spot)
		b.WriteByte('"')
	}
	b.WriteString(`],"prix_moyen_repas":"`)
	b.WriteString(DefaultMealPrice)
	b.WriteString(`","mode":"`)
	b.WriteString(string(ModeFallback))
	b.WriteString(`"}`)

	return b.String()
}

// GenerateGuide implements Generator. It never fails.
func (g *FallbackGenerator) GenerateGuide(_ context.Context, destination string, count int) (string, error) {
	return g.Render(destination, count), nil
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
