package guide

import "context"

// Generator produces a JSON travel guide for a destination.
type Generator interface {
	GenerateGuide(ctx context.Context, destination string, count int) (string, error)
}

// Mode identifies which generator served a guide.
type Mode string

const (
	ModeRemote   Mode = "remote"
	ModeFallback Mode = "fallback"
)

// Result is the shape of a guide document, for callers that decode the
// JSON returned by ObtainItinerary or the HTTP endpoints. The service itself
// passes guides around as raw JSON and never builds a Result. Remote answers
// omit Mode.
type Result struct {
	Destination string   `json:"ville_ou_pays"`
	Spots       []string `json:"endroits_a_visiter"`
	MealPrice   string   `json:"prix_moyen_repas"`
	Mode        string   `json:"mode,omitempty"`
}

// Request is a single guide request as received from a caller.
type Request struct {
	Destination string
	Count       int
}
