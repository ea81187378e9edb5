package api

import (
	"context"

	"github.com/neexbeast/tourguide/internal/guide"
)

// GuideProvider defines the guide operations needed by handlers.
type GuideProvider interface {
	ObtainItinerary(ctx context.Context, destination string, count int) string
	Mode() guide.Mode
}
