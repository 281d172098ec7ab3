package intelligence

import (
	"context"
	"fmt"
	"strings"

	"tripcraft/models"
)

// GeminiReasoner rewrites component reasoning copy into client-friendly
// language. It is strictly best-effort: callers keep the locally generated
// reasoning whenever Polish errors or returns nothing.
type GeminiReasoner struct {
	client *GeminiClient
}

func NewGeminiReasoner(apiKey string) (*GeminiReasoner, error) {
	client, err := NewGeminiClient(apiKey)
	if err != nil {
		return nil, err
	}
	return &GeminiReasoner{client: client}, nil
}

// Polish asks Gemini for a one-sentence rewrite of the component reasoning.
func (r *GeminiReasoner) Polish(ctx context.Context, comp models.PackageComponent, trip models.TripDetails) (string, error) {
	prompt := fmt.Sprintf(
		"Rewrite the following travel package recommendation note as a single friendly sentence for a client quote. "+
			"Component: %s (%s), price %.2f %s. Trip to %s. Note: %q. Reply with the sentence only.",
		comp.Title, comp.Type, comp.TotalPrice, comp.Currency, trip.Destination, comp.Reasoning)

	out, err := r.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
