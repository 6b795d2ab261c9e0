package brandsight

import "context"

// Structurer turns raw page text into structured JSON using an AI model.
type Structurer interface {
	// Structure sends text together with a schema description to the
	// model and returns the parsed JSON object. Input text is truncated
	// before submission. A failed call or an unparsable reply returns an
	// error; callers degrade the affected field rather than failing the
	// whole request.
	Structure(ctx context.Context, text string, schema string) (map[string]any, error)
}
