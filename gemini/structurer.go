// Package gemini implements the AI text structuring adapter using Google
// Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"brandsight"

	"github.com/kaptinlin/jsonrepair"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// MaxInputChars is the number of characters of page text submitted to the
// model; longer input is truncated.
const MaxInputChars = 12000

// Ensure Structurer implements brandsight.Structurer at compile time.
var _ brandsight.Structurer = (*Structurer)(nil)

// Structurer implements brandsight.Structurer using Google Gemini.
type Structurer struct {
	client *genai.Client
}

// NewStructurer creates a new Structurer.
func NewStructurer(client *genai.Client) *Structurer {
	return &Structurer{client: client}
}

// Structure sends text and a schema description to the model and returns
// the parsed JSON object. Replies wrapped in markdown code fences are
// unwrapped, and near-JSON replies are repaired before parsing.
func (s *Structurer) Structure(ctx context.Context, text string, schema string) (map[string]any, error) {
	if text == "" {
		return nil, brandsight.Errorf(brandsight.EINVALID, "text content required")
	}
	if schema == "" {
		return nil, brandsight.Errorf(brandsight.EINVALID, "schema description required")
	}

	prompt := BuildPrompt(text, schema)

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, brandsight.Errorf(brandsight.EUNAVAILABLE, "gemini call failed: %v", err)
	}
	if result == nil {
		return nil, brandsight.Errorf(brandsight.EINTERNAL, "gemini returned nil result")
	}

	return ParseReply(result.Text())
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You extract structured data from website text. Return ONLY a valid JSON object matching the requested schema. Do not include markdown formatting or any text outside the JSON.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt builds the user prompt containing the schema description
// and the (truncated) page text.
func BuildPrompt(text string, schema string) string {
	text = Truncate(text)

	var sb strings.Builder
	sb.WriteString("Analyze the following text from a company's website and extract the information described by the requested JSON schema.\n\n")
	fmt.Fprintf(&sb, "REQUESTED SCHEMA:\n%s\n\n", schema)
	fmt.Fprintf(&sb, "TEXT CONTENT:\n---\n%s\n---", text)
	return sb.String()
}

// Truncate limits text to MaxInputChars characters without splitting a
// multi-byte rune.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) > MaxInputChars {
		return string(runes[:MaxInputChars])
	}
	return text
}

// ParseReply strips markdown code fences from a model reply and parses it
// as a JSON object, repairing near-JSON replies when plain parsing fails.
func ParseReply(raw string) (map[string]any, error) {
	cleaned := stripCodeFences(raw)

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(cleaned)
		if repairErr != nil {
			return nil, brandsight.Errorf(brandsight.EINTERNAL, "model returned invalid JSON: %v", err)
		}
		if err := json.Unmarshal([]byte(repaired), &obj); err != nil {
			return nil, brandsight.Errorf(brandsight.EINTERNAL, "model returned invalid JSON: %v", err)
		}
	}
	return obj, nil
}

// stripCodeFences removes ```json / ``` wrappers the model sometimes adds
// despite instructions.
func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
