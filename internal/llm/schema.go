package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
)

// MaxDaysToExpiry bounds the shelf life a model may claim.
const MaxDaysToExpiry = 3650

// Response validation errors.
var (
	ErrMalformedResponse = errors.New("malformed model response")
	ErrMissingField      = errors.New("missing field in model response")
	ErrInvalidField      = errors.New("invalid field in model response")
)

// suggestionSchema is the object every provider must answer with.
func suggestionSchema() Schema {
	return Schema{
		Name: "food_suggestion",
		Properties: []Property{
			{
				Name:        "daysToExpiry",
				Type:        TypeInteger,
				Description: "Estimated number of days until the item expires from today.",
			},
			{
				Name:        "category",
				Type:        TypeString,
				Description: "The type of food, not where it is stored.",
				Enum:        model.CategoryNames(),
			},
			{
				Name:        "icon",
				Type:        TypeString,
				Description: "A FontAwesome 6 free solid icon class name starting with 'fa-'.",
			},
		},
	}
}

type rawSuggestion struct {
	DaysToExpiry *json.Number `json:"daysToExpiry"`
	Category     *string      `json:"category"`
	Icon         *string      `json:"icon"`
}

// ParseSuggestion validates a raw model answer. Markdown code fences around
// the JSON payload are tolerated.
func ParseSuggestion(content string) (model.Suggestion, error) {
	clean := cleanMarkdownWrapper(content)
	if clean == "" {
		return model.Suggestion{}, fmt.Errorf("%w: empty content", ErrMalformedResponse)
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(clean)))
	dec.UseNumber()

	var raw rawSuggestion
	if err := dec.Decode(&raw); err != nil {
		return model.Suggestion{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return model.Suggestion{}, fmt.Errorf("%w: trailing data after the JSON object", ErrMalformedResponse)
	}

	days, err := parseDays(raw.DaysToExpiry)
	if err != nil {
		return model.Suggestion{}, err
	}

	if raw.Category == nil || strings.TrimSpace(*raw.Category) == "" {
		return model.Suggestion{}, fmt.Errorf("%w: category", ErrMissingField)
	}
	category, ok := model.ParseCategory(*raw.Category)
	if !ok {
		return model.Suggestion{}, fmt.Errorf("%w: unknown category %q", ErrInvalidField, *raw.Category)
	}

	if raw.Icon == nil || strings.TrimSpace(*raw.Icon) == "" {
		return model.Suggestion{}, fmt.Errorf("%w: icon", ErrMissingField)
	}

	return model.Suggestion{
		DaysToExpiry: days,
		Category:     category,
		Icon:         strings.TrimSpace(*raw.Icon),
	}, nil
}

// parseDays accepts integral numbers in 1..MaxDaysToExpiry. Zero counts as
// missing.
func parseDays(n *json.Number) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: daysToExpiry", ErrMissingField)
	}

	days, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil || f != float64(int64(f)) {
			return 0, fmt.Errorf("%w: daysToExpiry %q is not an integer", ErrInvalidField, n.String())
		}
		days = int64(f)
	}

	switch {
	case days == 0:
		return 0, fmt.Errorf("%w: daysToExpiry", ErrMissingField)
	case days < 1 || days > MaxDaysToExpiry:
		return 0, fmt.Errorf("%w: daysToExpiry %d out of range", ErrInvalidField, days)
	}

	return int(days), nil
}

// cleanMarkdownWrapper strips a ```json ... ``` fence if present.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		content = content[i+1:]
	} else {
		content = strings.TrimPrefix(content, "json")
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")

	return strings.TrimSpace(content)
}
