package llm

import (
	"fmt"
	"strings"

	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
)

const systemPrompt = "You are a food storage expert. You estimate shelf life, classify food by type " +
	"and choose a fitting FontAwesome icon. Always answer with a single JSON object and nothing else."

func buildPrompt(name string, isFrozen bool) string {
	storage := "in the refrigerator"
	if isFrozen {
		storage = "in the freezer"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "A user is storing %q %s.\n\n", strings.TrimSpace(name), storage)
	b.WriteString("1. Estimate how many days from today until it expires given that storage.\n")
	b.WriteString("2. Pick the category that describes the type of food, not the storage location. ")
	fmt.Fprintf(&b, "Valid categories: %s.\n", strings.Join(model.CategoryNames(), ", "))
	b.WriteString("3. Pick a FontAwesome 6 free solid icon class name that starts with 'fa-' ")
	b.WriteString("(for example fa-apple-whole, fa-carrot, fa-cheese, fa-drumstick-bite, fa-fish).\n\n")
	b.WriteString(`Respond with JSON: {"daysToExpiry": <integer>, "category": "<category>", "icon": "<fa-icon>"}`)

	return b.String()
}
