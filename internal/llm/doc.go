// Package llm asks a language model how long a food item keeps, which category
// it belongs to and which icon shows it best. It supports Gemini, OpenAI and
// Anthropic, validates every answer against a strict schema, caches good
// answers and falls back to fixed defaults whenever anything goes wrong.
package llm
