package llm

import "strings"

// StripJSONFence removes a ```json ... ``` fence around a model response.
// Responses without both fence markers pass through unchanged; whatever
// remains must still JSON-decode on its own.
func StripJSONFence(s string) string {
	trimmed := strings.TrimSpace(s)
	inner, ok := strings.CutPrefix(trimmed, "```json")
	if !ok {
		return s
	}
	inner, ok = strings.CutSuffix(inner, "```")
	if !ok {
		return s
	}
	return strings.TrimSpace(inner)
}
