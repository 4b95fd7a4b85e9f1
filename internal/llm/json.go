package llm

import "strings"

// ExtractJSONObject locates the first top-level `{...}` block in model
// output. Model responses are untrusted text: they may wrap the JSON in
// prose or markdown fences, so callers parse leniently rather than failing
// on the envelope.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}
