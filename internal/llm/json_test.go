package llm

import "testing"

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "bare object",
			input: `{"a":1}`,
			want:  `{"a":1}`,
			ok:    true,
		},
		{
			name:  "prose around the object",
			input: "Sure, here you go:\n{\"a\":1}\nHope that helps.",
			want:  `{"a":1}`,
			ok:    true,
		},
		{
			name:  "markdown fence",
			input: "```json\n{\"a\":1}\n```",
			want:  `{"a":1}`,
			ok:    true,
		},
		{
			name:  "nested braces stay intact",
			input: `text {"outer":{"inner":2}} trailing`,
			want:  `{"outer":{"inner":2}}`,
			ok:    true,
		},
		{
			name:  "no object",
			input: "I cannot produce JSON for that.",
			ok:    false,
		},
		{
			name:  "closing brace before opening",
			input: "} nothing here {",
			ok:    false,
		},
		{
			name:  "empty string",
			input: "",
			ok:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
