package llm

import (
	"strings"
	"testing"
)

func TestStripJSONFence(t *testing.T) {
	fenced := strings.Join([]string{
		"",
		"        ```json",
		"        {",
		`          "steps": [`,
		"            {",
		`              "action": "create_file",`,
		`              "path": "hello.py",`,
		`              "content": "print('Hello, world!')"`,
		"            }",
		"          ]",
		"        }",
		"        ```",
	}, "\n")
	unfenced := strings.Join([]string{
		"{",
		`          "steps": [`,
		"            {",
		`              "action": "create_file",`,
		`              "path": "hello.py",`,
		`              "content": "print('Hello, world!')"`,
		"            }",
		"          ]",
		"        }",
	}, "\n")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"fenced block", fenced, unfenced},
		{"bare json passes through untouched", `  {"a": 1}  `, `  {"a": 1}  `},
		{"opening fence only passes through", "```json\n{\"a\": 1}", "```json\n{\"a\": 1}"},
		{"unlabeled fence passes through", "```\n{\"a\": 1}\n```", "```\n{\"a\": 1}\n```"},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripJSONFence(tt.input); got != tt.want {
				t.Errorf("StripJSONFence(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
