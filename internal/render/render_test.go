package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"simple text", "Hello world"},
		{"markdown formatting", "# Header\n**bold text**"},
		{"empty string", ""},
		{"multiline", "Line 1\nLine 2\nLine 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// In tests stdout is not a terminal, so the text passes through
			// unstyled — the function must never panic or drop content.
			result := Markdown(tt.input)
			assert.Equal(t, tt.input, result)
		})
	}
}
