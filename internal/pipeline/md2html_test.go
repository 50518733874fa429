package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "heading and paragraph",
			input:    "# Title\n\nSome text.\n",
			contains: []string{"<h1>Title</h1>", "<p>Some text.</p>"},
		},
		{
			name:     "fenced code block keeps language class",
			input:    "```python\nprint(\"hi\")\n```\n",
			contains: []string{`<pre><code class="language-python">`},
		},
		{
			name:     "code content is entity escaped",
			input:    "```html\n<html> & \"quotes\"\n```\n",
			contains: []string{"&lt;html&gt;", "&amp;", "&quot;quotes&quot;"},
		},
		{
			name:     "leading html comment passes through",
			input:    "<!--\ntitle = x\n-->\n\n# Post\n",
			contains: []string{"<!--\ntitle = x\n-->", "<h1>Post</h1>"},
		},
		{
			name:     "lists",
			input:    "- one\n- two\n",
			contains: []string{"<ul>", "<li>one</li>", "<li>two</li>"},
		},
	}

	converter := NewGoldmarkConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := converter.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestToHTMLCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, "# hi")
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
