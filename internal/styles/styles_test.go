package styles

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveTheme(t *testing.T) {
	t.Parallel()

	t.Run("known theme", func(t *testing.T) {
		t.Parallel()

		style, err := ResolveTheme("monokai")
		if err != nil {
			t.Fatalf("ResolveTheme() error = %v", err)
		}
		if style.Name != "monokai" {
			t.Errorf("style name = %q, want monokai", style.Name)
		}
	})

	t.Run("unknown theme", func(t *testing.T) {
		t.Parallel()

		_, err := ResolveTheme("nosuchtheme")
		if !errors.Is(err, ErrUnknownTheme) {
			t.Fatalf("error = %v, want ErrUnknownTheme", err)
		}
	})
}

func TestCompile(t *testing.T) {
	t.Parallel()

	style, err := ResolveTheme("monokai")
	if err != nil {
		t.Fatal(err)
	}

	source := "body {\n  color: red;\n}\n"
	compiled, err := Compile(source, style)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	if !strings.Contains(compiled, "body{color:red}") {
		t.Errorf("compiled CSS missing minified source rule: %q", truncate(compiled, 200))
	}
	if !strings.Contains(compiled, ".highlight") {
		t.Errorf("compiled CSS missing .highlight rules: %q", truncate(compiled, 200))
	}
	if strings.Contains(compiled, ".chroma") {
		t.Errorf("compiled CSS still references .chroma: %q", truncate(compiled, 200))
	}
	if strings.Contains(compiled, "\n\n") {
		t.Errorf("compiled CSS is not compressed: %q", truncate(compiled, 200))
	}
}

func TestCompileEmptySource(t *testing.T) {
	t.Parallel()

	style, err := ResolveTheme("monokai")
	if err != nil {
		t.Fatal(err)
	}

	compiled, err := Compile("", style)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if !strings.Contains(compiled, ".highlight") {
		t.Errorf("compiled CSS missing .highlight rules: %q", truncate(compiled, 200))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
