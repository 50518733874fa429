package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Sentinel errors for highlighting operations.
var (
	ErrUnknownLanguage = errors.New("no lexer for language")
	ErrHighlightFormat = errors.New("highlight formatting failed")
)

// codeBlockPattern matches a fenced code block as rendered by goldmark:
// a language-tagged <code> element inside <pre>. The body is matched
// non-greedily across newlines.
var codeBlockPattern = regexp.MustCompile(`<pre><code class="language-([a-zA-Z0-9]+)">((?s:.+?))</code></pre>`)

// entityDecoder reverses the four escapes the markdown renderer introduced.
// &amp; is decoded first, matching the order the escapes were applied in.
var entityDecoder = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
)

// CodeHighlighter abstracts syntax highlighting of rendered HTML.
type CodeHighlighter interface {
	Highlight(body string) (string, error)
}

// ChromaHighlighter replaces language-tagged code blocks with
// syntax-highlighted markup. Styling is class-based; the matching rules are
// emitted by the style compiler under the .highlight class.
type ChromaHighlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

// NewChromaHighlighter creates a highlighter for the given theme style.
func NewChromaHighlighter(style *chroma.Style) *ChromaHighlighter {
	return &ChromaHighlighter{
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
		style:     style,
	}
}

// Highlight replaces every language-tagged code block in body with
// highlighted markup. The language name is the lexer lookup key; an unknown
// language is an error, not a fallback to plain text.
func (h *ChromaHighlighter) Highlight(body string) (string, error) {
	var hlErr error

	out := codeBlockPattern.ReplaceAllStringFunc(body, func(block string) string {
		if hlErr != nil {
			return block
		}

		groups := codeBlockPattern.FindStringSubmatch(block)
		lang, code := groups[1], groups[2]

		highlighted, err := h.highlightBlock(lang, entityDecoder.Replace(code))
		if err != nil {
			hlErr = err
			return block
		}
		return highlighted
	})

	if hlErr != nil {
		return "", hlErr
	}
	return out, nil
}

// highlightBlock renders one decoded code block for the given language.
func (h *ChromaHighlighter) highlightBlock(lang, code string) (string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlightFormat, err)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlightFormat, err)
	}

	// The stylesheet exposes highlight rules under .highlight, the class the
	// wrapper element carried before chroma.
	return strings.Replace(buf.String(), `class="chroma"`, `class="highlight"`, 1), nil
}
