// Package styles compiles the site stylesheet: the stylesheet source plus
// the highlight theme's generated rules, compressed into one CSS file.
package styles

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
)

// Sentinel errors for style compilation.
var (
	ErrUnknownTheme = errors.New("unknown highlight theme")
	ErrCompile      = errors.New("stylesheet compilation failed")
)

// ResolveTheme looks up a chroma style by theme name.
// Unknown names are an error rather than a silent fallback.
func ResolveTheme(name string) (*chroma.Style, error) {
	style := chromastyles.Get(name)
	if style == chromastyles.Fallback && name != chromastyles.Fallback.Name {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return style, nil
}

// Compile concatenates the stylesheet source with the theme's highlight
// rules and minifies the result. A compilation failure is fatal to the
// whole build; there is no partial output.
func Compile(source string, style *chroma.Style) (string, error) {
	highlightCSS, err := highlightStyles(style)
	if err != nil {
		return "", err
	}

	combined := strings.TrimSpace(source) + "\n" + highlightCSS

	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	compiled, err := m.String("text/css", combined)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompile, err)
	}
	return compiled, nil
}

// highlightStyles generates the theme's CSS rules under the .highlight
// class, the hook the site stylesheet and the highlighted markup share.
func highlightStyles(style *chroma.Style) (string, error) {
	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompile, err)
	}

	return strings.ReplaceAll(buf.String(), ".chroma", ".highlight"), nil
}
