// Package blogen generates a static blog site from markdown posts,
// string-replacement HTML templates, a stylesheet, and a static asset tree.
//
// # Quick Start
//
// Load a configuration, create a site, and build it:
//
//	cfg, err := blogen.LoadConfig("site.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	site, err := blogen.NewSite(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := site.Build(ctx)
//
// A build is a single linear pass: there is no caching, no dependency
// graph, and no concurrency. Each invocation regenerates the whole site.
//
// # Build Pipeline
//
//  1. Stylesheet compilation: site stylesheet + highlight theme rules,
//     minified into build/main.css
//  2. Per post: markdown to HTML (goldmark), metadata block extraction,
//     code highlighting (chroma), placeholder template rendering
//  3. Static asset sync, with optional PNG re-encoding
//  4. Index page from the post listing and the project list
//  5. Atom feed, when a base URL is configured
//
// # Templates
//
// Templates are literal HTML strings, not a templating language. {{NAME}}
// substitutes a value; {{exists:NAME}}...{{exists:NAME:end}} keeps its
// inner content only when NAME is a key in the post's metadata. Unresolved
// placeholders are left verbatim in the output.
//
// # Post Metadata
//
// Each post may start with an HTML comment holding key = value lines:
//
//	<!--
//	title = a post about things
//	date = 2023-01-01T10:00:00+00:00
//	draft = false
//	-->
//
// The block is stripped from the rendered body. Posts without a block, or
// without both title and date, are generated but not listed on the index.
package blogen
