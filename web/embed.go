// Package web holds the embedded HTML templates served by the HTTP server.
package web

import "embed"

//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS embeds the JS assets served under /static/.
//
//go:embed static/*.js
var StaticFS embed.FS
