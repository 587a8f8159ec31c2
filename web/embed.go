package web

import "embed"

// Templates embeds the terminal render templates.
//
//go:embed templates/*.tmpl
var Templates embed.FS
