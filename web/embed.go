package web

import "embed"

// FS holds the static assets served under /static. Paths are relative to
// this directory, so files live at static/<name>.
//
//go:embed static
var FS embed.FS
