// Package web embeds the static landing page (HTML/CSS/JS) served by the serve command.
//
// The page and the TUI are two renditions of the same thing: script.js drives the browser DOM
// with the same dropdown/tab/slideshow rules internal/coordinator implements for the terminal.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var assets embed.FS

// FS returns the embedded asset tree rooted at the static directory.
func FS() (fs.FS, error) {
	return fs.Sub(assets, "static")
}

// Handler serves the embedded landing page with index.html at the root.
func Handler() (http.Handler, error) {
	sub, err := FS()
	if err != nil {
		return nil, err
	}
	return http.FileServer(http.FS(sub)), nil
}
