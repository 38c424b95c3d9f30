// Package web embeds the browser client served at the server root.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var Assets embed.FS

// StaticFS returns a file system rooted at the embedded static directory.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(Assets, "static")
	if err != nil {
		// Only fails if the embed pattern above changes
		return http.FS(embed.FS{})
	}
	return http.FS(sub)
}
