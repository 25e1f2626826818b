// Package assets embeds the default asset directory: the UI skin and any
// art shipped with the game. Missing art is replaced by placeholders at
// runtime, so only ui/skin.json is mandatory.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed ui
var embedded embed.FS

// FS returns the embedded asset directory rooted so that paths look like
// "ui/skin.json".
func FS() fs.FS {
	return embedded
}
