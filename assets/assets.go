package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed all:layout all:content
	assetFS embed.FS
)

// LayoutPath is the embedded page layout
const LayoutPath = "layout/greeting.tmx"

// FS exposes the embedded layout and content files
func FS() fs.FS {
	return assetFS
}
