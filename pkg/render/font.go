// pkg/render/font.go
package render

import (
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadFontFace parses a TTF file into a face at the given size. When the
// file is missing or malformed it logs and falls back to the builtin
// bitmap face so the game still comes up.
func LoadFontFace(path string, size float64) font.Face {
	fontData, err := os.ReadFile(path)
	if err != nil {
		log.Printf("font: %v, using builtin face", err)
		return basicfont.Face7x13
	}
	tt, err := opentype.Parse(fontData)
	if err != nil {
		log.Printf("font: parse %s: %v, using builtin face", path, err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("font: face %s: %v, using builtin face", path, err)
		return basicfont.Face7x13
	}
	return face
}
