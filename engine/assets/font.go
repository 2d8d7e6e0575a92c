// Package assets loads fonts and images from disk.
package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Font is a parsed font file from which sized faces are made.
type Font struct {
	Name   string
	Path   string
	source *text.FontSource
}

// LoadFont reads and validates a TrueType/OpenType font. There is no
// fallback font: a missing or corrupt file is an error.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	return ParseFont(path, data)
}

// ParseFont builds a Font from TrueType/OpenType data. path is only
// recorded; it may be empty for embedded fonts.
func ParseFont(path string, data []byte) (*Font, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", path, err)
	}
	name, err := parsed.Name(nil, sfnt.NameIDFamily)
	if err != nil || name == "" {
		name = filepath.Base(path)
	}

	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", path, err)
	}
	return &Font{Name: name, Path: path, source: src}, nil
}

// MustLoadFont is LoadFont for startup code; it panics on failure.
func MustLoadFont(path string) *Font {
	f, err := LoadFont(path)
	if err != nil {
		panic(err)
	}
	return f
}

// Face returns a face of the given size in points.
func (f *Font) Face(size float64) text.Face { return f.source.Face(size) }

func (f *Font) Close() error {
	if f == nil || f.source == nil {
		return nil
	}
	return f.source.Close()
}

// MustParseFont is ParseFont for embedded font data.
func MustParseFont(data []byte) *Font {
	f, err := ParseFont("", data)
	if err != nil {
		panic(err)
	}
	return f
}
