package font

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ErrNamingConvention is returned for files not named Name[-WeightStyle].ttf.
var ErrNamingConvention = errors.New("font file name is not standard")

// NamingError reports the file that broke the naming convention.
type NamingError struct {
	Path string
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("the name of the TTF file '%s' is not standard", e.Path)
}

func (e *NamingError) Unwrap() error {
	return ErrNamingConvention
}

// Format is the weight and style taken from a file name. Empty fields are
// absent; resolution to numbers happens in the Encoder.
type Format struct {
	Weight string // raw label, e.g. "Bold"
	Style  string // raw label, e.g. "Italic"
}

// IsDefault reports whether neither weight nor style was given.
func (f Format) IsDefault() bool {
	return f.Weight == "" && f.Style == ""
}

// Descriptor is what a single font file name says about the font.
type Descriptor struct {
	Family string
	Format Format
}

// Parser tokenizes font file names against a weight table.
type Parser struct {
	weights WeightTable
}

// NewParser creates a parser that recognizes the labels in weights.
func NewParser(weights WeightTable) *Parser {
	return &Parser{weights: weights}
}

var defaultParser = NewParser(DefaultWeights)

// Extract parses the base name of a font file path with DefaultWeights.
func Extract(filename string) (Descriptor, error) {
	return defaultParser.Extract(filename)
}

// ParseFilename tokenizes a base name with DefaultWeights.
func ParseFilename(base string) (Descriptor, bool) {
	return defaultParser.ParseFilename(base)
}

// Extract parses the base name of filename into a Descriptor.
func (p *Parser) Extract(filename string) (Descriptor, error) {
	d, ok := p.ParseFilename(path.Base(filepath.ToSlash(filename)))
	if !ok {
		return Descriptor{}, &NamingError{Path: filename}
	}
	return d, nil
}

// ParseFilename tokenizes base as Name[-[Weight][Style]].ttf where Name and
// Style are runs of word characters and Weight is a table label.
func (p *Parser) ParseFilename(base string) (Descriptor, bool) {
	stem, ok := strings.CutSuffix(base, FontExt)
	if !ok {
		return Descriptor{}, false
	}

	n := wordPrefix(stem)
	if n == 0 {
		return Descriptor{}, false
	}
	d := Descriptor{Family: stem[:n]}

	rest := stem[n:]
	if rest == "" {
		return d, true
	}
	if rest[0] != '-' {
		return Descriptor{}, false
	}
	rest = rest[1:]
	if wordPrefix(rest) != len(rest) {
		return Descriptor{}, false
	}

	d.Format.Weight = p.weights.prefix(rest)
	d.Format.Style = rest[len(d.Format.Weight):]
	return d, true
}

// wordPrefix returns the length of the leading [A-Za-z0-9_] run of s.
func wordPrefix(s string) int {
	for i := 0; i < len(s); i++ {
		if !isWordChar(s[i]) {
			return i
		}
	}
	return len(s)
}

func isWordChar(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}
