// Package stylesheet rewrites Google Fonts stylesheets so that their
// @font-face sources point at local font files.
//
// Only the shape served by the CSS API for TrueType clients is understood:
//
//	@font-face {
//	  font-family: 'Open Sans';
//	  font-style: normal;
//	  font-weight: 700;
//	  src: local('Open Sans Bold'), local('OpenSans-Bold'), url(https://fonts.gstatic.com/...) format('truetype');
//	}
//
// Anything else passes through untouched.
package stylesheet

import (
	"strings"
)

const atFontFace = "@font-face"

// FontFace is one @font-face block found in a stylesheet.
type FontFace struct {
	Start, End int      // byte range of the block, End is exclusive
	Locals     []string // local() names in declaration order
	URLs       []string // url() targets in declaration order

	urls []span // argument ranges of the url() calls
}

// span is a byte range [start, end) of the stylesheet.
type span struct {
	start, end int
}

func (s span) of(css string) string {
	return css[s.start:s.end]
}

// ParseFontFaces returns every @font-face block of css that has a src
// declaration with at least two local() names and one url().
func ParseFontFaces(css string) []FontFace {
	var faces []FontFace
	for pos := 0; pos < len(css); {
		face, next, ok := nextFontFace(css, pos)
		if next < 0 {
			break
		}
		if ok {
			faces = append(faces, face)
		}
		pos = next
	}
	return faces
}

// nextFontFace scans css from pos for the next @font-face block. next is
// where scanning should resume, -1 when no block follows.
func nextFontFace(css string, pos int) (face FontFace, next int, ok bool) {
	i := strings.Index(css[pos:], atFontFace)
	if i < 0 {
		return FontFace{}, -1, false
	}
	start := pos + i
	open := start + len(atFontFace)
	for open < len(css) && isSpace(css[open]) {
		open++
	}
	if open >= len(css) || css[open] != '{' {
		return FontFace{}, start + len(atFontFace), false
	}
	closing := indexTopLevel(css, span{open + 1, len(css)}, '}')
	if closing < 0 {
		return FontFace{}, -1, false
	}
	end := closing + 1

	face, ok = parseBlock(css, span{open + 1, closing})
	face.Start, face.End = start, end
	return face, end, ok
}

// parseBlock reads the src declaration of a block body.
func parseBlock(css string, body span) (FontFace, bool) {
	for _, decl := range splitTopLevel(css, body, ';') {
		colon := strings.IndexByte(decl.of(css), ':')
		if colon < 0 || !strings.EqualFold(strings.TrimSpace(css[decl.start:decl.start+colon]), "src") {
			continue
		}

		var face FontFace
		for _, item := range splitTopLevel(css, span{decl.start + colon + 1, decl.end}, ',') {
			if arg, ok := function(css, item, "local"); ok {
				face.Locals = append(face.Locals, unquote(strings.TrimSpace(arg.of(css))))
			} else if arg, ok := function(css, item, "url"); ok {
				face.URLs = append(face.URLs, unquote(strings.TrimSpace(arg.of(css))))
				face.urls = append(face.urls, arg)
			}
		}
		return face, len(face.Locals) >= 2 && len(face.URLs) >= 1
	}
	return FontFace{}, false
}

// function returns the argument range of a leading name(...) call in item.
// The name matches in any case; trailing tokens such as format('truetype')
// are ignored.
func function(css string, item span, name string) (span, bool) {
	s := item.of(css)
	trimmed := strings.TrimLeft(s, " \t\r\n\f")
	if len(trimmed) <= len(name) || !strings.EqualFold(trimmed[:len(name)], name) {
		return span{}, false
	}
	rest := strings.TrimLeft(trimmed[len(name):], " \t")
	if !strings.HasPrefix(rest, "(") {
		return span{}, false
	}
	closing := strings.IndexByte(rest, ')')
	if closing < 0 {
		return span{}, false
	}
	open := item.start + len(s) - len(rest)
	return span{open + 1, open + closing}, true
}

// indexTopLevel returns the index of the first sep in within that is outside
// quotes and parentheses, or -1.
func indexTopLevel(css string, within span, sep byte) int {
	var (
		depth int
		quote byte
	)
	for i := within.start; i < within.end; i++ {
		c := css[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == sep && depth == 0:
			return i
		}
	}
	return -1
}

// splitTopLevel splits within on sep outside of quotes and parentheses.
func splitTopLevel(css string, within span, sep byte) []span {
	var parts []span
	for start := within.start; ; {
		i := indexTopLevel(css, span{start, within.end}, sep)
		if i < 0 {
			return append(parts, span{start, within.end})
		}
		parts = append(parts, span{start, i})
		start = i + 1
	}
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
