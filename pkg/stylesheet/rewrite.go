package stylesheet

import (
	"path/filepath"
	"strings"

	"github.com/joeblew999/plat-fontface/pkg/font"
)

// Lookup finds the local file for a local() font name.
type Lookup func(name string) (string, bool)

// SuffixLookup matches names against sources by the suffix "<name>.ttf".
// The first source in list order wins; matching is case-sensitive.
func SuffixLookup(sources []string) Lookup {
	return func(name string) (string, bool) {
		if name == "" {
			return "", false
		}
		suffix := name + font.FontExt
		for _, src := range sources {
			if strings.HasSuffix(src, suffix) {
				return src, true
			}
		}
		return "", false
	}
}

// Resolve applies the fallback chain of a block: the second local name
// (usually the PostScript name) first, then the first local name.
func (f FontFace) Resolve(lookup Lookup) (string, bool) {
	if len(f.Locals) < 2 {
		return "", false
	}
	if file, ok := lookup(f.Locals[1]); ok {
		return file, true
	}
	return lookup(f.Locals[0])
}

// Rewrite points the url() sources of every recognized @font-face block in
// css at the matching file among sources, relative to the directory of
// dest. Blocks without a match are left byte-identical.
func Rewrite(css string, sources []string, dest string) string {
	return RewriteWith(css, SuffixLookup(sources), dest)
}

// RewriteWith is Rewrite with a caller-supplied lookup.
func RewriteWith(css string, lookup Lookup, dest string) string {
	faces := ParseFontFaces(css)
	if len(faces) == 0 {
		return css
	}

	var b strings.Builder
	b.Grow(len(css))
	last := 0
	for _, face := range faces {
		file, ok := face.Resolve(lookup)
		if !ok {
			continue
		}
		rel, err := relativeTo(dest, file)
		if err != nil {
			continue
		}
		for _, arg := range face.urls {
			b.WriteString(css[last:arg.start])
			b.WriteString(rel)
			last = arg.end
		}
	}
	b.WriteString(css[last:])
	return b.String()
}

// relativeTo returns file relative to the directory of dest, slash separated.
func relativeTo(dest, file string) (string, error) {
	base, err := filepath.Abs(filepath.Dir(dest))
	if err != nil {
		return "", err
	}
	target, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
