package font

import (
	"strconv"
	"strings"
)

// Family is one typeface and the formats requested for it, in scan order.
type Family struct {
	Name    string
	Formats []Format
}

// Encoder builds the value of the Google Fonts CSS API "family" parameter.
type Encoder struct {
	weights WeightTable
}

// NewEncoder creates an encoder resolving weight labels through weights.
func NewEncoder(weights WeightTable) *Encoder {
	return &Encoder{weights: weights}
}

// EncodeName splits a CamelCase family name into "+"-joined words,
// e.g. "OpenSans" becomes "Open+Sans".
func (e *Encoder) EncodeName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		if isUpper(name[i]) && i+1 < len(name) && isLower(name[i+1]) {
			b.WriteByte('+')
			b.WriteByte(name[i])
			b.WriteByte(name[i+1])
			i++
			continue
		}
		b.WriteByte(name[i])
	}
	return strings.TrimPrefix(b.String(), "+")
}

// EncodeFormat returns "<weight>[i]", or "" for a format with neither weight
// nor style. Only the exact style "Italic" adds the "i".
func (e *Encoder) EncodeFormat(f Format) string {
	if f.IsDefault() {
		return ""
	}
	token := strconv.Itoa(e.weights.Resolve(f.Weight))
	if f.Style == ItalicStyle {
		token += "i"
	}
	return token
}

// EncodeFamily returns "Name" or "Name:tok,tok" for one family.
func (e *Encoder) EncodeFamily(name string, formats []Format) string {
	tokens := make([]string, 0, len(formats))
	for _, f := range formats {
		if token := e.EncodeFormat(f); token != "" {
			tokens = append(tokens, token)
		}
	}

	encoded := e.EncodeName(name)
	if len(tokens) > 0 {
		encoded += ":" + strings.Join(tokens, ",")
	}
	return encoded
}

// EncodeFamilies joins several families with "|", keeping their order.
func (e *Encoder) EncodeFamilies(families []Family) string {
	parts := make([]string, len(families))
	for i, f := range families {
		parts[i] = e.EncodeFamily(f.Name, f.Formats)
	}
	return strings.Join(parts, "|")
}

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
