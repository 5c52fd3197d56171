package font

const (
	// GoogleFontsAPI is the base URL for the Google Fonts CSS API
	GoogleFontsAPI = "https://fonts.googleapis.com/css"

	// FontExt is the only file extension the naming convention accepts
	FontExt = ".ttf"

	// DefaultFontWeight is the standard font weight used when not specified
	DefaultFontWeight = 400

	// ItalicStyle is the only style label that changes the encoded format
	ItalicStyle = "Italic"
)
