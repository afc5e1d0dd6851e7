// Package config defines the configuration types for edittree.
// These are pure data structures; discovery and loading live in
// internal/configloader.
package config

// Quote selects the quote character used when writing HTML attribute values.
type Quote string

const (
	QuoteDouble Quote = "double"
	QuoteSingle Quote = "single"
)

// Char returns the quote character. Unknown values default to double quotes.
func (q Quote) Char() byte {
	if q == QuoteSingle {
		return '\''
	}
	return '"'
}

// IsValid returns true if the quote style is a known value.
func (q Quote) IsValid() bool {
	switch q {
	case QuoteDouble, QuoteSingle:
		return true
	default:
		return false
	}
}

// Format controls how newly inserted text is written. It is the fallback
// style: the grammars prefer the style already present in the edited source.
type Format struct {
	// SpaceAfterColon inserts "name: value" rather than "name:value" when
	// adding CSS declarations.
	SpaceAfterColon bool `yaml:"space_after_colon"`

	// Quote is the quote style for newly written HTML attribute values.
	Quote Quote `yaml:"quote"`
}

// Config is the root configuration structure for edittree.
type Config struct {
	// Format holds the formatting fallbacks for inserted text.
	Format Format `yaml:"format"`

	// Backups enables sidecar backups before a file is rewritten.
	Backups bool `yaml:"backups"`
}

// DefaultFormat returns the formatting fallbacks used when no configuration
// is present.
func DefaultFormat() Format {
	return Format{
		SpaceAfterColon: true,
		Quote:           QuoteDouble,
	}
}

// Default returns the full default configuration.
func Default() *Config {
	return &Config{
		Format:  DefaultFormat(),
		Backups: false,
	}
}
