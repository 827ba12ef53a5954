package output

import "strings"

// Format specifies the encoding used for manifest output.
type Format string

const (
	// FormatYAML outputs in YAML format.
	FormatYAML Format = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON Format = "json"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the format is known.
func (f Format) IsValid() bool {
	switch f {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat parses s into a Format. Empty input means YAML.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return Format(s), false
	}
}

// ValidFormats returns the accepted format strings.
func ValidFormats() []string {
	return []string{"yaml", "json"}
}
