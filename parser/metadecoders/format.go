package metadecoders

import (
	"path/filepath"
	"strings"
)

// Format is the format of a serialized table or configuration document.
type Format string

const (
	// TOML is the TOML data format.
	TOML Format = "toml"
	// YAML is the YAML data format.
	YAML Format = "yaml"
	// XML is the XML data format.
	XML Format = "xml"
	// JSON is the JSON data format.
	JSON Format = "json"
)

// FormatFromString turns formatStr, typically a file extension without any
// ".", into a Format. It returns an empty string for unknown formats.
func FormatFromString(formatStr string) Format {
	formatStr = strings.ToLower(formatStr)
	if strings.Contains(formatStr, ".") {
		// Assume a filename
		formatStr = strings.TrimPrefix(filepath.Ext(formatStr), ".")
	}
	switch formatStr {
	case "yaml", "yml":
		return YAML
	case "toml":
		return TOML
	case "xml":
		return XML
	case "json":
		return JSON
	}
	return ""
}
