package config

import (
	"github.com/spf13/afero"
	"github.com/sunwei/textescape/parser/metadecoders"
)

// ValidConfigFileExtensions lists the extensions FromFile understands.
var ValidConfigFileExtensions = []string{"toml", "yaml", "yml", "xml", "json"}

// FromFile loads a table or codec configuration from the given filename.
// The format is resolved from the file extension.
func FromFile(fs afero.Fs, filename string) (Provider, error) {
	m, err := loadConfigFromFile(fs, filename)
	if err != nil {
		return nil, err
	}
	return NewFrom(m), nil
}

// FromFileToMap is the same as FromFile, but it returns the config values
// as a simple map.
func FromFileToMap(fs afero.Fs, filename string) (map[string]any, error) {
	return loadConfigFromFile(fs, filename)
}

// FromTOML creates a Provider from the given TOML document.
func FromTOML(data []byte) (Provider, error) {
	return fromBytes(data, metadecoders.TOML)
}

// FromYAML creates a Provider from the given YAML document.
func FromYAML(data []byte) (Provider, error) {
	return fromBytes(data, metadecoders.YAML)
}

// FromXML creates a Provider from the given XML document. The root element
// is unwrapped.
func FromXML(data []byte) (Provider, error) {
	return fromBytes(data, metadecoders.XML)
}

func fromBytes(data []byte, format metadecoders.Format) (Provider, error) {
	m, err := metadecoders.Default.UnmarshalToMap(data, format)
	if err != nil {
		return nil, err
	}
	return NewFrom(m), nil
}

func loadConfigFromFile(fs afero.Fs, filename string) (map[string]any, error) {
	m, err := metadecoders.Default.UnmarshalFileToMap(fs, filename)
	if err != nil {
		return nil, err
	}
	return m, nil
}
