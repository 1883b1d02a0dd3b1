package metadecoders

import (
	"encoding/json"
	"fmt"

	"github.com/clbanning/mxj/v2"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	yaml "gopkg.in/yaml.v2"
)

// Decoder provides some configuration options for the decoders.
type Decoder struct{}

// Default is a Decoder in its default configuration.
var Default Decoder

// UnmarshalToMap will unmarshal data in format f into a new map.
func (d Decoder) UnmarshalToMap(data []byte, f Format) (map[string]any, error) {
	m := make(map[string]any)
	if data == nil {
		return m, nil
	}
	if err := d.unmarshal(data, f, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// UnmarshalFileToMap is the same as UnmarshalToMap, but reads the data from
// the given filename. The format is resolved from the file extension.
func (d Decoder) UnmarshalFileToMap(fs afero.Fs, filename string) (map[string]any, error) {
	format := FormatFromString(filename)
	if format == "" {
		return nil, fmt.Errorf("%q is not a valid data format", filename)
	}
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}
	return d.UnmarshalToMap(data, format)
}

func (d Decoder) unmarshal(data []byte, f Format, v *map[string]any) error {
	switch f {
	case TOML:
		return toml.Unmarshal(data, v)
	case YAML:
		var m map[any]any
		if err := yaml.Unmarshal(data, &m); err != nil {
			return err
		}
		*v = cast.ToStringMap(m)
		return nil
	case XML:
		m, err := mxj.NewMapXml(data)
		if err != nil {
			return err
		}
		// Unwrap the single root element so XML documents decode to the
		// same shape as the other formats.
		root := map[string]any(m)
		if len(root) == 1 {
			for _, inner := range root {
				if mm, err := cast.ToStringMapE(inner); err == nil {
					*v = mm
					return nil
				}
			}
		}
		*v = root
		return nil
	case JSON:
		return json.Unmarshal(data, v)
	default:
		return fmt.Errorf("unmarshal of format %q is not supported", f)
	}
}
