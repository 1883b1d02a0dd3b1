// Package symbol_config decodes reference tables from configuration data
// (TOML, YAML, XML or plain maps), so codec tables can be defined outside
// the shipped formats, including the small synthetic tables used in tests.
package symbol_config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/sunwei/textescape/common/maps"
	"github.com/sunwei/textescape/config"
	"github.com/sunwei/textescape/escape/symbol"
)

// Config holds a decoded table definition.
type Config struct {
	// Marker and Terminator are single-byte strings ("&", ";").
	Marker     string
	Terminator string

	// PreferTerminated selects terminator-bearing names as canonical.
	PreferTerminated bool

	// DefaultLevel is the escape level for low codepoints no Levels range
	// covers; AboveLevel is the shared bucket above all ranges.
	DefaultLevel int
	AboveLevel   int

	References []ReferenceConfig
	Levels     []LevelRangeConfig
}

// ReferenceConfig is one named reference record.
type ReferenceConfig struct {
	Name       string
	Codepoints []int
}

// LevelRangeConfig assigns an escape level to an inclusive codepoint range.
type LevelRangeConfig struct {
	From  int
	To    int
	Level int
}

// Default is the decode starting point.
var Default = Config{
	Marker:           "&",
	Terminator:       ";",
	PreferTerminated: true,
	DefaultLevel:     3,
	AboveLevel:       2,
}

// Decode reads a table definition from cfg's root.
func Decode(cfg config.Provider) (conf Config, err error) {
	conf = Default
	m := cfg.Get("")
	if m == nil {
		return
	}
	mm, err := maps.ToStringMapE(m)
	if err != nil {
		return conf, err
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &conf,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return conf, err
	}
	if err = decoder.Decode(mm); err != nil {
		return conf, err
	}
	return conf, nil
}

// Table builds the immutable symbol.Table this configuration describes.
func (c Config) Table() (*symbol.Table, error) {
	if len(c.Marker) != 1 || len(c.Terminator) != 1 {
		return nil, fmt.Errorf("symbol_config: marker and terminator must be single bytes, got %q and %q", c.Marker, c.Terminator)
	}

	refs := make([]symbol.Reference, len(c.References))
	for i, rc := range c.References {
		cps := make([]rune, len(rc.Codepoints))
		for j, cp := range rc.Codepoints {
			cps[j] = rune(cp)
		}
		refs[i] = symbol.Reference{Name: rc.Name, Codepoints: cps}
	}

	opts := symbol.Options{
		Marker:           c.Marker[0],
		Terminator:       c.Terminator[0],
		PreferTerminated: c.PreferTerminated,
		AboveLevel:       uint8(c.AboveLevel),
		Levels:           c.levelTable(),
	}
	return symbol.New(refs, opts)
}

func (c Config) levelTable() []uint8 {
	if len(c.Levels) == 0 {
		return nil
	}
	var max int
	for _, lr := range c.Levels {
		if lr.To > max {
			max = lr.To
		}
	}
	levels := make([]uint8, max+1)
	for i := range levels {
		levels[i] = uint8(c.DefaultLevel)
	}
	for _, lr := range c.Levels {
		for i := lr.From; i <= lr.To && i >= 0; i++ {
			levels[i] = uint8(lr.Level)
		}
	}
	return levels
}
