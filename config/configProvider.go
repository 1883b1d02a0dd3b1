package config

import (
	"github.com/sunwei/textescape/common/maps"
)

// Provider provides the configuration settings for a codec table.
type Provider interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetParams(key string) maps.Params
	GetStringMap(key string) map[string]any
	GetStringMapString(key string) map[string]string
	Get(key string) any
	Set(key string, value any)
	SetDefaults(params maps.Params)
	IsSet(key string) bool
}
