package config

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/smykla-skalski/adoclint/pkg/config"
)

// CustomDecoderConfig returns a mapstructure decoder config with hooks for
// the Severity enum.
func CustomDecoderConfig() *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToSeverityHookFunc(),
		),
		WeaklyTypedInput: true,
		Result:           nil, // Set by caller
	}
}

// stringToSeverityHookFunc returns a decode hook for converting strings to
// config.Severity.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToSeverityHookFunc() mapstructure.DecodeHookFunc {
	return func(
		_ reflect.Type,
		t reflect.Type,
		data any,
	) (any, error) {
		if t != reflect.TypeFor[config.Severity]() {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return config.ParseSeverity(v)

		case int:
			return config.Severity(v), nil

		case int64:
			return config.Severity(v), nil

		default:
			return data, nil
		}
	}
}
