package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides, e.g. SCAMINTEL_SCAN_TIMEOUT=5s.
const EnvPrefix = "SCAMINTEL_"

var sections = map[string]struct{}{
	"scan":     {},
	"keywords": {},
	"filter":   {},
}

// envKey maps SCAMINTEL_SCAN_MAX_INPUT_BYTES to scan.max_input_bytes. Variables
// whose first word is not a section map to a top-level key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(key, "_")
	if !ok {
		return key
	}
	if _, known := sections[section]; !known {
		return key
	}
	return section + "." + field
}

// Load layers content over DefaultConfig, applies SCAMINTEL_ environment
// overrides and translates the result. An empty content loads the defaults.
func Load(content []byte) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(DefaultConfig)), toml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load default config: %w", err)
	}
	if len(content) > 0 {
		if err := k.Load(rawbytes.Provider(content), toml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var raw RawConfig
	err := k.UnmarshalWithConf("", &raw, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           &raw,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return raw.Translate()
}
