package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a configuration file.
const DefaultPath = "fsa.yaml"

// EnvPrefix prefixes environment overrides, e.g. FSA_CACHE_REDIS_ADDR.
const EnvPrefix = "FSA_"

// Cache drivers.
const (
	DriverNone   = "none"
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Config holds the runtime settings shared by the CLI subcommands.
type Config struct {
	LogLevel  string      `mapstructure:"log_level"`
	MaxLength int         `mapstructure:"max_length"`
	Input     string      `mapstructure:"input"`
	Output    string      `mapstructure:"output"`
	Format    string      `mapstructure:"format"`
	Cache     CacheConfig `mapstructure:"cache"`
	HTTP      HTTPConfig  `mapstructure:"http"`
}

type CacheConfig struct {
	Driver string        `mapstructure:"driver"`
	TTL    time.Duration `mapstructure:"ttl"`
	Redis  RedisConfig   `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// HTTPConfig applies to the long-running servers (serve and mcp).
// MaxLength replaces an unset top-level max_length for them.
type HTTPConfig struct {
	Port      int           `mapstructure:"port"`
	MaxLength int           `mapstructure:"max_length"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// DefaultServerMaxLength bounds synthesized expressions for servers unless
// configured otherwise.
const DefaultServerMaxLength = 1 << 20

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel: "info",
		Input:    "fsa.txt",
		Output:   "result.txt",
		Format:   "text",
		Cache: CacheConfig{
			Driver: DriverNone,
			TTL:    time.Hour,
			Redis:  RedisConfig{Addr: "localhost:6379"},
		},
		HTTP: HTTPConfig{
			Port:      8080,
			MaxLength: DefaultServerMaxLength,
			Timeout:   30 * time.Second,
		},
	}
}

// Load reads path (a missing file is not an error), applies FSA_*
// overrides from environ and validates the result.
func Load(path string, environ []string) (Config, error) {
	raw := map[string]any{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
			if raw == nil {
				raw = map[string]any{}
			}
		}
	}

	applyEnv(raw, environ)

	cfg := Default()
	if err := decode(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, cfg.Validate()
}

// FromEnv is Load with the process environment.
func FromEnv(path string) (Config, error) {
	return Load(path, os.Environ())
}

// Validate checks enumerated fields and ranges.
func (c Config) Validate() error {
	switch c.Cache.Driver {
	case DriverNone, DriverMemory, DriverRedis:
	default:
		return fmt.Errorf("unknown cache driver %q", c.Cache.Driver)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("max_length must not be negative, got %d", c.MaxLength)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port out of range: %d", c.HTTP.Port)
	}
	if c.HTTP.MaxLength < 0 {
		return fmt.Errorf("http.max_length must not be negative, got %d", c.HTTP.MaxLength)
	}
	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("http.timeout must not be negative, got %s", c.HTTP.Timeout)
	}
	return nil
}

// ServerMaxLength is the synthesis limit for serve and mcp: max_length when
// set, http.max_length otherwise.
func (c Config) ServerMaxLength() int {
	if c.MaxLength > 0 {
		return c.MaxLength
	}
	return c.HTTP.MaxLength
}

func decode(raw map[string]any, out *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// applyEnv turns FSA_CACHE_REDIS_ADDR=x into raw["cache"]["redis"]["addr"]=x.
// Segments are matched against the known sections so that keys containing
// underscores (log_level, max_length) survive. Variables that name no
// setting, such as FSA_HOME, are skipped.
func applyEnv(raw map[string]any, environ []string) {
	known := settings(reflect.TypeOf(Config{}), "")
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		path := envPath(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)))
		if len(path) == 0 || !known[strings.Join(path, ".")] {
			continue
		}
		node := raw
		for _, section := range path[:len(path)-1] {
			child, ok := node[section].(map[string]any)
			if !ok {
				child = map[string]any{}
				node[section] = child
			}
			node = child
		}
		node[path[len(path)-1]] = value
	}
}

var sections = map[string][]string{
	"":      {"cache", "http"},
	"cache": {"redis"},
}

func envPath(name string) []string {
	var path []string
	parent := ""
	for {
		matched := false
		for _, s := range sections[parent] {
			if strings.HasPrefix(name, s+"_") {
				path = append(path, s)
				name = strings.TrimPrefix(name, s+"_")
				parent = s
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	if name == "" {
		return nil
	}
	return append(path, name)
}

// settings lists the dotted mapstructure paths of the leaf fields of t.
func settings(t reflect.Type, prefix string) map[string]bool {
	out := map[string]bool{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := prefix + f.Tag.Get("mapstructure")
		if f.Type.Kind() == reflect.Struct && f.Type != reflect.TypeOf(time.Duration(0)) {
			for k := range settings(f.Type, name+".") {
				out[k] = true
			}
			continue
		}
		out[name] = true
	}
	return out
}
