package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/lexivis/pkg/lexivis"
	"github.com/cognicore/lexivis/pkg/lexivis/internalerr"
	"github.com/cognicore/lexivis/pkg/lexivis/output"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LEXIVIS_"

// Config is the pipeline configuration. Zero fields fall back to Default.
type Config struct {
	WordCount int     `yaml:"word_count" toml:"word_count" validate:"gt=0"`
	Outfile   string  `yaml:"outfile" toml:"outfile" validate:"required"`
	Selection string  `yaml:"selection" toml:"selection" validate:"oneof=encounter frequency"`
	Workers   int     `yaml:"workers" toml:"workers" validate:"gte=1,lte=256"`
	ScaleMin  float64 `yaml:"scale_min" toml:"scale_min"`
	ScaleMax  float64 `yaml:"scale_max" toml:"scale_max" validate:"gtefield=ScaleMin"`

	Stoplist      string   `yaml:"stoplist" toml:"stoplist"`
	Snowball      bool     `yaml:"snowball" toml:"snowball"`
	ExtraStops    []string `yaml:"extra_stopwords" toml:"extra_stopwords"`
	LogLevel      string   `yaml:"log_level" toml:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat     string   `yaml:"log_format" toml:"log_format" validate:"omitempty,oneof=json text"`
	SummaryLength int      `yaml:"summary_length" toml:"summary_length" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		WordCount:     lexivis.DefaultWordCount,
		Outfile:       output.DefaultPath,
		Selection:     "encounter",
		Workers:       1,
		ScaleMin:      0.1,
		ScaleMax:      1,
		LogLevel:      "info",
		SummaryLength: 5,
	}
}

// Load reads a YAML or TOML config file, chosen by extension, on top of
// Default, then applies environment overrides and validates the result.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := decode(path, data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("config extension %q: %w", filepath.Ext(path), internalerr.ErrInvalidConfig)
	}
}

// LoadDotEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from LEXIVIS_* environment variables.
func ApplyEnv(cfg *Config) error {
	if v, ok := lookup("WORD_COUNT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("WORD_COUNT", err)
		}
		cfg.WordCount = n
	}
	if v, ok := lookup("WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("WORKERS", err)
		}
		cfg.Workers = n
	}
	if v, ok := lookup("SNOWBALL"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError("SNOWBALL", err)
		}
		cfg.Snowball = b
	}
	if v, ok := lookup("OUTFILE"); ok {
		cfg.Outfile = v
	}
	if v, ok := lookup("SELECTION"); ok {
		cfg.Selection = v
	}
	if v, ok := lookup("STOPLIST"); ok {
		cfg.Stoplist = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		cfg.LogFormat = strings.ToLower(v)
	}
	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func envError(name string, err error) error {
	return fmt.Errorf("%s%s: %v: %w", EnvPrefix, name, err, internalerr.ErrInvalidConfig)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks field constraints and reports every violation.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s %s", fe.Field(), friendlyMessage(fe)))
	}
	return fmt.Errorf("%s: %w", strings.Join(msgs, "; "), internalerr.ErrInvalidConfig)
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "gtefield":
		return "must not be below scale_min"
	default:
		return "is invalid"
	}
}
