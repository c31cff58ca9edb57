package replvars

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the file configuration for the CLI and for hosts that prefer a
// YAML file over functional options.
type Config struct {
	// DateFormat is the site date format in PHP date() syntax.
	DateFormat string `yaml:"date_format" validate:"required"`

	// ExcerptLength bounds generated excerpts, in runes.
	ExcerptLength int `yaml:"excerpt_length" validate:"gte=1,lte=10000"`

	// Separator joins term lists when a template gives none.
	Separator string `yaml:"separator"`

	Tools ToolsConfig `yaml:"tools"`
}

// ToolsConfig configures the maintenance tool store.
type ToolsConfig struct {
	// Driver is a registered tool store driver name ("memory", "postgres").
	Driver string `yaml:"driver" validate:"required,oneof=memory postgres"`

	// DSN is the driver connection string.
	DSN string `yaml:"dsn" validate:"required_if=Driver postgres"`

	// TablePrefix is prepended to every host table name.
	TablePrefix string `yaml:"table_prefix" validate:"required,table_prefix"`

	QueryTimeout time.Duration `yaml:"query_timeout" validate:"gte=0"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		DateFormat:    DefaultDateFormat,
		ExcerptLength: DefaultExcerptLength,
		Separator:     DefaultSeparator,
		Tools: ToolsConfig{
			Driver:       StoreDriverNameMemory,
			TablePrefix:  DefaultTablePrefix,
			QueryTimeout: DefaultQueryTimeout,
		},
	}
}

// Validation tag for table prefixes
const validateTagTablePrefix = "table_prefix"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// configValidator returns the shared validator with custom rules registered.
func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// prefixes are interpolated into SQL identifiers
		_ = validate.RegisterValidation(validateTagTablePrefix, func(fl validator.FieldLevel) bool {
			return isIdentifier(fl.Field().String())
		})
	})
	return validate
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !(c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}

// Validate checks the configuration and reports the first invalid field.
func (c *Config) Validate() error {
	err := configValidator().Struct(c)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return NewConfigValidationError(strings.ToLower(fe.Namespace()), fe.Tag())
	}
	return NewConfigValidationError("", err.Error())
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, NewConfigError(ErrMsgConfigParse, "", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigRead, path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
