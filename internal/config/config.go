// Package config loads runtime settings from an optional config file, an
// optional .env file and RANDOMLY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/randomly/internal/fact"
	"github.com/valpere/randomly/internal/translator"
)

const envPrefix = "RANDOMLY"

type Config struct {
	Fact       FactConfig       `mapstructure:"fact"`
	Translator TranslatorConfig `mapstructure:"translator"`
	Log        LogConfig        `mapstructure:"log"`
}

type FactConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type TranslatorConfig struct {
	Service     string        `mapstructure:"service"`
	BaseURL     string        `mapstructure:"base_url"`
	Email       string        `mapstructure:"email"`
	Credentials string        `mapstructure:"credentials"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServiceConfig converts the translator section for translator.New.
func (c TranslatorConfig) ServiceConfig() translator.ServiceConfig {
	return translator.ServiceConfig{
		Credentials: c.Credentials,
		Email:       c.Email,
		BaseURL:     c.BaseURL,
		Timeout:     c.Timeout,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("fact.base_url", fact.DefaultBaseURL)
	v.SetDefault("fact.timeout", fact.DefaultTimeout)
	v.SetDefault("translator.service", "mymemory")
	v.SetDefault("translator.base_url", "")
	v.SetDefault("translator.email", "")
	v.SetDefault("translator.credentials", "")
	v.SetDefault("translator.timeout", 30*time.Second)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}

// Load reads configuration. path may be empty, in which case only defaults,
// .env and the environment are used.
func Load(path string) (*Config, error) {
	// .env is optional; variables may come from the real environment.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Fact),
		validation.Field(&c.Translator),
		validation.Field(&c.Log),
	)
}

func (c FactConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

func (c TranslatorConfig) Validate() error {
	services := make([]interface{}, len(translator.Names))
	for i, name := range translator.Names {
		services[i] = name
	}
	return validation.ValidateStruct(&c,
		validation.Field(&c.Service, validation.Required, validation.In(services...)),
		validation.Field(&c.BaseURL, is.URL),
		validation.Field(&c.Email, is.EmailFormat),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

func (c LogConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.In("trace", "debug", "info", "warn", "error")),
		validation.Field(&c.Format, validation.In("console", "json", "pretty")),
	)
}

// IsValidationError reports whether err came from config validation.
func IsValidationError(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}
