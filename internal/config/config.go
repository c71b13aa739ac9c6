package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Storage    StorageConfig    `mapstructure:"storage"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Candidates CandidatesConfig `mapstructure:"candidates"`
	Widget     WidgetConfig     `mapstructure:"widget"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
}

type StorageConfig struct {
	// Backend selects where the daily word state lives.
	Backend        string `mapstructure:"backend" validate:"oneof=yaml db"`
	StateDirectory string `mapstructure:"state_directory" validate:"required"`
}

type DictionaryConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	CacheDirectory string `mapstructure:"cache_directory" validate:"required"`
}

type CandidatesConfig struct {
	RandomWordURL     string `mapstructure:"random_word_url" validate:"required,url"`
	WiktionaryBaseURL string `mapstructure:"wiktionary_base_url" validate:"required,langtoken"`
}

type WidgetConfig struct {
	SharedDirectory string `mapstructure:"shared_directory" validate:"required"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	Database        string            `mapstructure:"database"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/dailyword")
	}

	v.SetDefault("storage.backend", "yaml")
	v.SetDefault("storage.state_directory", "state")
	v.SetDefault("dictionary.base_url", "https://api.dictionaryapi.dev/api/v2/entries")
	v.SetDefault("dictionary.cache_directory", filepath.Join("dictionaries", "cache"))
	v.SetDefault("candidates.random_word_url", "https://random-word-api.herokuapp.com/word")
	v.SetDefault("candidates.wiktionary_base_url", "https://{lang}.wiktionary.org")
	v.SetDefault("widget.shared_directory", "widget")
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "dailyword")

	// Endpoint overrides and credentials come from the environment only.
	if err := v.BindEnv("dictionary.base_url", "DICTIONARY_API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind DICTIONARY_API_BASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("candidates.random_word_url", "RANDOM_WORD_API_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind RANDOM_WORD_API_URL environment variable: %w", err)
	}
	if err := v.BindEnv("database.username", "DAILYWORD_DB_USERNAME"); err != nil {
		return nil, fmt.Errorf("failed to bind DAILYWORD_DB_USERNAME environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "DAILYWORD_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DAILYWORD_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded configuration and reports every violation with
// a translated message.
func (cfg *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator > %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate.Struct > %w", err)
		}
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fieldError.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(messages, ", "))
	}
	return nil
}
