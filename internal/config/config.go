package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	LLM    LLMConfig
	UI     UIConfig
	Export ExportConfig
}

// LLMConfig holds generation backend settings.
type LLMConfig struct {
	Provider  string
	APIKeyEnv string `mapstructure:"api_key_env"`
	APIKey    string `mapstructure:"api_key"`
	Model     string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language string
}

// ExportConfig holds document export settings.
type ExportConfig struct {
	Dir string
}

// Load reads configuration from file and env. Env var overrides use prefix SOALGEN_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.api_key_env", "GEMINI_API_KEY")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gemini-2.5-flash")
	v.SetDefault("ui.language", "Bahasa Indonesia")
	v.SetDefault("export.dir", filepath.Join(os.Getenv("HOME"), "Documents", "soalgen"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SOALGEN_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "soalgen"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SOALGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// The API key is stored in plain text in the config file; encourage users to prefer
// env vars or the secrets store.
func Save(cfg Config) error {
	path := os.Getenv("SOALGEN_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "soalgen", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("llm.provider", cfg.LLM.Provider)
	v.Set("llm.api_key_env", cfg.LLM.APIKeyEnv)
	v.Set("llm.api_key", cfg.LLM.APIKey)
	v.Set("llm.model", cfg.LLM.Model)
	v.Set("ui.language", cfg.UI.Language)
	v.Set("export.dir", cfg.Export.Dir)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
