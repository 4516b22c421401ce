package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "ESTIMATE"

type Config struct {
	Port        int                `mapstructure:"port"`
	Host        string             `mapstructure:"host"`
	Environment string             `mapstructure:"environment"`
	Gemini      *GeminiConfig      `mapstructure:"gemini"`
	ObjectStore *ObjectStoreConfig `mapstructure:"object_store"`
}

type GeminiConfig struct {
	APIKey          string `mapstructure:"api_key"`
	Model           string `mapstructure:"model"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	MaxAttempts     int    `mapstructure:"max_attempts"`
	MaxOutputTokens int    `mapstructure:"max_output_tokens"`
}

type ObjectStoreConfig struct {
	EndpointURL string `mapstructure:"endpoint_url"`
	Region      string `mapstructure:"region_name"`
	AccessKey   string `mapstructure:"access_key"`
	SecretKey   string `mapstructure:"secret_key"`
}

// LoadEnvFile loads a .env file into the process environment if one exists.
// A missing file is not an error; an unreadable one is.
func LoadEnvFile(envFile string) error {
	if envFile == "" {
		envFile = ".env"
	}

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat env file: %w", err)
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	return nil
}

// Load builds the service configuration from, in order of precedence:
// bound command-line flags, ESTIMATE_-prefixed environment variables, an
// optional yaml config file, and built-in defaults. The returned struct is
// passed into each component's constructor; nothing reads it ambiently.
func Load() (*Config, error) {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`, `-`, `_`))
	viper.AutomaticEnv()

	setDefaults()

	configFile := viper.GetString("config_file")
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	} else {
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("port", DefaultPort)
	viper.SetDefault("host", DefaultHost)
	viper.SetDefault("environment", "development")

	// Empty defaults register the keys with viper so AutomaticEnv values
	// survive Unmarshal.
	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("object_store.access_key", "")
	viper.SetDefault("object_store.secret_key", "")

	viper.SetDefault("gemini.model", DefaultGeminiModel)
	viper.SetDefault("gemini.timeout_seconds", DefaultGeminiTimeoutSeconds)
	viper.SetDefault("gemini.max_attempts", DefaultGeminiMaxAttempts)
	viper.SetDefault("gemini.max_output_tokens", DefaultGeminiMaxOutputTokens)

	viper.SetDefault("object_store.endpoint_url", DefaultObjectStoreEndpoint)
	viper.SetDefault("object_store.region_name", "auto")
}
