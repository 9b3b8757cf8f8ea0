package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the process configuration, read from the environment (a .env file
// is loaded by the entrypoints) with the defaults below.
type Config struct {
	Port        int    `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	Environment string `mapstructure:"APP_ENV"`

	IDStrategy    string `mapstructure:"ID_STRATEGY"`
	SnowflakeNode int64  `mapstructure:"SNOWFLAKE_NODE"`

	AssignmentStrategy        string `mapstructure:"ASSIGNMENT_STRATEGY"`
	AssignmentFixedTechnician string `mapstructure:"ASSIGNMENT_FIXED_TECHNICIAN"`
	RandomSeed                uint64 `mapstructure:"RANDOM_SEED"`

	SeedFile string `mapstructure:"SEED_FILE"`

	GeminiAPIKey         string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel          string        `mapstructure:"GEMINI_MODEL"`
	SummarizerMock       bool          `mapstructure:"SUMMARIZER_MOCK"`
	SummarizerMaxRetries int           `mapstructure:"SUMMARIZER_MAX_RETRIES"`
	SummarizerTimeout    time.Duration `mapstructure:"SUMMARIZER_TIMEOUT"`
}

var defaults = map[string]any{
	"PORT":                        8080,
	"LOG_LEVEL":                   "info",
	"APP_ENV":                     "local",
	"ID_STRATEGY":                 "sequence",
	"SNOWFLAKE_NODE":              1,
	"ASSIGNMENT_STRATEGY":         "round_robin",
	"ASSIGNMENT_FIXED_TECHNICIAN": "",
	"RANDOM_SEED":                 0,
	"SEED_FILE":                   "",
	"GEMINI_API_KEY":              "",
	"GEMINI_MODEL":                "gemini-2.5-flash",
	"SUMMARIZER_MOCK":             false,
	"SUMMARIZER_MAX_RETRIES":      2,
	"SUMMARIZER_TIMEOUT":          "15s",
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return load(viper.New())
}

// LoadFile reads a dotenv-style or YAML file and lets the environment
// override it.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if strings.HasSuffix(path, ".env") {
		v.SetConfigType("env")
	}
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return load(v)
}

func load(v *viper.Viper) (Config, error) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	switch strings.ToLower(c.IDStrategy) {
	case "sequence", "ulid", "snowflake", "uuid":
	default:
		return fmt.Errorf("invalid ID_STRATEGY %q", c.IDStrategy)
	}
	switch strings.ToLower(c.AssignmentStrategy) {
	case "random", "round_robin":
	case "fixed":
		if strings.TrimSpace(c.AssignmentFixedTechnician) == "" {
			return fmt.Errorf("ASSIGNMENT_STRATEGY=fixed needs ASSIGNMENT_FIXED_TECHNICIAN")
		}
	default:
		return fmt.Errorf("invalid ASSIGNMENT_STRATEGY %q", c.AssignmentStrategy)
	}
	if c.SummarizerMaxRetries < 0 {
		return fmt.Errorf("invalid SUMMARIZER_MAX_RETRIES %d", c.SummarizerMaxRetries)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
