package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port           int      `yaml:"port"`
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"server"`

	// Provider selects the completion backend: "openai" or "gemini".
	Provider string `yaml:"provider"`

	Openai struct {
		ApiKey         string `yaml:"apiKey"`
		Model          string `yaml:"model"`
		BaseUrl        string `yaml:"baseUrl"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"openai"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`
}

// LoadConfig reads the configuration file and fills in defaults.
// API keys fall back to the OPENAI_API_KEY / GEMINI_API_KEY environment
// variables when the yaml leaves them empty.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Provider == "" {
		cfg.Provider = "openai"
	}
	if cfg.Openai.Model == "" {
		cfg.Openai.Model = "gpt-4-turbo-preview"
	}
	if cfg.Openai.TimeoutSeconds == 0 {
		cfg.Openai.TimeoutSeconds = 60
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.5-flash"
	}
	if cfg.Openai.ApiKey == "" {
		cfg.Openai.ApiKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Gemini.ApiKey == "" {
		cfg.Gemini.ApiKey = os.Getenv("GEMINI_API_KEY")
	}

	return &cfg, nil
}
