package config

// Config holds contentcraft configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Server ServerCfg `mapstructure:"server" yaml:"server"`
	Admin  AdminCfg  `mapstructure:"admin" yaml:"admin"`
	LLM    LLMCfg    `mapstructure:"llm" yaml:"llm"`
}

// ServerCfg configures the HTTP listener.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// AdminCfg configures the administrative surface.
type AdminCfg struct {
	// Password gates the prompt-pack admin endpoints (supports ${ENV_VAR}
	// syntax). Empty means the admin surface is disabled.
	Password string `mapstructure:"password" yaml:"password"`
}

// LLMCfg configures the generation backend.
type LLMCfg struct {
	Type           string  `mapstructure:"type" yaml:"type"`       // "openrouter", "openai"
	Model          string  `mapstructure:"model" yaml:"model"`     // Model name
	APIKey         string  `mapstructure:"api_key" yaml:"api_key"` // API key (supports ${ENV_VAR} syntax)
	BaseURL        string  `mapstructure:"base_url" yaml:"base_url"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	MaxRetries     int     `mapstructure:"max_retries" yaml:"max_retries"`
	Temperature    float64 `mapstructure:"temperature" yaml:"temperature"`
	MaxTokens      int     `mapstructure:"max_tokens" yaml:"max_tokens"`
}

// DefaultConfig returns configuration with sensible defaults. Without an
// API key in the environment the service runs in demo mode.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: 8787,
		},
		Admin: AdminCfg{
			Password: "${CONTENTCRAFT_ADMIN_PASSWORD}",
		},
		LLM: LLMCfg{
			Type:           "openrouter",
			Model:          "openai/gpt-4.1-mini",
			APIKey:         "${OPENROUTER_API_KEY}",
			TimeoutSeconds: 120,
			MaxRetries:     3,
			Temperature:    0.7,
			MaxTokens:      1000,
		},
	}
}
