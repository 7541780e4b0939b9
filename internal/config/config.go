package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Image  ImageConfig  `mapstructure:"image"  validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains the text-generation settings. Provider selects the SDK;
// Model and FallbackModels form the candidate list tried in order.
type LLMConfig struct {
	Provider       string   `mapstructure:"provider" validate:"required,oneof=openai gemini"`
	OpenAIAPIKey   string   `mapstructure:"openai_api_key" validate:"required_if=Provider openai"`
	OpenAIBaseURL  string   `mapstructure:"openai_base_url" validate:"omitempty,url"`
	GeminiAPIKey   string   `mapstructure:"gemini_api_key" validate:"required_if=Provider gemini"`
	Model          string   `mapstructure:"model" validate:"required"`
	FallbackModels []string `mapstructure:"fallback_models"`
	Temperature    float64  `mapstructure:"temperature" validate:"gte=0,lte=2"`
	MaxTokens      int      `mapstructure:"max_tokens" validate:"gte=0"`
}

// ImageConfig contains the diffusion sidecar connection and device settings.
// VRAMGB is only meaningful for the cuda device class; zero means unknown.
type ImageConfig struct {
	BaseURL        string  `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"gt=0"`
	Device         string  `mapstructure:"device" validate:"required,oneof=cuda mps cpu"`
	VRAMGB         float64 `mapstructure:"vram_gb" validate:"gte=0"`
}

// StoreConfig selects and configures the published content store backend.
type StoreConfig struct {
	Backend     string `mapstructure:"backend" validate:"required,oneof=jsonfile postgres"`
	FilePath    string `mapstructure:"file_path" validate:"required_if=Backend jsonfile"`
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Backend postgres"`
}
