package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Pipeline PipelineConfig
	Mistral  MistralConfig
	OpenAI   OpenAIConfig
	Bedrock  BedrockConfig
	Logo     LogoConfig
	Archive  ArchiveConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PipelineConfig holds routing/escalation settings.
type PipelineConfig struct {
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`
	MaxUploadMB         int64   `mapstructure:"max_upload_mb"`
}

// MistralConfig holds Mistral text and OCR settings. An empty APIKey means
// both Mistral adapters are skipped by the escalation controller.
type MistralConfig struct {
	APIKey      string `mapstructure:"api_key"`
	ChatModel   string `mapstructure:"chat_model"`
	OCRModel    string `mapstructure:"ocr_model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// OpenAIConfig holds GPT-4 Vision settings.
type OpenAIConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// BedrockConfig holds AWS Bedrock (Claude) settings. Region must be set and
// credentials resolvable (static keys here or the default AWS chain) for the
// adapter to be considered configured.
type BedrockConfig struct {
	Region      string `mapstructure:"region"`
	AccessKey   string `mapstructure:"access_key"`
	SecretKey   string `mapstructure:"secret_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// LogoConfig holds brand/logo extraction settings.
type LogoConfig struct {
	BrowserEnabled bool `mapstructure:"browser_enabled"`
	NavTimeoutSecs int  `mapstructure:"nav_timeout_secs"`
	RenderWaitMs   int  `mapstructure:"render_wait_ms"`
}

// ArchiveConfig holds optional S3 archival settings for accepted uploads.
// An empty bucket disables archival entirely.
type ArchiveConfig struct {
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Endpoint  string `mapstructure:"endpoint"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the BIZWORTH_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BIZWORTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Pipeline defaults
	v.SetDefault("pipeline.confidence_threshold", 70.0)
	v.SetDefault("pipeline.max_upload_mb", 50)

	// Vendor defaults
	v.SetDefault("mistral.api_key", "")
	v.SetDefault("mistral.chat_model", "mistral-small-latest")
	v.SetDefault("mistral.ocr_model", "mistral-ocr-latest")
	v.SetDefault("mistral.timeout_secs", 30)
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", "gpt-4o")
	v.SetDefault("openai.timeout_secs", 60)
	v.SetDefault("bedrock.region", "")
	v.SetDefault("bedrock.access_key", "")
	v.SetDefault("bedrock.secret_key", "")
	v.SetDefault("bedrock.model", "anthropic.claude-3-5-sonnet-20241022-v2:0")
	v.SetDefault("bedrock.timeout_secs", 60)

	// Logo defaults
	v.SetDefault("logo.browser_enabled", true)
	v.SetDefault("logo.nav_timeout_secs", 30)
	v.SetDefault("logo.render_wait_ms", 1000)

	// Archive defaults
	v.SetDefault("archive.bucket", "")
	v.SetDefault("archive.region", "us-east-1")
	v.SetDefault("archive.access_key", "")
	v.SetDefault("archive.secret_key", "")
	v.SetDefault("archive.endpoint", "")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                   "BIZWORTH_SERVER_PORT",
		"server.read_timeout":           "BIZWORTH_SERVER_READ_TIMEOUT",
		"server.write_timeout":          "BIZWORTH_SERVER_WRITE_TIMEOUT",
		"server.environment":            "BIZWORTH_SERVER_ENVIRONMENT",
		"log.level":                     "BIZWORTH_LOG_LEVEL",
		"log.format":                    "BIZWORTH_LOG_FORMAT",
		"pipeline.confidence_threshold": "BIZWORTH_PIPELINE_CONFIDENCE_THRESHOLD",
		"pipeline.max_upload_mb":        "BIZWORTH_PIPELINE_MAX_UPLOAD_MB",
		"mistral.api_key":               "BIZWORTH_MISTRAL_API_KEY",
		"mistral.chat_model":            "BIZWORTH_MISTRAL_CHAT_MODEL",
		"mistral.ocr_model":             "BIZWORTH_MISTRAL_OCR_MODEL",
		"mistral.timeout_secs":          "BIZWORTH_MISTRAL_TIMEOUT_SECS",
		"openai.api_key":                "BIZWORTH_OPENAI_API_KEY",
		"openai.model":                  "BIZWORTH_OPENAI_MODEL",
		"openai.timeout_secs":           "BIZWORTH_OPENAI_TIMEOUT_SECS",
		"bedrock.region":                "BIZWORTH_BEDROCK_REGION",
		"bedrock.access_key":            "BIZWORTH_BEDROCK_ACCESS_KEY",
		"bedrock.secret_key":            "BIZWORTH_BEDROCK_SECRET_KEY",
		"bedrock.model":                 "BIZWORTH_BEDROCK_MODEL",
		"bedrock.timeout_secs":          "BIZWORTH_BEDROCK_TIMEOUT_SECS",
		"logo.browser_enabled":          "BIZWORTH_LOGO_BROWSER_ENABLED",
		"logo.nav_timeout_secs":         "BIZWORTH_LOGO_NAV_TIMEOUT_SECS",
		"logo.render_wait_ms":           "BIZWORTH_LOGO_RENDER_WAIT_MS",
		"archive.bucket":                "BIZWORTH_ARCHIVE_BUCKET",
		"archive.region":                "BIZWORTH_ARCHIVE_REGION",
		"archive.access_key":            "BIZWORTH_ARCHIVE_ACCESS_KEY",
		"archive.secret_key":            "BIZWORTH_ARCHIVE_SECRET_KEY",
		"archive.endpoint":              "BIZWORTH_ARCHIVE_ENDPOINT",
		"cors.allowed_origins":          "BIZWORTH_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Comma-separated origins arrive as a single string from the env.
	if len(cfg.CORS.AllowedOrigins) == 1 && strings.Contains(cfg.CORS.AllowedOrigins[0], ",") {
		cfg.CORS.AllowedOrigins = strings.Split(cfg.CORS.AllowedOrigins[0], ",")
	}

	return &cfg, nil
}

// MaxUploadBytes returns the configured upload cap in bytes.
func (p *PipelineConfig) MaxUploadBytes() int64 {
	return p.MaxUploadMB * 1024 * 1024
}
