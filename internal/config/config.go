package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Vision VisionConfig
	Pezzo  PezzoConfig
	LLM    LLMConfig
	Log    LogConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// UploadConfig holds scratch storage settings for uploaded documents.
type UploadConfig struct {
	ScratchDir    string `mapstructure:"scratch_dir"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// VisionConfig holds Azure Document Intelligence settings. Endpoint and
// key are required; their absence blocks startup.
type VisionConfig struct {
	Endpoint         string `mapstructure:"endpoint"`
	Key              string `mapstructure:"key"`
	APIVersion       string `mapstructure:"api_version"`
	Model            string `mapstructure:"model"`
	PollIntervalSecs int    `mapstructure:"poll_interval_secs"`
	TimeoutSecs      int    `mapstructure:"timeout_secs"`
}

// ErrVisionCredentialsMissing indicates the required document
// intelligence endpoint or key was not configured.
var ErrVisionCredentialsMissing = errors.New("vision endpoint and key are required")

// Validate checks that the required vision credentials are present.
// Prompt-service and LLM secrets are deliberately not validated here;
// their absence is discovered when a comparison is requested.
func (v *VisionConfig) Validate() error {
	if v.Endpoint == "" || v.Key == "" {
		return ErrVisionCredentialsMissing
	}
	return nil
}

// PezzoConfig holds prompt template service settings.
type PezzoConfig struct {
	APIKey      string `mapstructure:"api_key"`
	ProjectID   string `mapstructure:"project_id"`
	Environment string `mapstructure:"environment"`
	ServerURL   string `mapstructure:"server_url"`
	PromptName  string `mapstructure:"prompt_name"`
}

// LLMConfig holds Azure OpenAI completion settings.
type LLMConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	APIKey      string `mapstructure:"api_key"`
	Deployment  string `mapstructure:"deployment"`
	APIVersion  string `mapstructure:"api_version"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the INVOPO_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INVOPO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Upload defaults ("" scratch dir means the OS temp dir)
	v.SetDefault("upload.scratch_dir", "")
	v.SetDefault("upload.max_file_size_mb", 50)

	// Vision defaults
	v.SetDefault("vision.endpoint", "")
	v.SetDefault("vision.key", "")
	v.SetDefault("vision.api_version", "2024-11-30")
	v.SetDefault("vision.model", "prebuilt-layout")
	v.SetDefault("vision.poll_interval_secs", 2)
	v.SetDefault("vision.timeout_secs", 120)

	// Pezzo defaults
	v.SetDefault("pezzo.api_key", "")
	v.SetDefault("pezzo.project_id", "")
	v.SetDefault("pezzo.environment", "Production")
	v.SetDefault("pezzo.server_url", "https://api.pezzo.ai")
	v.SetDefault("pezzo.prompt_name", "PurchaseOrder")

	// LLM defaults
	v.SetDefault("llm.endpoint", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.deployment", "gpt-4o-mini")
	v.SetDefault("llm.api_version", "2024-02-15-preview")
	v.SetDefault("llm.timeout_secs", 120)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "INVOPO_SERVER_PORT",
		"server.read_timeout":      "INVOPO_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "INVOPO_SERVER_WRITE_TIMEOUT",
		"server.environment":       "INVOPO_SERVER_ENVIRONMENT",
		"upload.scratch_dir":       "INVOPO_UPLOAD_SCRATCH_DIR",
		"upload.max_file_size_mb":  "INVOPO_UPLOAD_MAX_FILE_SIZE_MB",
		"vision.endpoint":          "INVOPO_VISION_ENDPOINT",
		"vision.key":               "INVOPO_VISION_KEY",
		"vision.api_version":       "INVOPO_VISION_API_VERSION",
		"vision.model":             "INVOPO_VISION_MODEL",
		"vision.poll_interval_secs": "INVOPO_VISION_POLL_INTERVAL_SECS",
		"vision.timeout_secs":      "INVOPO_VISION_TIMEOUT_SECS",
		"pezzo.api_key":            "INVOPO_PEZZO_API_KEY",
		"pezzo.project_id":         "INVOPO_PEZZO_PROJECT_ID",
		"pezzo.environment":        "INVOPO_PEZZO_ENVIRONMENT",
		"pezzo.server_url":         "INVOPO_PEZZO_SERVER_URL",
		"pezzo.prompt_name":        "INVOPO_PEZZO_PROMPT_NAME",
		"llm.endpoint":             "INVOPO_LLM_ENDPOINT",
		"llm.api_key":              "INVOPO_LLM_API_KEY",
		"llm.deployment":           "INVOPO_LLM_DEPLOYMENT",
		"llm.api_version":          "INVOPO_LLM_API_VERSION",
		"llm.timeout_secs":         "INVOPO_LLM_TIMEOUT_SECS",
		"log.level":                "INVOPO_LOG_LEVEL",
		"log.format":               "INVOPO_LOG_FORMAT",
		"cors.allowed_origins":     "INVOPO_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if INVOPO_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("INVOPO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Upload = UploadConfig{
		ScratchDir:    v.GetString("upload.scratch_dir"),
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Vision = VisionConfig{
		Endpoint:         v.GetString("vision.endpoint"),
		Key:              v.GetString("vision.key"),
		APIVersion:       v.GetString("vision.api_version"),
		Model:            v.GetString("vision.model"),
		PollIntervalSecs: v.GetInt("vision.poll_interval_secs"),
		TimeoutSecs:      v.GetInt("vision.timeout_secs"),
	}
	cfg.Pezzo = PezzoConfig{
		APIKey:      v.GetString("pezzo.api_key"),
		ProjectID:   v.GetString("pezzo.project_id"),
		Environment: v.GetString("pezzo.environment"),
		ServerURL:   v.GetString("pezzo.server_url"),
		PromptName:  v.GetString("pezzo.prompt_name"),
	}
	cfg.LLM = LLMConfig{
		Endpoint:    v.GetString("llm.endpoint"),
		APIKey:      v.GetString("llm.api_key"),
		Deployment:  v.GetString("llm.deployment"),
		APIVersion:  v.GetString("llm.api_version"),
		TimeoutSecs: v.GetInt("llm.timeout_secs"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}
