package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invopo/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)

	assert.Equal(t, "", cfg.Upload.ScratchDir)
	assert.Equal(t, int64(50), cfg.Upload.MaxFileSizeMB)

	assert.Equal(t, "2024-11-30", cfg.Vision.APIVersion)
	assert.Equal(t, "prebuilt-layout", cfg.Vision.Model)
	assert.Equal(t, 2, cfg.Vision.PollIntervalSecs)

	assert.Equal(t, "https://api.pezzo.ai", cfg.Pezzo.ServerURL)
	assert.Equal(t, "PurchaseOrder", cfg.Pezzo.PromptName)
	assert.Equal(t, "Production", cfg.Pezzo.Environment)

	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Deployment)
	assert.Equal(t, "2024-02-15-preview", cfg.LLM.APIVersion)

	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INVOPO_SERVER_PORT", ":9090")
	t.Setenv("INVOPO_UPLOAD_MAX_FILE_SIZE_MB", "10")
	t.Setenv("INVOPO_VISION_ENDPOINT", "https://vision.example.com")
	t.Setenv("INVOPO_VISION_KEY", "secret")
	t.Setenv("INVOPO_PEZZO_PROMPT_NAME", "InvoiceCheck")
	t.Setenv("INVOPO_CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, int64(10), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, "https://vision.example.com", cfg.Vision.Endpoint)
	assert.Equal(t, "secret", cfg.Vision.Key)
	assert.Equal(t, "InvoiceCheck", cfg.Pezzo.PromptName)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.Port)
}

func TestVisionConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.VisionConfig
		wantErr error
	}{
		{
			name: "both present",
			cfg:  config.VisionConfig{Endpoint: "https://vision.example.com", Key: "k"},
		},
		{
			name:    "missing endpoint",
			cfg:     config.VisionConfig{Key: "k"},
			wantErr: config.ErrVisionCredentialsMissing,
		},
		{
			name:    "missing key",
			cfg:     config.VisionConfig{Endpoint: "https://vision.example.com"},
			wantErr: config.ErrVisionCredentialsMissing,
		},
		{
			name:    "both missing",
			cfg:     config.VisionConfig{},
			wantErr: config.ErrVisionCredentialsMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
