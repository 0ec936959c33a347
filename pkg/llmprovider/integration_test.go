package llmprovider_test

import (
	"context"
	"testing"
	"time"

	"household-calendar/config"
	"household-calendar/pkg/llmprovider"
	"household-calendar/pkg/log"
)

// TestIntegration_ConfigToManagerFlow verifies that configuration loading,
// provider initialization, and manager work together correctly
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "test-deepseek-key", Model: "deepseek-chat", Timeout: "8s"},
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "test-gemini-key", Model: "gemini-2.5-flash", Timeout: "8s"},
		},
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      "1s",
		MaxTotalTimeout: "10s",
	}

	logger := log.NewNop()
	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "deepseek" || providers[0].Model() != "deepseek-chat" {
		t.Errorf("Expected first provider to be deepseek/deepseek-chat, got %s/%s", providers[0].Name(), providers[0].Model())
	}
	if providers[1].Name() != "gemini" {
		t.Errorf("Expected second provider to be gemini, got %s", providers[1].Name())
	}

	managerConfig, err := llmprovider.ManagerConfig(*cfg)
	if err != nil {
		t.Fatalf("ManagerConfig() error: %v", err)
	}
	if managerConfig.RetryDelay != time.Second || managerConfig.MaxTotalTimeout != 10*time.Second {
		t.Errorf("unexpected manager config: %+v", managerConfig)
	}

	manager := llmprovider.NewManager(providers, managerConfig, logger)
	if !manager.Enabled() {
		t.Fatal("Manager should be enabled")
	}
}

// TestIntegration_ConfigValidation verifies that invalid configurations
// are caught during initialization
func TestIntegration_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "openai", Enabled: true, Priority: 1, APIKey: "test-key", Model: "gpt-4o-mini"},
				},
			},
			wantErr: false,
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{Providers: []config.ProviderConfig{}},
			wantErr: true,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "openai", Enabled: false, Priority: 1, APIKey: "test-key", Model: "gpt-4o-mini"},
				},
			},
			wantErr: true,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 1, APIKey: "", Model: "gemini-2.5-flash"},
				},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "qwen", Enabled: true, Priority: 1, APIKey: "test-key", Model: "qwen-plus"},
				},
			},
			wantErr: true,
		},
		{
			name: "bad timeout",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "gemini-2.5-flash", Timeout: "soon"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(context.Background(), tt.cfg, log.NewNop())
			if (err != nil) != tt.wantErr {
				t.Errorf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestIntegration_ProviderPriorityOrdering verifies that providers
// are ordered correctly by priority
func TestIntegration_ProviderPriorityOrdering(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 10, APIKey: "test-gemini-key", Model: "gemini-2.5-flash"},
			{Name: "openai", Enabled: true, Priority: 1, APIKey: "test-openai-key", Model: "gpt-4o-mini"},
		},
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if providers[0].Name() != "openai" {
		t.Errorf("Expected first provider (priority 1) to be openai, got %s", providers[0].Name())
	}
	if providers[1].Name() != "gemini" {
		t.Errorf("Expected second provider (priority 10) to be gemini, got %s", providers[1].Name())
	}
}

func TestManagerConfig_Invalid(t *testing.T) {
	if _, err := llmprovider.ManagerConfig(config.LLMConfig{RetryDelay: "fast"}); err == nil {
		t.Error("expected error for bad retry delay")
	}
	cfg, err := llmprovider.ManagerConfig(config.LLMConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RetryAttempts != 1 {
		t.Errorf("expected at least one attempt, got %d", cfg.RetryAttempts)
	}
}
