package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Service.Name != "api" {
		t.Errorf("expected service name 'api', got '%s'", cfg.Service.Name)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("expected host 127.0.0.1, got '%s'", cfg.Server.Host)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("expected port 5000, got %d", cfg.Server.Port)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "mockapi.yaml")

	content := `service:
  name: backend
server:
  port: 8080
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Service.Name != "backend" {
		t.Errorf("expected service name 'backend', got '%s'", cfg.Service.Name)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	// Host is not in the file, the default should survive
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("expected host 127.0.0.1, got '%s'", cfg.Server.Host)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "mockapi.yaml")
	if err := os.WriteFile(configPath, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestSaveAndLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "mockapi.yaml")

	cfg := Default()
	cfg.Service.Name = "fixture"
	cfg.Server.Port = 6001

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Service.Name != "fixture" {
		t.Errorf("expected service name 'fixture', got '%s'", loaded.Service.Name)
	}
	if loaded.Server.Port != 6001 {
		t.Errorf("expected port 6001, got %d", loaded.Server.Port)
	}
}

func TestResolvePort_Default(t *testing.T) {
	cfg := Default()

	if err := cfg.ResolvePort(0); err != nil {
		t.Fatalf("ResolvePort failed: %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.Server.Port)
	}
}

func TestResolvePort_Env(t *testing.T) {
	t.Setenv("PORT", "6000")

	cfg := Default()
	if err := cfg.ResolvePort(0); err != nil {
		t.Fatalf("ResolvePort failed: %v", err)
	}
	if cfg.Server.Port != 6000 {
		t.Errorf("expected port 6000 from PORT env, got %d", cfg.Server.Port)
	}
}

func TestResolvePort_FlagBeatsEnv(t *testing.T) {
	t.Setenv("PORT", "6000")

	cfg := Default()
	if err := cfg.ResolvePort(7000); err != nil {
		t.Fatalf("ResolvePort failed: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("expected flag port 7000, got %d", cfg.Server.Port)
	}
}

func TestResolvePort_EnvBeatsFile(t *testing.T) {
	t.Setenv("PORT", "6000")

	cfg := Default()
	cfg.Server.Port = 8080 // as if read from mockapi.yaml
	if err := cfg.ResolvePort(0); err != nil {
		t.Fatalf("ResolvePort failed: %v", err)
	}
	if cfg.Server.Port != 6000 {
		t.Errorf("expected PORT env to beat file value, got %d", cfg.Server.Port)
	}
}

func TestResolvePort_InvalidEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := Default()
	if err := cfg.ResolvePort(0); err == nil {
		t.Error("expected error for non-numeric PORT")
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		port    int
		wantErr bool
	}{
		{1, false},
		{5000, false},
		{65535, false},
		{0, true},
		{-1, true},
		{65536, true},
	}

	for _, tt := range tests {
		err := ValidatePort(tt.port)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePort(%d): got err=%v, wantErr=%v", tt.port, err, tt.wantErr)
		}
	}
}
