package config_test

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"taskdeck/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.APIURLEnv, "")
	t.Setenv(config.PublicAPIURLEnv, "")
	t.Setenv(config.ListenAddrEnv, "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != config.DefaultAPIURL {
		t.Errorf("expected api url %q, got %q", config.DefaultAPIURL, cfg.APIURL)
	}
	if cfg.ListenAddr != config.DefaultListenAddr {
		t.Errorf("expected listen addr %q, got %q", config.DefaultListenAddr, cfg.ListenAddr)
	}
	if host, _, err := net.SplitHostPort(cfg.ListenAddr); err != nil || !net.ParseIP(host).IsLoopback() {
		t.Errorf("expected default listen addr on loopback, got %q", cfg.ListenAddr)
	}
	if cfg.Debug {
		t.Error("debug should default to false")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	data := "api_url: https://tasks.example.com/\nlisten_addr: 127.0.0.1:4000\ndebug: true\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(data), 0600); err != nil {
		t.Fatalf("failed to write config.yaml: %v", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "https://tasks.example.com" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.APIURL)
	}
	if cfg.ListenAddr != "127.0.0.1:4000" {
		t.Errorf("expected listen addr from file, got %q", cfg.ListenAddr)
	}
	if !cfg.Debug {
		t.Error("expected debug from file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api_url: http://file:1\n"), 0600); err != nil {
		t.Fatalf("failed to write config.yaml: %v", err)
	}
	t.Setenv(config.PublicAPIURLEnv, "http://public:2")
	t.Setenv(config.APIURLEnv, "http://env:3")

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "http://env:3" {
		t.Errorf("expected API_URL to win, got %q", cfg.APIURL)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api_url: [unterminated\n"), 0600); err != nil {
		t.Fatalf("failed to write config.yaml: %v", err)
	}

	if _, err := config.Load(dir); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestSetAPIURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://localhost:8080", want: "http://localhost:8080"},
		{in: " https://api.example.com// ", want: "https://api.example.com"},
		{in: "ftp://example.com", wantErr: true},
		{in: "localhost:8080", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		cfg, _ := config.New(t.TempDir())
		err := cfg.SetAPIURL(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("SetAPIURL(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("SetAPIURL(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if cfg.APIURL != tt.want {
			t.Errorf("SetAPIURL(%q) = %q, want %q", tt.in, cfg.APIURL, tt.want)
		}
	}
}

func TestSessionPath(t *testing.T) {
	dir := t.TempDir()
	cfg, _ := config.New(dir)

	if cfg.SessionPath() != filepath.Join(dir, "session.json") {
		t.Errorf("unexpected session path %q", cfg.SessionPath())
	}
	if cfg.HasSession() {
		t.Error("fresh dir should have no session")
	}
}
