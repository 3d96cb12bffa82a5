package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConf struct {
	Server struct {
		BaseURL string
		Port    int
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	body := `[server]
baseurl = "http://localhost:5000"
port = 5000
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &testConf{}
	if _, err := LoadConfigFile(dir, cfg); err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.Server.BaseURL != "http://localhost:5000" {
		t.Errorf("BaseURL = %q", cfg.Server.BaseURL)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
}

func TestGettersReadLoadedInstance(t *testing.T) {
	dir := t.TempDir()
	body := `[server]
baseurl = "http://localhost:5000"
port = 5000
debug = true
timeout = "30s"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigFile(dir, &testConf{}); err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}

	if got := GetString("server.baseurl"); got != "http://localhost:5000" {
		t.Errorf("GetString = %q", got)
	}
	if got := GetInt("server.port"); got != 5000 {
		t.Errorf("GetInt = %d", got)
	}
	if !GetBool("server.debug") {
		t.Error("GetBool = false")
	}
	if got := GetDuration("server.timeout"); got != 30*time.Second {
		t.Errorf("GetDuration = %v", got)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	if _, err := LoadConfigFile(t.TempDir(), &testConf{}); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadConfigFileKeepsUnsetFields(t *testing.T) {
	dir := t.TempDir()
	body := `[server]
port = 8080
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &testConf{}
	cfg.Server.BaseURL = "http://default:5000"
	if _, err := LoadConfigFile(dir, cfg); err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.Server.BaseURL != "http://default:5000" {
		t.Errorf("unset key overwrote the default, BaseURL = %q", cfg.Server.BaseURL)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
}
