package config

import "testing"

// TestLoad_Defaults checks the fallback when nothing usable is set. An
// empty PORT does not parse, so it lands on the default too.
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg := Load()
	if cfg.Port != 8080 {
		t.Errorf("Port = %d; want default 8080 for a blank value", cfg.Port)
	}
	if cfg.GinMode == "" {
		t.Error("GinMode should never be empty")
	}
}

// TestLoad_FromEnvironment reads explicit values.
func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HOST_IP", "0.0.0.0")
	t.Setenv("PORT", "9999")
	t.Setenv("GIN_MODE", "debug")

	cfg := Load()
	if cfg.HostIP != "0.0.0.0" || cfg.Port != 9999 || cfg.GinMode != "debug" {
		t.Errorf("Load() = %+v; want values from the environment", cfg)
	}
}

// TestLoad_MalformedPort falls back instead of failing.
func TestLoad_MalformedPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	cfg := Load()
	if cfg.Port != 8080 {
		t.Errorf("Port = %d; want fallback 8080 on a malformed value", cfg.Port)
	}
}
