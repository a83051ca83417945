package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestParseAppliesDefaults(t *testing.T) {
	c, err := Parse([]byte("environment: test\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Server.Host != "0.0.0.0" || c.Server.Port != 8000 {
		t.Errorf("listen: got %s:%d, want 0.0.0.0:8000", c.Server.Host, c.Server.Port)
	}
	if c.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown_timeout: got %v", c.Server.ShutdownTimeout)
	}
	if c.Store.Backend != BackendFirestore {
		t.Errorf("backend: got %q, want firestore", c.Store.Backend)
	}
	if c.Store.DocumentID != "current" {
		t.Errorf("document_id: got %q, want current", c.Store.DocumentID)
	}
	if c.Firebase.WebConfigFile != "./firebase_web_config.json" {
		t.Errorf("web_config_file: got %q", c.Firebase.WebConfigFile)
	}
	if !c.Metrics.Enabled {
		t.Errorf("metrics.enabled: expected default true")
	}
	if c.Server.CORS {
		t.Errorf("server.cors: expected default false")
	}
}

func TestParseExplicitFalseWinsOverDefault(t *testing.T) {
	c, err := Parse([]byte("environment: test\nmetrics:\n  enabled: false\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Metrics.Enabled {
		t.Fatalf("metrics.enabled: expected false from file")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown backend": "store:\n  backend: dynamo\n",
		"bad log level":   "log:\n  level: loud\n",
		"bad port":        "server:\n  port: 70000\n",
		"malformed yaml":  "server: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadWithEnvOverridesFilePaths(t *testing.T) {
	path := writeConfig(t, "environment: test\nstore:\n  backend: redis\n")
	t.Setenv("FIREBASE_CREDENTIALS", "/secrets/sa.json")
	t.Setenv("FIREBASE_WEB_CONFIG", "/secrets/web.json")

	c, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if c.Firebase.CredentialsFile != "/secrets/sa.json" {
		t.Errorf("credentials_file: got %q", c.Firebase.CredentialsFile)
	}
	if c.Firebase.WebConfigFile != "/secrets/web.json" {
		t.Errorf("web_config_file: got %q", c.Firebase.WebConfigFile)
	}
	if c.Store.Backend != BackendRedis {
		t.Errorf("backend: got %q, want redis", c.Store.Backend)
	}
}

func TestLoadWithEnvSuppliesPathsBeforeValidation(t *testing.T) {
	path := writeConfig(t, "environment: test\nfirebase:\n  credentials_file: \"\"\n  web_config_file: \"\"\n")
	t.Setenv("FIREBASE_CREDENTIALS", "/secrets/sa.json")
	t.Setenv("FIREBASE_WEB_CONFIG", "/secrets/web.json")

	c, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if c.Firebase.CredentialsFile != "/secrets/sa.json" || c.Firebase.WebConfigFile != "/secrets/web.json" {
		t.Fatalf("paths not overridden: %+v", c.Firebase)
	}

	// without the environment the same file is still rejected
	t.Setenv("FIREBASE_CREDENTIALS", "")
	t.Setenv("FIREBASE_WEB_CONFIG", "")
	if _, err := LoadWithEnv(path); err == nil {
		t.Fatal("expected validation error for empty file paths")
	}
}

func TestParseRedisPool(t *testing.T) {
	c, err := Parse([]byte("redis:\n  pool_size: 20\n  pool_timeout: 1s\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Redis.PoolSize != 20 || c.Redis.MinIdleConns != 2 || c.Redis.PoolTimeout != time.Second {
		t.Fatalf("pool: %+v", c.Redis)
	}
	if c.Redis.DialTimeout != 5*time.Second || c.Redis.ReadTimeout != 3*time.Second {
		t.Fatalf("timeouts: %+v", c.Redis)
	}

	if _, err := Parse([]byte("redis:\n  pool_size: 0\n")); err == nil {
		t.Fatal("expected error for pool_size 0")
	}
}
