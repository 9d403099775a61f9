package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{EnvCatalog, EnvLimit, EnvLogLevel, EnvLogFormat, EnvOutput} {
		t.Setenv(k, "")
	}
	return home
}

func writeDotEnv(t *testing.T, home, body string) string {
	t.Helper()
	dir := filepath.Join(home, ".prodfinder")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, ".env")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadDotEnv_NotExist(t *testing.T) {
	setHome(t)

	m, err := LoadDotEnv()
	if err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if len(m) != 0 {
		t.Fatalf("expected empty map, got %v", m)
	}
}

func TestLoadDotEnv_ParsesKeyValue(t *testing.T) {
	home := setHome(t)
	writeDotEnv(t, home, "# comment\nA=1\nB=\"two\"\n")

	m, err := LoadDotEnv()
	if err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if m["A"] != "1" || m["B"] != "two" {
		t.Fatalf("unexpected map: %v", m)
	}
}

func TestGetConfigValue_EnvOverridesDotEnv(t *testing.T) {
	home := setHome(t)
	writeDotEnv(t, home, "K=fromdotenv\nONLY=dotenv\n")
	t.Setenv("K", "fromenv")

	v, err := GetConfigValue("K")
	if err != nil {
		t.Fatalf("GetConfigValue: %v", err)
	}
	if v != "fromenv" {
		t.Fatalf("expected env override, got %q", v)
	}

	v, err = GetConfigValue("ONLY")
	if err != nil {
		t.Fatalf("GetConfigValue: %v", err)
	}
	if v != "dotenv" {
		t.Fatalf("expected dotenv fallback, got %q", v)
	}
}

func TestEnsureDotEnvTemplate_DoesNotOverwrite(t *testing.T) {
	home := setHome(t)
	p := writeDotEnv(t, home, "PRODFINDER_LIMIT=3\n")

	created, err := EnsureDotEnvTemplate()
	if err != nil {
		t.Fatalf("EnsureDotEnvTemplate: %v", err)
	}
	if created {
		t.Fatalf("expected existing file to be kept")
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "PRODFINDER_LIMIT=3\n" {
		t.Fatalf("template overwrote existing file: %q", string(b))
	}
}

func TestEnsureDotEnvTemplate_CreatesWhenMissing(t *testing.T) {
	home := setHome(t)

	created, err := EnsureDotEnvTemplate()
	if err != nil {
		t.Fatalf("EnsureDotEnvTemplate: %v", err)
	}
	if !created {
		t.Fatalf("expected template to be created")
	}
	b, err := os.ReadFile(filepath.Join(home, ".prodfinder", ".env"))
	if err != nil {
		t.Fatal(err)
	}
	if len(b) == 0 {
		t.Fatalf("expected non-empty template")
	}
}
