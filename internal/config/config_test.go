package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "addressbook.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// unsetEnv clears keys for the duration of the test. An empty but set
// variable would still override the file.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, k := range keys {
		t.Setenv(k, "") // restores the original value on cleanup
		if err := os.Unsetenv(k); err != nil {
			t.Fatal(err)
		}
	}
}

func TestLoad_ValidFile(t *testing.T) {
	unsetEnv(t, "ENV", "ADDRESSBOOK_TODAY", "ADDRESSBOOK_OUTPUT")

	cfg, err := Load(writeConfig(t, `
env: prod
today: "08.08.2024"
output: json
contacts:
  - name: John
    phones: ["1234567890", "5555555555"]
  - name: Jane
    phones: ["9876543210"]
    birthday: "13.08.1996"
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Env != "prod" {
		t.Errorf("env = %q, want %q", cfg.Env, "prod")
	}
	if cfg.Today != "08.08.2024" {
		t.Errorf("today = %q, want %q", cfg.Today, "08.08.2024")
	}
	if cfg.Output != "json" {
		t.Errorf("output = %q, want %q", cfg.Output, "json")
	}
	if len(cfg.Contacts) != 2 {
		t.Fatalf("contacts = %d, want 2", len(cfg.Contacts))
	}
	if got := cfg.Contacts[1]; got.Name != "Jane" || got.Birthday != "13.08.1996" || len(got.Phones) != 1 {
		t.Errorf("contacts[1] = %+v", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "ENV", "ADDRESSBOOK_TODAY", "ADDRESSBOOK_OUTPUT")

	cfg, err := Load(writeConfig(t, "contacts: []\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Env != "dev" {
		t.Errorf("default env = %q, want %q", cfg.Env, "dev")
	}
	if cfg.Output != "text" {
		t.Errorf("default output = %q, want %q", cfg.Output, "text")
	}
	if cfg.Today != "" {
		t.Errorf("default today = %q, want empty", cfg.Today)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ENV", "staging")
	t.Setenv("ADDRESSBOOK_TODAY", "01.06.2024")
	unsetEnv(t, "ADDRESSBOOK_OUTPUT")

	cfg, err := Load(writeConfig(t, "env: prod\ntoday: \"08.08.2024\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Env != "staging" {
		t.Errorf("env = %q, want %q", cfg.Env, "staging")
	}
	if cfg.Today != "01.06.2024" {
		t.Errorf("today = %q, want %q", cfg.Today, "01.06.2024")
	}
}

func TestLoad_Invalid(t *testing.T) {
	unsetEnv(t, "ENV", "ADDRESSBOOK_TODAY", "ADDRESSBOOK_OUTPUT")

	for name, body := range map[string]string{
		"unknown env":    "env: qa\n",
		"unknown output": "output: xml\n",
		"bad today":      "today: 2024-08-08\n",
		"broken yaml":    "{{invalid yaml",
	} {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("Load(%s) should return error", name)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load(missing) should return error")
	}
}
