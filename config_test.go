package convertkit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	input := `
convertkit:
  api-key: key
  secret-key: secret
  base-uri: https://example.com/v3
other:
  ignored: true
`
	cfg, err := LoadConfig(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := Config{APIKey: "key", SecretKey: "secret", BaseURI: "https://example.com/v3"}
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfig_MissingSection(t *testing.T) {
	inputs := map[string]string{
		"empty document":   "",
		"no section":       "other: true\n",
		"scalar section":   "convertkit: foo\n",
		"sequence section": "convertkit: [a, b]\n",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(input))
			if !errors.Is(err, ErrAssertion) {
				t.Fatalf("LoadConfig() error = %v, want assertion failure", err)
			}
			if !strings.Contains(err.Error(), "missing configuration `convertkit`") {
				t.Errorf("error = %q", err.Error())
			}
		})
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("convertkit: [unterminated\n"))
	if err == nil {
		t.Fatal("LoadConfig() should fail for invalid YAML")
	}
	if errors.Is(err, ErrAssertion) {
		t.Error("a YAML syntax error is not an assertion failure")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("convertkit:\n  api-key: key\n  secret-key: secret\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}
	if cfg.APIKey != "key" || cfg.SecretKey != "secret" || cfg.BaseURI != "" {
		t.Errorf("LoadConfigFile() = %+v", cfg)
	}

	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfigFile() should fail for a missing file")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvAPISecret, "env-secret")
	t.Setenv(EnvBaseURL, "https://env.example.com")

	cfg := ConfigFromEnv()
	want := Config{APIKey: "env-key", SecretKey: "env-secret", BaseURI: "https://env.example.com"}
	if cfg != want {
		t.Errorf("ConfigFromEnv() = %+v, want %+v", cfg, want)
	}
}

func TestConfig_Merge(t *testing.T) {
	base := Config{APIKey: "file-key", SecretKey: "file-secret", BaseURI: "https://file.example.com"}
	got := base.Merge(Config{APIKey: "env-key"})

	want := Config{APIKey: "env-key", SecretKey: "file-secret", BaseURI: "https://file.example.com"}
	if got != want {
		t.Errorf("Merge() = %+v, want %+v", got, want)
	}
}

func TestNewFromConfig(t *testing.T) {
	client, err := NewFromConfig(Config{APIKey: "key", SecretKey: "secret", BaseURI: "https://example.com/v3/"})
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	if client.BaseURL() != "https://example.com/v3" {
		t.Errorf("BaseURL() = %s", client.BaseURL())
	}

	client, err = NewFromConfig(Config{APIKey: "key", SecretKey: "secret"})
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %s, want default", client.BaseURL())
	}
}

func TestNewFromConfig_OptionsOverrideBaseURI(t *testing.T) {
	client, err := NewFromConfig(
		Config{APIKey: "key", SecretKey: "secret", BaseURI: "https://file.example.com"},
		WithBaseURL("https://option.example.com"),
	)
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	if client.BaseURL() != "https://option.example.com" {
		t.Errorf("BaseURL() = %s", client.BaseURL())
	}
}

func TestNewFromConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"missing key", Config{SecretKey: "secret"}, "no API key has been configured"},
		{"missing secret", Config{APIKey: "key"}, "no secret key has been configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromConfig(tt.cfg)
			if !errors.Is(err, ErrAssertion) {
				t.Fatalf("NewFromConfig() error = %v, want assertion failure", err)
			}
			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}
