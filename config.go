package convertkit

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/listinterop/convertkit-go/internal/apierrors"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvAPIKey    = "CONVERTKIT_API_KEY"
	EnvAPISecret = "CONVERTKIT_API_SECRET"
	EnvBaseURL   = "CONVERTKIT_BASE_URL"
)

// Config holds the settings NewFromConfig needs.
//
// In a YAML document it lives under a top-level "convertkit" key:
//
//	convertkit:
//	  api-key: your-api-key
//	  secret-key: your-api-secret
//	  base-uri: https://api.convertkit.com/v3
type Config struct {
	APIKey    string `yaml:"api-key"`
	SecretKey string `yaml:"secret-key"`
	BaseURI   string `yaml:"base-uri,omitempty"`
}

// LoadConfig reads the "convertkit" section of a YAML document.
func LoadConfig(r io.Reader) (Config, error) {
	var doc struct {
		ConvertKit yaml.Node `yaml:"convertkit"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if doc.ConvertKit.Kind != yaml.MappingNode {
		return Config{}, apierrors.Assertf("missing configuration `convertkit`")
	}

	var cfg Config
	if err := doc.ConvertKit.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads the "convertkit" section of the YAML file at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// ConfigFromEnv reads the configuration from the environment.
func ConfigFromEnv() Config {
	return Config{
		APIKey:    os.Getenv(EnvAPIKey),
		SecretKey: os.Getenv(EnvAPISecret),
		BaseURI:   os.Getenv(EnvBaseURL),
	}
}

// Merge returns c with every non-empty field of other applied on top.
func (c Config) Merge(other Config) Config {
	if other.APIKey != "" {
		c.APIKey = other.APIKey
	}
	if other.SecretKey != "" {
		c.SecretKey = other.SecretKey
	}
	if other.BaseURI != "" {
		c.BaseURI = other.BaseURI
	}
	return c
}

// NewFromConfig creates a client from cfg. Options are applied after the
// configured base URI, so WithBaseURL overrides it.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apierrors.Assertf("no API key has been configured")
	}
	if cfg.SecretKey == "" {
		return nil, apierrors.Assertf("no secret key has been configured")
	}

	if cfg.BaseURI != "" {
		opts = append([]Option{WithBaseURL(cfg.BaseURI)}, opts...)
	}
	return New(cfg.APIKey, cfg.SecretKey, opts...)
}
