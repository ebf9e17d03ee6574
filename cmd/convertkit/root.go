package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	convertkit "github.com/listinterop/convertkit-go"
)

const defaultEnvFile = ".env"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	cfg Config

	configPath string
	envFile    string
	baseURL    string
	verbose    bool
	jsonOutput bool
}

func newRootCmd(cfg Config) *cobra.Command {
	opts := &rootOptions{cfg: cfg}

	cmd := &cobra.Command{
		Use:           "convertkit",
		Short:         "ConvertKit API client",
		Long:          `Look up forms and tags and subscribe addresses to forms through the ConvertKit API.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(cfg.Stdin)
	cmd.SetOut(cfg.Stdout)
	cmd.SetErr(cfg.Stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML file with a convertkit section")
	flags.StringVar(&opts.envFile, "env-file", "", "file to load environment variables from (default .env if present)")
	flags.StringVar(&opts.baseURL, "base-url", "", "API root, overrides the configured one")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every HTTP request to stderr")
	flags.BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")

	cmd.AddCommand(
		newFormCmd(opts),
		newTagCmd(opts),
		newSubscribeCmd(opts),
	)
	return cmd
}

// client builds a client from, in increasing precedence: the config file,
// the environment (after loading the env file) and the --base-url flag.
func (o *rootOptions) client() (*convertkit.Client, error) {
	if err := loadEnvFile(o.envFile); err != nil {
		return nil, err
	}

	var cfg convertkit.Config
	if o.configPath != "" {
		fileCfg, err := convertkit.LoadConfigFile(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	cfg = cfg.Merge(convertkit.ConfigFromEnv()).Merge(convertkit.Config{BaseURI: o.baseURL})

	var opts []convertkit.Option
	if o.verbose {
		transport := &http.Client{Timeout: convertkit.DefaultTimeout}
		opts = append(opts, convertkit.WithHTTPClient(newLoggingDoer(transport, o.cfg.Stderr)))
	}
	return convertkit.NewFromConfig(cfg, opts...)
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set. With no path, .env is loaded if it exists.
func loadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", defaultEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
