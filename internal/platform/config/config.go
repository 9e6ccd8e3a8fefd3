// Package config holds the immutable run configuration for enumchain.
// Precedence: defaults, then ENUMCHAIN_* environment variables, then flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"enumchain/internal/platform/errors"
	"enumchain/internal/platform/validator"
)

const DefaultOutputDir = "recon_results"

// Config is parsed once at startup and read-only afterwards.
type Config struct {
	// Target source: exactly one of Domain / ListFile
	Domain   string
	ListFile string

	// IO
	OutputDir string

	// Proxy address as host:port; empty disables proxy mode
	Proxy string

	// DryRun prints planned invocations without executing any tool
	DryRun bool

	// ToolsManifest optionally overrides the built-in tool chain (YAML)
	ToolsManifest string

	Verbose      bool
	PrintVersion bool
}

// Load parses configuration from env and the given argument list
// (normally os.Args[1:]).
func Load(args []string) (Config, error) {
	cfg := Config{OutputDir: DefaultOutputDir}
	loadFromEnv(&cfg)

	fs := pflag.NewFlagSet("enumchain", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVarP(&cfg.Domain, "domain", "d", cfg.Domain, "Single target domain (e.g., example.com)")
	fs.StringVarP(&cfg.ListFile, "list", "l", cfg.ListFile, "File containing a list of domains (one per line)")
	fs.StringVarP(&cfg.OutputDir, "output-dir", "o", cfg.OutputDir, "Directory to store all output files")
	fs.StringVarP(&cfg.Proxy, "proxy", "p", cfg.Proxy, "Intercepting proxy address (e.g., 127.0.0.1:8080)")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Show planned commands without executing them")
	fs.StringVar(&cfg.ToolsManifest, "tools", cfg.ToolsManifest, "Path to a YAML tool manifest overriding the built-in chain")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose mode (debug logging)")
	fs.BoolVarP(&cfg.PrintVersion, "version", "v", false, "Print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "enumchain - sequential reconnaissance tool chain\n\n")
		fmt.Fprintf(os.Stderr, "USAGE:\n")
		fmt.Fprintf(os.Stderr, "  enumchain (-d <domain> | -l <file>) [flags]\n\n")
		fmt.Fprintf(os.Stderr, "FLAGS:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEXAMPLES:\n")
		fmt.Fprintf(os.Stderr, "  # Single target\n")
		fmt.Fprintf(os.Stderr, "  enumchain -d example.com\n\n")
		fmt.Fprintf(os.Stderr, "  # Target list through a local proxy\n")
		fmt.Fprintf(os.Stderr, "  enumchain -l scope.txt -p 127.0.0.1:8080 -o out\n\n")
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	normalize(&cfg)
	return cfg, nil
}

func loadFromEnv(cfg *Config) {
	if v := getenv("ENUMCHAIN_OUTPUT_DIR", ""); v != "" {
		cfg.OutputDir = v
	}
	if v := getenv("ENUMCHAIN_PROXY", ""); v != "" {
		cfg.Proxy = v
	}
	if v := getenv("ENUMCHAIN_TOOLS", ""); v != "" {
		cfg.ToolsManifest = v
	}
}

func normalize(c *Config) {
	c.Domain = validator.NormalizeDomain(c.Domain)
	c.ListFile = strings.TrimSpace(c.ListFile)
	c.Proxy = strings.TrimSpace(c.Proxy)
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
}

// Validate checks the flag combination for user errors.
func (c Config) Validate() error {
	if c.Domain == "" && c.ListFile == "" {
		return errors.Wrap(errors.ErrInvalidInput, "one of -d/--domain or -l/--list is required")
	}
	if c.Domain != "" && c.ListFile != "" {
		return errors.Wrap(errors.ErrInvalidInput, "-d/--domain and -l/--list are mutually exclusive")
	}
	if c.Proxy != "" && !validator.IsProxyAddr(c.Proxy) {
		return errors.Wrapf(errors.ErrInvalidInput, "proxy must be host:port, got %q", c.Proxy)
	}
	return nil
}

// ProxyEnabled reports whether an intercepting proxy was configured.
func (c Config) ProxyEnabled() bool {
	return c.Proxy != ""
}

// ProxyURL synthesizes the proxy URL from the configured address.
func (c Config) ProxyURL() string {
	if c.Proxy == "" {
		return ""
	}
	return "http://" + c.Proxy
}

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}
