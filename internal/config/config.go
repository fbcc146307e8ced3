package config

import (
	"fmt"
	"os"
	"time"

	"github.com/melih-ucgun/warden/internal/consts"
	"github.com/melih-ucgun/warden/internal/core"
	"gopkg.in/yaml.v3"
)

// Host describes a remote machine carrying an embedded interpreter.
type Host struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	User    string `yaml:"user"`
	Port    int    `yaml:"port"`
	KeyPath string `yaml:"key_path"`
	// Interpreter overrides the global interpreter path on this host.
	Interpreter string `yaml:"interpreter"`
}

// Bootstrap selects and tunes the pip bootstrap strategy.
type Bootstrap struct {
	// Strategy is "ensurepip" or "get-pip".
	Strategy string `yaml:"strategy"`
	URL      string `yaml:"url"`
	// TimeoutSeconds bounds the get-pip child process.
	TimeoutSeconds int `yaml:"timeout"`
	// Upgrade lets ensurepip replace an older pip with the bundled one.
	Upgrade bool `yaml:"upgrade"`
}

type Config struct {
	// Interpreter is the python executable whose environment is managed.
	// Supplied by the embedding host; templated so DCC installs can be
	// located via env, e.g. {{ env "MAYA_LOCATION" }}/bin/mayapy.
	Interpreter string    `yaml:"interpreter"`
	Manifest    string    `yaml:"manifest"`
	Bootstrap   Bootstrap `yaml:"bootstrap"`
	Hosts       []Host    `yaml:"hosts"`
}

const (
	StrategyEnsurepip = "ensurepip"
	StrategyGetPip    = "get-pip"
)

// Load reads a warden.yaml, renders the templated string fields and applies
// WARDEN_* environment overrides and defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}

	if err := cfg.render(); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.applyDefaults()

	if cfg.Interpreter == "" {
		return nil, fmt.Errorf("config %s: interpreter path is required", path)
	}
	if s := cfg.Bootstrap.Strategy; s != StrategyEnsurepip && s != StrategyGetPip {
		return nil, fmt.Errorf("config %s: unknown bootstrap strategy %q", path, s)
	}
	return &cfg, nil
}

func (c *Config) render() error {
	fields := []*string{&c.Interpreter, &c.Manifest, &c.Bootstrap.URL}
	for i := range c.Hosts {
		fields = append(fields, &c.Hosts[i].Interpreter, &c.Hosts[i].KeyPath)
	}
	for _, f := range fields {
		if *f == "" {
			continue
		}
		rendered, err := core.RenderString(*f, nil)
		if err != nil {
			return fmt.Errorf("template error in %q: %w", *f, err)
		}
		*f = rendered
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("WARDEN_INTERPRETER"); v != "" {
		c.Interpreter = v
	}
	if v := os.Getenv("WARDEN_MANIFEST"); v != "" {
		c.Manifest = v
	}
}

func (c *Config) applyDefaults() {
	if c.Manifest == "" {
		c.Manifest = consts.DefaultManifestName
	}
	if c.Bootstrap.Strategy == "" {
		c.Bootstrap.Strategy = StrategyEnsurepip
	}
	if c.Bootstrap.URL == "" {
		c.Bootstrap.URL = consts.DefaultGetPipURL
	}
	if c.Bootstrap.TimeoutSeconds <= 0 {
		c.Bootstrap.TimeoutSeconds = int(consts.DefaultBootstrapTimeout / time.Second)
	}
}

// BootstrapTimeout returns the configured timeout as a duration.
func (c *Config) BootstrapTimeout() time.Duration {
	return time.Duration(c.Bootstrap.TimeoutSeconds) * time.Second
}

// FindHost looks up a host declaration by name.
func (c *Config) FindHost(name string) (Host, error) {
	for _, h := range c.Hosts {
		if h.Name == name {
			return h, nil
		}
	}
	return Host{}, fmt.Errorf("host not found in config: %s", name)
}

// HostInterpreter returns the interpreter to use on the given host.
func (c *Config) HostInterpreter(h Host) string {
	if h.Interpreter != "" {
		return h.Interpreter
	}
	return c.Interpreter
}
