package config

import (
	"fmt"
	"log/slog"

	"github.com/Mohsinsiddi/w3deploy/internal/network"
	"github.com/Mohsinsiddi/w3deploy/internal/provider"
	"github.com/Mohsinsiddi/w3deploy/internal/wallet"
	"github.com/spf13/viper"
)

// Config is the deployment configuration: one profile per network plus the
// compiler pin. Build it once with Load and pass it to whatever deploys.
type Config struct {
	Secrets   Secrets
	Compilers Compilers

	registry *network.Registry
	profiles []*network.Profile
	byName   map[string]*network.Profile
}

type options struct {
	envFile string
	viper   *viper.Viper
	logger  *slog.Logger
	creds   wallet.Credentials
	dial    provider.DialFunc
}

// Option configures Load.
type Option func(*options)

// WithEnvFile loads a .env file before the environment is read.
func WithEnvFile(path string) Option {
	return func(o *options) { o.envFile = path }
}

// WithViper reads secrets through v instead of a fresh env-bound instance.
func WithViper(v *viper.Viper) Option {
	return func(o *options) { o.viper = v }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCredentials replaces the SECRET_KEY-backed credentials, e.g. with
// wallet.KeyringCredentials.
func WithCredentials(c wallet.Credentials) Option {
	return func(o *options) { o.creds = c }
}

// WithDialer sets how provider factories construct providers.
func WithDialer(d provider.DialFunc) Option {
	return func(o *options) { o.dial = d }
}

// Load reads the secrets and builds every network profile. No provider is
// constructed; each remote profile's factory runs on first use.
func Load(opts ...Option) (*Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	if o.envFile != "" {
		if err := LoadDotEnv(o.envFile); err != nil {
			return nil, err
		}
	}

	secrets := LoadSecrets(o.viper, o.logger)

	creds := o.creds
	if creds == nil {
		creds = wallet.NewSecretCredentials(secrets.SecretKey)
	}

	reg := network.NewRegistry()
	cfg := &Config{
		Secrets:   secrets,
		Compilers: Compilers{Solc: SolcDirective{Version: SolcVersion}},
		registry:  reg,
		byName:    make(map[string]*network.Profile, len(reg.All())),
	}
	for _, def := range reg.All() {
		p := network.Build(def, secrets.ProjectID, creds, o.dial)
		cfg.profiles = append(cfg.profiles, p)
		cfg.byName[def.Name] = p
	}

	o.logger.Debug("configuration loaded",
		slog.Int("networks", len(cfg.profiles)),
		slog.String("credentials", describeCredentials(creds)),
		slog.String("solc", SolcVersion),
	)
	return cfg, nil
}

// Network returns the profile for name.
func (c *Config) Network(name string) (*network.Profile, error) {
	def, err := c.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	return c.byName[def.Name], nil
}

// NetworkByID returns the profile configured with id.
func (c *Config) NetworkByID(id network.NetworkID) (*network.Profile, error) {
	def, err := c.registry.GetByNetworkID(id)
	if err != nil {
		return nil, err
	}
	return c.byName[def.Name], nil
}

// Networks returns all profiles in declaration order.
func (c *Config) Networks() []*network.Profile {
	return c.profiles
}

// CompilerDirective returns the pinned solc version.
func (c *Config) CompilerDirective() string {
	return c.Compilers.Solc.Version
}

// Close releases every provider built through the configuration.
func (c *Config) Close() {
	for _, p := range c.profiles {
		p.Close()
	}
}

// describeCredentials names the credential source without touching the secret.
func describeCredentials(c wallet.Credentials) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", c)
}
