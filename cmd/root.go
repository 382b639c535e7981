package cmd

import (
	"fmt"
	"os"

	"github.com/Mohsinsiddi/w3deploy/internal/config"
	"github.com/Mohsinsiddi/w3deploy/internal/provider"
	"github.com/Mohsinsiddi/w3deploy/internal/wallet"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/w3deploy/cmd.Version=1.2.3" .
var Version = "1.0.0"

const (
	keySourceEnv     = "env"
	keySourceKeyring = "keyring"
)

var (
	envFile    string
	keySource  string
	keyRef     string
	keyringDir string
	verbose    bool

	cfg *config.Config

	// dialer overrides how providers are constructed. Nil dials the endpoint.
	dialer provider.DialFunc
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "w3deploy",
	Short: "Deployment network configuration",
	Long: `w3deploy holds the network profiles and compiler pin used to deploy
smart contracts, and lets you inspect, export and smoke-test them.

Secrets come from the environment (PROJECT_ID, SECRET_KEY), optionally
loaded from a .env file. Use --key-source keyring to read the signing
secret from the OS keychain instead (see: w3deploy keys set).`,
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		log := newLogger(cmd.ErrOrStderr(), verbose)
		v := config.NewViper()
		if err := v.BindPFlag("project_id", cmd.Root().PersistentFlags().Lookup("project-id")); err != nil {
			return err
		}
		opts := []config.Option{config.WithEnvFile(envFile), config.WithLogger(log), config.WithViper(v)}

		switch keySource {
		case keySourceEnv:
		case keySourceKeyring:
			ks, err := openKeystore()
			if err != nil {
				return err
			}
			opts = append(opts, config.WithCredentials(wallet.NewKeyringCredentials(ks, keyRef)))
		default:
			return fmt.Errorf("unknown --key-source %q (use %s or %s)", keySource, keySourceEnv, keySourceKeyring)
		}

		if dialer != nil {
			opts = append(opts, config.WithDialer(dialer))
		}

		var err error
		cfg, err = config.Load(opts...)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// W3DEPLOY_ENV_FILE overrides the --env-file default.
	defaultEnvFile := config.DefaultEnvFile
	if f := os.Getenv("W3DEPLOY_ENV_FILE"); f != "" {
		defaultEnvFile = f
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", defaultEnvFile, "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().String("project-id", "", "hosted RPC project id (overrides "+config.EnvProjectID+")")
	rootCmd.PersistentFlags().StringVar(&keySource, "key-source", keySourceEnv, "where the signing secret comes from: env | keyring")
	rootCmd.PersistentFlags().StringVar(&keyRef, "key-ref", wallet.DefaultSecretRef, "keychain entry holding the secret")
	rootCmd.PersistentFlags().StringVar(&keyringDir, "keyring-dir", defaultKeyringDir(), "directory for the file keyring backend")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Runs even when a command fails, so providers built by it are released.
	cobra.OnFinalize(func() {
		if cfg != nil {
			cfg.Close()
		}
	})

	rootCmd.AddCommand(
		networkCmd,
		compilersCmd,
		exportCmd,
		connectCmd,
		keysCmd,
	)
}
