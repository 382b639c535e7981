package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Mohsinsiddi/w3deploy/internal/config"
	"github.com/Mohsinsiddi/w3deploy/internal/ui"
	"github.com/Mohsinsiddi/w3deploy/internal/wallet"
	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
)

var (
	keysFromEnv bool
	keysYes     bool
)

// keystoreOpener is swapped out in tests.
var keystoreOpener = func() (wallet.KeystoreBackend, error) {
	return wallet.OpenKeystore(keyringDir)
}

func defaultKeyringDir() string {
	return filepath.Join(xdg.DataHome, "w3deploy", "keyring")
}

func openKeystore() (wallet.KeystoreBackend, error) {
	return keystoreOpener()
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage the signing secret in the OS keychain",
}

var keysSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the signing secret (mnemonic or hex key)",
	Long: `Store the signing secret in the OS keychain under --key-ref.

The secret is read from the first line of stdin, or from SECRET_KEY with
--from-env. It is validated before it is stored.

Examples:
  echo "$MNEMONIC" | w3deploy keys set
  w3deploy keys set --from-env`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var secret string
		if keysFromEnv {
			secret = cfg.Secrets.SecretKey
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("reading secret from stdin: %w", err)
			}
			secret = strings.TrimSpace(line)
		}

		key, err := wallet.PrivateKeyFromSecret(secret)
		if err != nil {
			return err
		}

		ks, err := openKeystore()
		if err != nil {
			return err
		}
		if err := ks.Store(keyRef, secret); err != nil {
			return err
		}

		signer := wallet.NewSigner(key)
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Stored secret %s for %s under %s",
			wallet.Fingerprint(secret), signer.Address().Hex(), keyRef)))
		return nil
	},
}

var keysShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show which account the stored secret signs for",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ks, err := openKeystore()
		if err != nil {
			return err
		}
		secret, err := ks.Retrieve(keyRef)
		if err != nil {
			if errors.Is(err, wallet.ErrSecretNotFound) {
				return fmt.Errorf("%w — run `w3deploy keys set` first", err)
			}
			return err
		}
		key, err := wallet.PrivateKeyFromSecret(secret)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Signing secret", [][2]string{
			{"Reference", keyRef},
			{"Fingerprint", wallet.Fingerprint(secret)},
			{"Account", wallet.NewSigner(key).Address().Hex()},
		}))
		return nil
	},
}

var keysRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete the stored secret",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !keysYes && !ui.ConfirmDanger(cmd.InOrStdin(), cmd.OutOrStdout(), "Remove "+keyRef+" from the keychain?") {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Meta("Cancelled."))
			return nil
		}
		ks, err := openKeystore()
		if err != nil {
			return err
		}
		if err := ks.Delete(keyRef); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Removed "+keyRef))
		return nil
	},
}

func init() {
	keysSetCmd.Flags().BoolVar(&keysFromEnv, "from-env", false, "store the value of "+config.EnvSecretKey)
	keysRemoveCmd.Flags().BoolVarP(&keysYes, "yes", "y", false, "skip confirmation")
	keysCmd.AddCommand(keysSetCmd, keysShowCmd, keysRemoveCmd)
}

