package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mohsinsiddi/w3deploy/internal/config"
	"github.com/Mohsinsiddi/w3deploy/internal/provider"
	"github.com/Mohsinsiddi/w3deploy/internal/ui"
	"github.com/spf13/cobra"
)

var connectTimeout = config.ConnectTimeout

var connectCmd = &cobra.Command{
	Use:   "connect [name]",
	Short: "Build a network's provider and check the node",
	Long: `Invoke the network's provider factory, then ping the node and compare
its chain id with the configured network_id.

Without a name an interactive picker is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		} else {
			items := make([]ui.PickerItem, 0, len(cfg.Networks()))
			for _, p := range cfg.Networks() {
				items = append(items, ui.PickerItem{
					Label:    p.Name,
					SubLabel: "network_id " + p.NetworkID.String(),
					Value:    p.Name,
				})
			}
			picked, err := ui.PickItem("Connect  ·  select a network", items)
			if err != nil {
				return err
			}
			if picked == "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Meta("Cancelled."))
				return nil
			}
			name = picked
		}

		p, err := resolveNetwork(name)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), connectTimeout)
		defer cancel()

		spin := ui.NewSpinner(cmd.ErrOrStderr(), fmt.Sprintf("Connecting to %s...", p.DisplayName))
		spin.Start()
		prov, err := p.Connect(ctx)
		if err != nil {
			spin.Stop()
			return fmt.Errorf("building %s provider: %w", p.Name, err)
		}
		h, err := provider.HealthCheck(ctx, prov, p.NetworkID)
		spin.Stop()

		account := "node-managed"
		if _, serr := prov.Signer(); serr == nil {
			account = prov.Address().Hex()
		}

		pairs := [][2]string{
			{"Endpoint", ui.RedactURL(p.Endpoint())},
			{"Account", account},
			{"Latency", h.Latency.Round(time.Millisecond).String()},
		}
		if h.ChainID != nil {
			pairs = append(pairs, [2]string{"Chain ID", h.ChainID.String()})
		}
		if h.BlockNumber > 0 {
			pairs = append(pairs, [2]string{"Block", fmt.Sprintf("%d", h.BlockNumber)})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.KeyValueBlock(p.DisplayName, pairs))
		if errors.Is(err, provider.ErrChainMismatch) {
			fmt.Fprintln(out, ui.Warn(fmt.Sprintf("%s answers on chain %s, not network_id %s", p.Name, h.ChainID, p.NetworkID)))
			return fmt.Errorf("%s is not healthy: %w", p.Name, err)
		}
		if err != nil {
			fmt.Fprintln(out, ui.Err(err.Error()))
			return fmt.Errorf("%s is not healthy: %w", p.Name, err)
		}
		fmt.Fprintln(out, ui.Success(fmt.Sprintf("%s is reachable (network_id %s)", p.Name, p.NetworkID)))
		return nil
	},
}
