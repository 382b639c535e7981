package cmd

import (
	"fmt"
	"strconv"

	"github.com/Mohsinsiddi/w3deploy/internal/network"
	"github.com/Mohsinsiddi/w3deploy/internal/ui"
	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Inspect deployment networks",
}

var networkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured networks",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := ui.NewTable([]ui.Column{
			{Title: "Name", Width: 12},
			{Title: "ID", Width: 4, Right: true},
			{Title: "Endpoint", Width: 40},
			{Title: "Gas", Width: 9, Right: true},
			{Title: "Gas price", Width: 9, Right: true},
			{Title: "Confs", Width: 5, Right: true},
			{Title: "Timeout", Width: 7, Right: true},
			{Title: "Dry run", Width: 7},
		})

		for _, p := range cfg.Networks() {
			t.AddRow(ui.Row{
				p.Name,
				p.NetworkID.String(),
				ui.RedactURL(p.Endpoint()),
				gasLabel(p),
				ui.FormatGwei(p.GasPrice),
				strconv.Itoa(p.EffectiveConfirmations()),
				strconv.Itoa(p.EffectiveTimeoutBlocks()),
				yesNo(p.DryRun()),
			})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, t.Render())
		fmt.Fprintln(out, ui.Meta(fmt.Sprintf("%d networks · solc %s", len(cfg.Networks()), cfg.CompilerDirective())))
		return nil
	},
}

var networkShowCmd = &cobra.Command{
	Use:   "show <name|network-id|*>",
	Short: "Show one network profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveNetwork(args[0])
		if err != nil {
			return err
		}

		pairs := [][2]string{
			{"Network ID", p.NetworkID.String()},
			{"Endpoint", ui.RedactURL(p.Endpoint())},
		}
		if !p.Remote {
			pairs = append(pairs, [2]string{"Host", p.Host}, [2]string{"Port", strconv.Itoa(p.Port)})
		}
		pairs = append(pairs,
			[2]string{"Gas limit", gasLabel(p)},
			[2]string{"Gas price", fmt.Sprintf("%s (%d wei)", ui.FormatGwei(p.GasPrice), p.GasPrice)},
			[2]string{"Confirmations", strconv.Itoa(p.EffectiveConfirmations())},
			[2]string{"Timeout blocks", strconv.Itoa(p.EffectiveTimeoutBlocks())},
			[2]string{"Dry run", yesNo(p.DryRun())},
		)
		if p.Provider != nil {
			pairs = append(pairs, [2]string{"Provider", "hdwallet (built on first use)"})
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock(p.DisplayName, pairs))
		return nil
	},
}

// resolveNetwork accepts a network name or a network id ("*" included).
func resolveNetwork(arg string) (*network.Profile, error) {
	var (
		p   *network.Profile
		err error
	)
	if id, perr := network.ParseNetworkID(arg); perr == nil {
		p, err = cfg.NetworkByID(id)
	} else {
		p, err = cfg.Network(arg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w — run `w3deploy network list` to see all networks", err)
	}
	return p, nil
}

func gasLabel(p *network.Profile) string {
	if p.Gas == 0 {
		return "auto"
	}
	return strconv.FormatUint(p.Gas, 10)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	networkCmd.AddCommand(networkListCmd, networkShowCmd)
}
