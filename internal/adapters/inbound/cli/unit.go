package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/unitcheck/unitcheck/internal/adapters/outbound/cache"
	configloader "github.com/unitcheck/unitcheck/internal/adapters/outbound/config"
	"github.com/unitcheck/unitcheck/internal/adapters/outbound/registry"
	"github.com/unitcheck/unitcheck/internal/adapters/outbound/tui"
)

func newUnitCmd() *cobra.Command {
	var (
		jsonOutput bool
		offline    bool
	)

	cmd := &cobra.Command{
		Use:   "unit <code>",
		Short: "Look up a unit of competency",
		Long:  "Resolve a unit code to its title, performance criteria and knowledge evidence, from the live registry or the built-in fallback table.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configloader.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if offline {
				cfg.Registry.Offline = true
			}

			fallback, err := registry.NewFallbackTable()
			if err != nil {
				return fmt.Errorf("loading fallback unit table: %w", err)
			}
			client := registry.NewClient(cfg.Registry.BaseURL, time.Duration(cfg.Registry.TimeoutSeconds)*time.Second)
			resolver := registry.NewChainResolver(cache.New(), client, fallback, cfg.Registry.Offline)

			def, err := resolver.Resolve(args[0])
			if err != nil {
				return fmt.Errorf("resolving %s: %w", args[0], err)
			}

			if jsonOutput {
				return renderJSON(cmd, def)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDefinition(def))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the unit definition as JSON")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip the live registry and resolve from the built-in table only")

	return cmd
}
