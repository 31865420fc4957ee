package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/unitcheck/unitcheck/internal/adapters/outbound/cache"
	configloader "github.com/unitcheck/unitcheck/internal/adapters/outbound/config"
	"github.com/unitcheck/unitcheck/internal/adapters/outbound/detector"
	"github.com/unitcheck/unitcheck/internal/adapters/outbound/extractor"
	"github.com/unitcheck/unitcheck/internal/adapters/outbound/gitinfo"
	"github.com/unitcheck/unitcheck/internal/adapters/outbound/registry"
	"github.com/unitcheck/unitcheck/internal/adapters/outbound/tui"
	"github.com/unitcheck/unitcheck/internal/application"
	"github.com/unitcheck/unitcheck/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		minScore   int
		offline    bool
		rawText    string
	)

	cmd := &cobra.Command{
		Use:   "validate [document]",
		Short: "Validate an assessment document against its referenced units",
		Long:  "Extract unit codes from an assessment document, resolve each unit's performance criteria and knowledge evidence, and score how well the document covers them.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && rawText == "" {
				return fmt.Errorf("provide a document path or --text")
			}

			workDir := "."
			if len(args) > 0 {
				workDir = filepath.Dir(args[0])
			}

			cfg, err := configloader.New().Load(workDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if offline {
				cfg.Registry.Offline = true
			}

			svc, err := newValidateService(cfg)
			if err != nil {
				return err
			}

			var result *domain.ValidationResult
			if len(args) > 0 {
				absPath, err := filepath.Abs(args[0])
				if err != nil {
					return fmt.Errorf("resolving path: %w", err)
				}
				result, err = svc.ValidateFile(absPath)
				if err != nil {
					return fmt.Errorf("validation failed: %w", err)
				}

				// Attach document repo commit hash if available.
				gi := gitinfo.New()
				if hash, err := gi.CommitHash(filepath.Dir(absPath)); err == nil {
					result.CommitHash = hash
				}
			} else {
				result = svc.ValidateText(rawText)
			}

			if jsonOutput {
				if err := renderJSON(cmd, result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(result))
			}

			if ciMode && result.Collection.MinSufficiency() < minScore {
				return fmt.Errorf("sufficiency %d is below minimum %d", result.Collection.MinSufficiency(), minScore)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the validation result as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if minimum sufficiency is below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum sufficiency score for CI mode")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip the live registry and resolve from the built-in table only")
	cmd.Flags().StringVar(&rawText, "text", "", "Validate raw text instead of a document file")

	return cmd
}

// newValidateService wires the default adapter chain for one validation
// run.
func newValidateService(cfg domain.Config) (*application.ValidateService, error) {
	fallback, err := registry.NewFallbackTable()
	if err != nil {
		return nil, fmt.Errorf("loading fallback unit table: %w", err)
	}

	client := registry.NewClient(cfg.Registry.BaseURL, time.Duration(cfg.Registry.TimeoutSeconds)*time.Second)
	resolver := registry.NewChainResolver(cache.New(), client, fallback, cfg.Registry.Offline)

	return application.NewValidateService(extractor.New(), detector.New(), resolver, cfg), nil
}

func renderJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
