package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pv "github.com/careproc/validator"
	"github.com/careproc/validator/engine"
	"github.com/careproc/validator/reportio"
)

// ErrFindings is returned when the run produced error findings; the
// run itself completed.
var ErrFindings = fmt.Errorf("validation reported errors")

var validateCmd = &cobra.Command{
	Use:   "validate [project-root]",
	Short: "validate a plugin project and write JSON reports",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyValidateFlags(cmd)
		if len(args) == 1 {
			cfg.ProjectRoot = args[0]
		}

		opts := []pv.Option{
			pv.WithTerminologySeeding(cfg.SeedTerminology),
			pv.WithClassValidation(cfg.ValidateClasses),
			pv.WithBuildOutputDir(cfg.BuildOutputDir),
		}
		if cfg.ProjectRoot != "" {
			opts = append(opts, pv.WithProjectRoot(cfg.ProjectRoot))
		}
		if g := pv.Generation(cfg.Generation); g.IsValid() {
			opts = append(opts, pv.WithGeneration(g))
		}

		res, err := engine.New(opts...).Run(cmd.Context())
		if err != nil {
			return err
		}

		if err := reportio.NewWriter(cfg.OutputDir).WriteAll(res.Report, res.Generation); err != nil {
			return err
		}

		counts := res.Report.Counts()
		fmt.Fprintf(cmd.OutOrStdout(),
			"validated %s (generation %s): %d errors, %d warnings, %d info, %d successes\n",
			res.Root, res.Generation,
			counts[pv.SeverityError], counts[pv.SeverityWarning],
			counts[pv.SeverityInformation], counts[pv.SeveritySuccess])

		if res.Report.HasErrors() {
			return ErrFindings
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().String("generation", "", "API generation override: v1 or v2")
	validateCmd.Flags().String("output", "", "report output directory")
	validateCmd.Flags().Bool("no-classes", false, "skip implementation class checks")
	validateCmd.Flags().Bool("no-seed", false, "skip terminology seeding from the project")

	rootCmd.AddCommand(validateCmd)
}

// applyValidateFlags folds the validate-specific flags into the
// configuration.
func applyValidateFlags(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("generation"); f != nil && f.Changed {
		cfg.Generation = f.Value.String()
	}
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		cfg.OutputDir = f.Value.String()
	}
	if f := cmd.Flags().Lookup("no-classes"); f != nil && f.Changed {
		cfg.ValidateClasses = f.Value.String() != "true"
	}
	if f := cmd.Flags().Lookup("no-seed"); f != nil && f.Changed {
		cfg.SeedTerminology = f.Value.String() != "true"
	}
}
