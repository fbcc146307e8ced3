package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/melih-ucgun/warden/internal/core"
	"github.com/melih-ucgun/warden/internal/requirements"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report which requirements are missing from the interpreter",
	Long: `Probes every module in the manifest for importability (without
importing it) and prints a table of satisfied and missing requirements.
Exits with code 1 when anything is missing, so it can gate scripts.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Config error: %v\n", err)
			os.Exit(1)
		}

		logger := newLogger()
		hostName, _ := cmd.Flags().GetString("host")

		env, strat, cleanup, err := buildTarget(cfg, hostName, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
		defer cleanup()

		mgr, err := requirements.NewFromFile(ctx, &core.RealFS{}, cfg.Manifest, env, strat, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Manifest error: %v\n", err)
			os.Exit(1)
		}
		if mgr.ManifestMissing() {
			fmt.Printf("No requirements to manage (manifest %s does not exist).\n", cfg.Manifest)
			return
		}

		missing := printRequirements(mgr)
		if missing > 0 {
			os.Exit(1)
		}
	},
}

// printRequirements renders the requirement table and returns the number
// of missing entries.
func printRequirements(mgr *requirements.Manager) int {
	missingSet := make(map[string]bool)
	for _, req := range mgr.Check() {
		missingSet[req.Module] = true
	}

	// Tablo formatında çıktı
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "PACKAGE\tMODULE\tVERSION\tSTATUS")
	fmt.Fprintln(w, "-------\t------\t-------\t------")

	for _, req := range mgr.Requirements() {
		version := "latest"
		if req.Version != nil && *req.Version != "" {
			version = *req.Version
		}
		status := "✅ available"
		if missingSet[req.Module] {
			status = "❌ missing"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", req.Pip, req.Module, version, status)
	}
	w.Flush()

	return len(mgr.Check())
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().String("host", "", "Check a remote host from the config instead of the local interpreter")
}
