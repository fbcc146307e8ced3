package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/melih-ucgun/warden/internal/consts"
	"github.com/melih-ucgun/warden/internal/core"
	"github.com/melih-ucgun/warden/internal/requirements"
	"github.com/melih-ucgun/warden/internal/state"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show past install runs from the state journal",
	Run: func(cmd *cobra.Command, args []string) {
		fsys := &core.RealFS{}
		mgr, err := state.NewManager(consts.GetStateFilePath(), fsys)
		if err != nil {
			fmt.Printf("❌ Could not load state file: %v\n", err)
			return
		}

		runs := mgr.Runs()
		if len(runs) == 0 {
			fmt.Println("No install runs recorded yet.")
			return
		}

		fmt.Printf("📊 Warden Status (Last Run: %s)\n\n", mgr.Current.LastRun.Format(time.RFC822))

		// Tablo formatında çıktı
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "TIME\tHOST\tSTRATEGY\tMISSING\tOUTCOME")
		fmt.Fprintln(w, "----\t----\t--------\t-------\t-------")

		for _, run := range runs {
			host := run.Host
			if host == "" {
				host = "local"
			}
			outcomeIcon := "✅"
			if run.Outcome != requirements.OutcomeSatisfied && run.Outcome != requirements.OutcomeInstalled {
				outcomeIcon = "❌"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s %s\n",
				run.Time.Format("2006-01-02 15:04:05"),
				host,
				run.Strategy,
				len(run.Missing),
				outcomeIcon, run.Outcome,
			)
		}
		w.Flush()

		if showDiff, _ := cmd.Flags().GetBool("diff"); showDiff {
			printDrift(cmd, fsys, mgr)
		}
	},
}

// printDrift diffs the module list recorded at the last complete run
// against the current manifest.
func printDrift(cmd *cobra.Command, fsys core.FileSystem, mgr *state.Manager) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Printf("❌ Config error: %v\n", err)
		return
	}

	reqs, err := requirements.LoadManifest(fsys, cfg.Manifest)
	if err != nil {
		fmt.Printf("❌ Manifest error: %v\n", err)
		return
	}

	modules := make([]string, 0, len(reqs))
	for _, req := range reqs {
		modules = append(modules, req.Module)
	}

	recorded := strings.Join(mgr.Current.Satisfied, "\n") + "\n"
	current := strings.Join(modules, "\n") + "\n"
	if recorded == current {
		fmt.Println("\nManifest matches the last satisfied set.")
		return
	}

	fmt.Println("\nDrift against the last satisfied set:")
	fmt.Print(core.GenerateDiff(recorded, current))
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("diff", false, "Show drift between the manifest and the last satisfied set")
}
