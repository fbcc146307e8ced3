package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/melih-ucgun/warden/internal/consts"
	"github.com/melih-ucgun/warden/internal/core"
	"github.com/melih-ucgun/warden/internal/requirements"
	"github.com/melih-ucgun/warden/internal/state"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the missing requirements with pip",
	Long: `Probes the manifest against the interpreter and installs whatever is
missing in one batched pip invocation. If pip itself is absent it is
bootstrapped first, with the strategy selected in the config. Failures
are logged and absorbed; the exit code reflects whether the environment
ended up complete.`,
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

		fsys := &core.RealFS{}
		mgr, err := requirements.NewFromFile(ctx, fsys, cfg.Manifest, env, strat, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Manifest error: %v\n", err)
			os.Exit(1)
		}

		missingBefore := mgr.Check()
		mgr.Install(ctx)

		// Probe again: Install never returns an error, the fresh probe is
		// the ground truth on what the run achieved.
		after := requirements.New(ctx, mgr.Requirements(), env, strat, logger)
		remaining := after.Check()

		recordRun(logger, fsys, mgr, hostName, strat.Name(), missingBefore, remaining)

		switch {
		case len(mgr.Requirements()) == 0:
			fmt.Println("No requirements to manage.")
		case len(remaining) == 0:
			fmt.Printf("✅ All %d requirements are available.\n", len(mgr.Requirements()))
		default:
			fmt.Printf("❌ %d of %d requirements are still missing (see the log for details).\n",
				len(remaining), len(mgr.Requirements()))
			os.Exit(1)
		}
	},
}

// recordRun appends the install attempt to the state journal. Journal
// trouble is logged, never fatal.
func recordRun(logger core.Logger, fsys core.FileSystem, mgr *requirements.Manager, hostName, strategy string, missingBefore, remaining []requirements.Requirement) {
	stateMgr, err := state.NewManager(consts.GetStateFilePath(), fsys)
	if err != nil {
		logger.Warn("Could not open the state journal.", "error", err)
		return
	}

	missing := make([]string, 0, len(missingBefore))
	for _, req := range missingBefore {
		missing = append(missing, req.Pip)
	}

	var satisfied []string
	if len(remaining) == 0 {
		satisfied = make([]string, 0, len(mgr.Requirements()))
		for _, req := range mgr.Requirements() {
			satisfied = append(satisfied, req.Module)
		}
	}

	run := state.Run{
		ID:       uuid.New().String(),
		Time:     time.Now(),
		Host:     hostName,
		Strategy: strategy,
		Missing:  missing,
		Outcome:  mgr.Outcome(),
	}
	if err := stateMgr.AppendRun(run, satisfied); err != nil {
		logger.Warn("Could not write the state journal.", "error", err)
	}
}

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().String("host", "", "Install on a remote host from the config instead of the local interpreter")
}
