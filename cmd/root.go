package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/melih-ucgun/warden/internal/consts"
	"github.com/melih-ucgun/warden/internal/core"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "warden",
	Short: "Keep an embedded Python interpreter's requirements satisfied.",
	Long: `Warden checks whether the modules a host application depends on are
importable in its embedded Python interpreter, and installs the missing
ones with pip - bootstrapping pip itself when the interpreter ships
without it.`,
}

var verboseCount int

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// .env dosyası varsa WARDEN_* değişkenlerini yükle
	_ = godotenv.Load()

	// Varsayılan JSON loglayıcı ayarla (veya isteğe bağlı TextHandler)
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	// PTerm output to Stderr (to keep Stdout clean for piping)
	pterm.SetDefaultOutput(os.Stderr)
	pterm.Success.Writer = os.Stderr
	pterm.Info.Writer = os.Stderr
	pterm.Error.Writer = os.Stderr
	pterm.Warning.Writer = os.Stderr

	rootCmd.PersistentFlags().StringP("config", "c", consts.DefaultConfigName, "config file path")
	rootCmd.PersistentFlags().CountVarP(&verboseCount, "verbose", "v", "Increase verbosity level (-v, -vv)")
}

// newLogger builds the logger for a command invocation; -v switches the
// level to debug.
func newLogger() core.Logger {
	level := core.LevelInfo
	if verboseCount > 0 {
		level = core.LevelDebug
	}
	return core.NewDefaultLogger(os.Stderr, level)
}
