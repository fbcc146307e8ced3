package cmd

import (
	"fmt"

	"github.com/melih-ucgun/warden/internal/bootstrap"
	"github.com/melih-ucgun/warden/internal/config"
	"github.com/melih-ucgun/warden/internal/core"
	"github.com/melih-ucgun/warden/internal/python"
	"github.com/melih-ucgun/warden/internal/requirements"
	"github.com/melih-ucgun/warden/internal/transport"
	"github.com/spf13/cobra"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	return config.Load(cfgFile)
}

// buildTarget wires the environment capability and the bootstrap strategy
// for either the local interpreter or a configured remote host. The
// returned cleanup closes the transport when there is one.
func buildTarget(cfg *config.Config, hostName string, logger core.Logger) (requirements.Environment, bootstrap.Strategy, func(), error) {
	if hostName == "" {
		runner := &core.RealRunner{}
		env := python.NewInterpreter(cfg.Interpreter, runner, logger)

		var strat bootstrap.Strategy
		switch cfg.Bootstrap.Strategy {
		case config.StrategyGetPip:
			gp := bootstrap.NewGetPip(cfg.Interpreter, runner, logger)
			gp.URL = cfg.Bootstrap.URL
			gp.Timeout = cfg.BootstrapTimeout()
			strat = gp
		default:
			strat = bootstrap.NewEnsurepip(cfg.Interpreter, cfg.Bootstrap.Upgrade, runner, logger)
		}
		return env, strat, func() {}, nil
	}

	host, err := cfg.FindHost(hostName)
	if err != nil {
		return nil, nil, nil, err
	}

	tr, err := transport.NewSSHTransport(host)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not reach host %s: %w", hostName, err)
	}

	exe := cfg.HostInterpreter(host)
	env := python.NewRemoteInterpreter(exe, tr, logger)

	var strat bootstrap.Strategy
	switch cfg.Bootstrap.Strategy {
	case config.StrategyGetPip:
		gp := bootstrap.NewRemoteGetPip(exe, tr, logger)
		gp.URL = cfg.Bootstrap.URL
		strat = gp
	default:
		strat = bootstrap.NewRemoteEnsurepip(exe, cfg.Bootstrap.Upgrade, tr, logger)
	}
	return env, strat, func() { tr.Close() }, nil
}
