package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lixenwraith/ascii-race/audio"
	"github.com/lixenwraith/ascii-race/config"
	racelog "github.com/lixenwraith/ascii-race/log"
	"github.com/lixenwraith/ascii-race/race"
	"github.com/lixenwraith/ascii-race/terminal"
)

// Process exit codes
const (
	exitOK            = 0
	exitInterrupted   = 1
	exitInvalidConfig = 2
)

// Execute runs the root command with args and returns the process exit code
func Execute(args []string) int {
	cmd := newRootCmd(viper.New())
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil && !errors.Is(err, race.ErrInterrupted) {
		fmt.Fprintln(os.Stderr, "ascii-race:", err)
	}
	return exitCode(err)
}

// exitCode maps a run error onto the process exit status
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, race.ErrInvalidConfiguration):
		return exitInvalidConfig
	default:
		return exitInterrupted
	}
}

// newRootCmd builds the command reading its settings through v
func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "ascii-race",
		Short:         "Race ASCII cars across the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromViper(v)
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runFromTerminal(ctx, cfg)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", race.ErrInvalidConfiguration, err)
	})
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ascii-race.yml)")
	config.AddFlags(cmd.Flags())
	return cmd
}

// initConfig reads in config file and ENV variables if set
func initConfig(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".ascii-race")
	}

	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("%w: %w", race.ErrInvalidConfiguration, err)
		}
	}

	return bindFlags(cmd, v)
}

// bindFlags binds each cobra flag to its viper key, config file and environment variable
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "help" {
			return
		}
		// Environment variables can't have dashes, --lane-gap reads RACE_LANE_GAP
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", config.EnvPrefix, envVarSuffix)); err != nil {
				errs = append(errs, fmt.Errorf("bind env %s: %w", f.Name, err))
			}
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			errs = append(errs, fmt.Errorf("bind flag %s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

// runFromTerminal races on stdout sized to the controlling terminal
func runFromTerminal(ctx context.Context, cfg config.Config) error {
	logger, err := racelog.Init(cfg.Debug, cfg.LogDir)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sound := audio.NewSoundManager()
	if cfg.Sound {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, racing silently", zap.Error(err))
		}
		defer sound.Cleanup()
	}

	width, height := terminal.Size(os.Stdout)
	s := &session{
		cfg:    cfg,
		out:    os.Stdout,
		width:  width,
		height: height,
		logger: logger,
		sound:  sound,
	}
	return s.run(ctx)
}
