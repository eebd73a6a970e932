// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/swarmlight/swarmlight/pkg/blinkt"
	"github.com/swarmlight/swarmlight/pkg/health"
	"github.com/swarmlight/swarmlight/pkg/monitor"
	"github.com/swarmlight/swarmlight/pkg/poller"
	"github.com/swarmlight/swarmlight/pkg/provider"
	"github.com/swarmlight/swarmlight/pkg/render"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		monitorName string
		delay       int
		pollTimeout time.Duration
		settle      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "swarmlight",
		Short: "Show container, node or service health on a Blinkt! strip",
		Long: `Swarmlight polls a Docker engine for the health of one resource
class and lights one pixel per resource on a Blinkt! indicator strip.
Without the hardware attached it still polls and logs, which is handy
for dry runs off the Pi.`,
		// We silence error reporting from Cobra here since the error is
		// printed once, with context, in main.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			class, err := monitor.ParseClass(viper.GetString("monitor"))
			if err != nil {
				return err
			}
			delay = viper.GetInt("delay")
			if delay <= 0 {
				return fmt.Errorf("delay must be a positive number of seconds, got %d", delay)
			}
			// Past this point errors are runtime failures, not usage
			// mistakes.
			cmd.SilenceUsage = true
			return run(cmd, class, delay, pollTimeout, settle)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&monitorName, "monitor", "m", string(monitor.Containers),
		"Resource class to monitor: containers, nodes or services.")
	flags.IntVarP(&delay, "delay", "d", 10,
		"Healthcheck delay in seconds.")
	flags.DurationVar(&pollTimeout, "poll-timeout", poller.DefaultPollTimeout,
		"Upper bound on one poll of the container engine.")
	flags.DurationVar(&settle, "settle", poller.DefaultSettleDelay,
		"How long to hold the startup color before the first poll.")
	addKlogFlags(flags)

	// Flags win over SWARMLIGHT_MONITOR / SWARMLIGHT_DELAY from the
	// environment.
	viper.SetEnvPrefix("SWARMLIGHT")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("monitor", flags.Lookup("monitor"))
	_ = viper.BindPFlag("delay", flags.Lookup("delay"))

	return cmd
}

func run(cmd *cobra.Command, class monitor.Class, delay int, pollTimeout, settle time.Duration) error {
	engine, err := provider.NewDockerProvider()
	if err != nil {
		return errors.WrapPrefix(err, "connecting to the container engine", 0)
	}

	renderer, err := render.New(blinkt.Detect(), health.DefaultPalette())
	if err != nil {
		return errors.WrapPrefix(err, "building renderer", 0)
	}

	runner := poller.NewRunner(monitor.New(engine), renderer, class, poller.Options{
		PollInterval: time.Duration(delay) * time.Second,
		PollTimeout:  pollTimeout,
		SettleDelay:  settle,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	klog.V(1).Infof("monitoring %s every %ds", class, delay)
	return runner.Run(ctx)
}

func addKlogFlags(flags *pflag.FlagSet) {
	fs := flag.NewFlagSet("klog", flag.PanicOnError)
	klog.InitFlags(fs)
	flags.AddGoFlagSet(fs)
}
