// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/rollout/pkg/batch"
	"laptudirm.com/x/rollout/pkg/config"
	"laptudirm.com/x/rollout/pkg/rules/engines"
	"laptudirm.com/x/rollout/pkg/trial"
)

// SPIN is the spinner character set shown while trials are running.
const SPIN = 14

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "rollout",
		Short: "Play a batch of random chess games and count their outcomes",
		Long: heredoc.Docf(`rollout plays a large batch of chess games where every move is
			picked uniformly at random from the legal moves, and reports how
			many of them were won by white, won by black, drawn, or ended in
			stalemate.

			A game is adjudicated as a draw once only the two kings are left
			on the board, or once it reaches the action cap. The defaults
			can be changed in $XDG_CONFIG_HOME/%s, and any
			value there can be overridden by the corresponding flag.

			Available engines: %s. The notnil engine is much slower
			than mess and is meant for small batches.`, config.File, strings.Join(engines.Names(), ", ")),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},

		RunE: run,
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Rollout's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	// batch flags
	root.Flags().IntP("trials", "n", config.DefaultTrials, "Number of games to play")
	root.Flags().IntP("workers", "j", 0, "Number of games played concurrently (default: number of CPUs)")
	root.Flags().StringP("engine", "e", engines.Default, "Rules engine to play the games with (notnil is slow, use it for small batches)")
	root.Flags().Int("max-actions", trial.DefaultMaxActions, "Number of actions after which a game is drawn")
	root.Flags().BoolP("stats", "s", false, "Show game length and elo statistics")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	return root
}

func run(cmd *cobra.Command, args []string) error {
	conf, err := config.Load()
	if err != nil {
		return err
	}

	if err := overrideConfig(cmd, &conf); err != nil {
		return err
	}

	engine, err := engines.Get(conf.Engine)
	if err != nil {
		return err
	}

	showStats, _ := cmd.Flags().GetBool("stats")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logrus.Infof("Playing %d games with the %s engine", conf.Trials, engine.Name())

	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Start() // Start the ~working~ spinner.

	start := time.Now()
	report, err := batch.Run(ctx, batch.Config{
		Trials:  conf.Trials,
		Workers: conf.Workers,
		Engine:  engine,
		Runner:  trial.Runner{MaxActions: conf.MaxActions},
		Lengths: showStats,
	})

	s.Stop() // Stop the ~working~ spinner.

	if err != nil {
		return err
	}

	logrus.Infof("Finished %d games in %s", report.Total(), time.Since(start).Round(time.Millisecond))

	PrintReport(cmd.OutOrStdout(), &report)
	if showStats {
		PrintStats(cmd.ErrOrStderr(), &report)
	}

	return nil
}

// overrideConfig replaces the values in conf with the flags which have been
// set explicitly on the command line.
func overrideConfig(cmd *cobra.Command, conf *config.Config) error {
	flags := cmd.Flags()

	var err error
	if flags.Changed("trials") {
		if conf.Trials, err = flags.GetInt("trials"); err != nil {
			return err
		}
	}

	if flags.Changed("workers") {
		if conf.Workers, err = flags.GetInt("workers"); err != nil {
			return err
		}
	}

	if flags.Changed("engine") {
		if conf.Engine, err = flags.GetString("engine"); err != nil {
			return err
		}
	}

	if flags.Changed("max-actions") {
		if conf.MaxActions, err = flags.GetInt("max-actions"); err != nil {
			return err
		}
	}

	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	return nil
}
