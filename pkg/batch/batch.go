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

// Package batch runs a population of independent random trials across a
// pool of workers and reduces their outcomes into a single Report.
package batch

import (
	"context"
	"errors"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"laptudirm.com/x/rollout/pkg/rules"
	"laptudirm.com/x/rollout/pkg/trial"
)

// Config configures a batch of trials.
type Config struct {
	// Number of trials to run.
	Trials int

	// Number of workers running trials concurrently. The number of CPUs is
	// used if it is not positive.
	Workers int

	// The rules engine the trials are played with.
	Engine rules.Engine

	// The runner used to play each trial.
	Runner trial.Runner

	// Record the length of every trial in the report.
	Lengths bool

	// NewSource returns the random source for a single trial. A fresh
	// source is created for every trial, so it need not be safe for
	// concurrent use. frand is used if it is nil.
	NewSource func() trial.Source
}

// Run executes the batch described by config and returns its report. The
// first error returned by any trial stops the whole batch.
func Run(ctx context.Context, config Config) (Report, error) {
	if config.Trials < 0 {
		return Report{}, errors.New("run batch: negative trial count")
	}

	if config.Engine == nil {
		return Report{}, errors.New("run batch: no rules engine")
	}

	if config.NewSource == nil {
		config.NewSource = func() trial.Source { return frand.New() }
	}

	shares := Partition(config.Trials, config.Workers)
	tallies := make([]*Tally, len(shares))

	logrus.Debugf(
		"running %d trials on %d workers with the %s engine",
		config.Trials, len(shares), config.Engine.Name(),
	)

	group, ctx := errgroup.WithContext(ctx)
	for id, share := range shares {
		id, share := id, share
		tally := NewTally(config.Lengths)
		tallies[id] = tally

		group.Go(func() error {
			return worker(ctx, &config, id, share, tally)
		})
	}

	if err := group.Wait(); err != nil {
		return Report{}, err
	}

	total := NewTally(config.Lengths)
	for _, tally := range tallies {
		total.Merge(tally)
	}

	logrus.Debugf("finished %d trials", total.Total())
	return total.Report(), nil
}

// worker plays its share of the batch's trials, recording the results in
// its private tally.
func worker(ctx context.Context, config *Config, id, trials int, tally *Tally) error {
	logrus.Debugf("worker #%d: starting %d trials", id, trials)

	runner := config.Runner
	for i := 0; i < trials; i++ {
		// Stop early if another worker has failed.
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := runner.Run(config.Engine.NewGame(), config.NewSource())
		if err != nil {
			return err
		}

		logrus.Tracef("worker #%d: trial #%d: %s", id, i+1, result)
		tally.Add(result)
	}

	logrus.Debugf("worker #%d: finished %d trials", id, trials)
	return nil
}

// Partition splits the given number of trials into per-worker shares which
// differ by at most one. There are never more shares than trials, and
// workers defaults to the number of CPUs if it is not positive.
func Partition(trials, workers int) []int {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if workers > trials {
		workers = trials
	}

	shares := make([]int, workers)
	for i := range shares {
		shares[i] = trials / workers
		if i < trials%workers {
			shares[i]++
		}
	}

	return shares
}
