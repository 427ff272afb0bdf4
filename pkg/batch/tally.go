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

package batch

import (
	"laptudirm.com/x/rollout/pkg/stats"
	"laptudirm.com/x/rollout/pkg/trial"
)

// Report is the aggregate of a batch of trials. The four outcome counters
// always sum up to the number of trials run.
type Report struct {
	WhiteWins  int
	BlackWins  int
	Draws      int
	Stalemates int

	// Lengths is the game length histogram. It is only filled in when the
	// batch was configured to record lengths.
	Lengths stats.Lengths
}

// Total returns the number of trials in the report.
func (report *Report) Total() int {
	return report.WhiteWins + report.BlackWins + report.Draws + report.Stalemates
}

// Tally accumulates trial results. A Tally is owned by a single worker and
// is never shared while trials are running.
type Tally struct {
	Counts [trial.OutcomeN]int

	lengths bool
	Lengths stats.Lengths
}

// NewTally returns an empty Tally which also records game lengths if the
// lengths argument is set.
func NewTally(lengths bool) *Tally {
	return &Tally{lengths: lengths}
}

// Add records the given trial result.
func (tally *Tally) Add(result trial.Result) {
	tally.Counts[result.Outcome]++
	if tally.lengths {
		tally.Lengths.Add(result.Plies)
	}
}

// Merge adds the results recorded in other to the tally.
func (tally *Tally) Merge(other *Tally) {
	for outcome, count := range other.Counts {
		tally.Counts[outcome] += count
	}

	tally.Lengths.Merge(other.Lengths)
}

// Total returns the number of results in the tally.
func (tally *Tally) Total() int {
	total := 0
	for _, count := range tally.Counts {
		total += count
	}

	return total
}

// Report converts the tally into a Report.
func (tally *Tally) Report() Report {
	return Report{
		WhiteWins:  tally.Counts[trial.WhiteWin],
		BlackWins:  tally.Counts[trial.BlackWin],
		Draws:      tally.Counts[trial.Draw],
		Stalemates: tally.Counts[trial.Stalemate],

		Lengths: tally.Lengths,
	}
}
