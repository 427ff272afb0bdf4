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
	"io"
	"math"

	"github.com/muesli/termenv"

	"laptudirm.com/x/rollout/pkg/batch"
	"laptudirm.com/x/rollout/pkg/stats"
)

// PrintReport writes the outcome counts of the report, one per line.
func PrintReport(w io.Writer, report *batch.Report) {
	fmt.Fprintf(w, "white: %d\n", report.WhiteWins)
	fmt.Fprintf(w, "black: %d\n", report.BlackWins)
	fmt.Fprintf(w, "draws: %d\n", report.Draws)
	fmt.Fprintf(w, "stale: %d\n", report.Stalemates)
}

// PrintStats writes the elo estimate of white's first move advantage and
// the game length summary of the report. Colors are only used if w is a
// terminal which supports them.
func PrintStats(w io.Writer, report *batch.Report) {
	output := termenv.NewOutput(w)
	label := func(text string) string {
		return output.String(fmt.Sprintf("%-8s", text)).Foreground(output.Color("3")).Bold().String()
	}

	total := report.Total()
	if total == 0 {
		fmt.Fprintln(w, label("games:"), 0)
		return
	}

	draws := report.Draws + report.Stalemates
	lower, elo, upper := stats.Elo(report.WhiteWins, draws, report.BlackWins)
	decisive := float64(report.WhiteWins+report.BlackWins) / float64(total)

	fmt.Fprintln(w, label("games:"), total)
	fmt.Fprintf(w, "%s %.2f%% decisive, white scores %.2f%%\n",
		label("results:"), 100*decisive,
		100*stats.Score(report.WhiteWins, draws, report.BlackWins))
	fmt.Fprintf(w, "%s %+.1f +/- %.1f\n",
		label("elo:"), elo, math.Abs(math.Max(upper-elo, elo-lower)))

	lengths := report.Lengths
	if lengths.Total() == 0 {
		return
	}

	fmt.Fprintf(w, "%s min %d, median %d, mean %.1f, p90 %d, max %d\n",
		label("length:"),
		lengths.Min(), lengths.Percentile(50), lengths.Mean(),
		lengths.Percentile(90), lengths.Max())
}
