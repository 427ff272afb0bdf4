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

package trial

import (
	"fmt"

	"laptudirm.com/x/rollout/pkg/rules"
)

// Outcome is the four-way classification of a finished trial.
type Outcome uint8

const (
	WhiteWin Outcome = iota
	BlackWin
	Draw
	Stalemate

	// OutcomeN is the number of valid Outcomes.
	OutcomeN = 4
)

// String returns a string representation of the given Outcome.
func (outcome Outcome) String() string {
	switch outcome {
	case WhiteWin:
		return "white"
	case BlackWin:
		return "black"
	case Draw:
		return "draw"
	case Stalemate:
		return "stalemate"
	default:
		return "?"
	}
}

// outcomes maps every rules.Result to its Outcome. A side resigning is a
// decisive result in favor of its opponent.
var outcomes = [...]Outcome{
	rules.WhiteCheckmates: WhiteWin,
	rules.BlackResigns:    WhiteWin,
	rules.BlackCheckmates: BlackWin,
	rules.WhiteResigns:    BlackWin,
	rules.StalemateResult: Stalemate,
	rules.DrawAccepted:    Draw,
	rules.DrawDeclared:    Draw,
}

// Classify collapses the result of a game into its Outcome.
func Classify(result rules.Result) (Outcome, error) {
	if int(result) >= len(outcomes) {
		return 0, fmt.Errorf("classify: %w: unknown result %d", rules.ErrContract, result)
	}

	return outcomes[result], nil
}
