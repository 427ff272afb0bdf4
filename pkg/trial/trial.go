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

// Package trial plays single games of random chess. Every move is picked
// uniformly at random from the legal moves of the position, until the game
// ends on the board or is adjudicated as a draw.
package trial

import (
	"fmt"

	"laptudirm.com/x/rollout/pkg/rules"
)

// DefaultMaxActions is the number of actions after which a trial is drawn.
const DefaultMaxActions = 1000

// Source is a source of random move indices. Intn returns a number in the
// range [0, n). A Source is used by a single trial at a time.
type Source interface {
	Intn(n int) int
}

// Result is the classified result of a single trial.
type Result struct {
	Outcome Outcome

	// Plies is the number of actions in the game, including those for
	// an adjudicated draw.
	Plies int
}

func (result Result) String() string {
	return fmt.Sprintf("%s,%d", result.Outcome, result.Plies)
}

// Runner plays trials. The zero value is ready for use.
type Runner struct {
	// MaxActions is the number of actions after which an unfinished trial
	// is adjudicated as a draw. DefaultMaxActions is used if it is zero.
	MaxActions int
}

// Run creates a new game with the given engine and plays it out with a
// default Runner.
func Run(engine rules.Engine, rng Source) (Result, error) {
	var runner Runner
	return runner.Run(engine.NewGame(), rng)
}

// Run plays the given game to its end using rng to pick moves, and returns
// its classified result. The only errors returned are violations of the
// rules engine's contract.
func (runner *Runner) Run(game rules.Game, rng Source) (Result, error) {
	maxActions := runner.MaxActions
	if maxActions <= 0 {
		maxActions = DefaultMaxActions
	}

	for {
		moves := game.Moves()
		if game.Status().Concluded() {
			break
		}

		// Only the two kings are left on the board, or the game has gone
		// on for too long. Adjudicate the game as a draw.
		if game.Material() == 2 || game.Actions() >= maxActions {
			game.OfferDraw(game.SideToMove())
			if err := game.AcceptDraw(); err != nil {
				return Result{}, fmt.Errorf("trial: %w", err)
			}

			break
		}

		if moves == 0 {
			return Result{}, fmt.Errorf("trial: %w: no legal moves in an ongoing game", rules.ErrContract)
		}

		index := rng.Intn(moves)
		if index < 0 || index >= moves {
			return Result{}, fmt.Errorf("trial: %w: move index %d out of %d moves", rules.ErrContract, index, moves)
		}

		if err := game.MakeMove(index); err != nil {
			return Result{}, fmt.Errorf("trial: %w", err)
		}
	}

	result, ok := game.Result()
	if !ok {
		return Result{}, fmt.Errorf("trial: %w: no result for a finished game", rules.ErrContract)
	}

	outcome, err := Classify(result)
	if err != nil {
		return Result{}, fmt.Errorf("trial: %w", err)
	}

	return Result{
		Outcome: outcome,
		Plies:   game.Actions(),
	}, nil
}
