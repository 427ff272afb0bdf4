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

// Package notnil provides a rules engine backed by github.com/notnil/chess.
// Unlike mess, notnil adjudicates some draws on its own: fivefold
// repetition, the 75-move rule and insufficient material all end the game
// without a draw offer.
//
// Repetitions are detected by scanning the whole position history on every
// move, so a game costs time quadratic in its length. The engine is meant
// for small batches or a lowered action cap.
package notnil

import (
	"fmt"

	"github.com/notnil/chess"

	"laptudirm.com/x/rollout/pkg/rules"
)

// Name is the name the engine is registered with.
const Name = "notnil"

// Engine creates games starting from the standard starting position.
type Engine struct{}

var _ rules.Engine = Engine{}

func (Engine) Name() string {
	return Name
}

func (Engine) NewGame() rules.Game {
	return &Game{game: chess.NewGame()}
}

// NewFromFEN returns a Game starting from the given position.
func NewFromFEN(fenstr string) (*Game, error) {
	position, err := chess.FEN(fenstr)
	if err != nil {
		return nil, err
	}

	return &Game{game: chess.NewGame(position)}, nil
}

type Game struct {
	game  *chess.Game
	draws rules.DrawBook
}

var _ rules.Game = (*Game)(nil)

func (game *Game) Moves() int {
	if game.game.Outcome() != chess.NoOutcome {
		return 0
	}

	return len(game.game.ValidMoves())
}

func (game *Game) MakeMove(index int) error {
	if game.game.Outcome() != chess.NoOutcome {
		return fmt.Errorf("make move: %w: game already ended by %s", rules.ErrContract, game.game.Method())
	}

	moves := game.game.ValidMoves()
	if index < 0 || index >= len(moves) {
		return fmt.Errorf("make move: %w: index %d out of %d moves", rules.ErrContract, index, len(moves))
	}

	if err := game.game.Move(moves[index]); err != nil {
		return fmt.Errorf("make move: %w: %v", rules.ErrContract, err)
	}

	game.draws.Moved()
	return nil
}

func (game *Game) Status() rules.Status {
	if game.game.Outcome() == chess.NoOutcome {
		return rules.Ongoing
	}

	switch game.game.Method() {
	case chess.Checkmate:
		return rules.Checkmate
	case chess.Stalemate:
		return rules.Stalemate
	default:
		// Every other ending is some kind of draw, since resignations are
		// never made through the rules interface.
		return rules.Drawn
	}
}

func (game *Game) Material() int {
	return len(game.game.Position().Board().SquareMap())
}

func (game *Game) Actions() int {
	return len(game.game.Moves()) + game.draws.Actions()
}

func (game *Game) SideToMove() rules.Color {
	if game.game.Position().Turn() == chess.White {
		return rules.White
	}

	return rules.Black
}

func (game *Game) OfferDraw(side rules.Color) {
	game.draws.Offer(side)
}

func (game *Game) AcceptDraw() error {
	if err := game.draws.Accept(); err != nil {
		return err
	}

	if err := game.game.Draw(chess.DrawOffer); err != nil {
		return fmt.Errorf("accept draw: %w: %v", rules.ErrContract, err)
	}

	return nil
}

func (game *Game) Result() (rules.Result, bool) {
	switch game.game.Method() {
	case chess.NoMethod:
		return 0, false

	case chess.Checkmate:
		if game.game.Outcome() == chess.WhiteWon {
			return rules.WhiteCheckmates, true
		}
		return rules.BlackCheckmates, true

	case chess.Resignation:
		if game.game.Outcome() == chess.WhiteWon {
			return rules.BlackResigns, true
		}
		return rules.WhiteResigns, true

	case chess.Stalemate:
		return rules.StalemateResult, true

	case chess.DrawOffer:
		return rules.DrawAccepted, true

	default:
		return rules.DrawDeclared, true
	}
}

// FEN returns the FEN string of the current position.
func (game *Game) FEN() string {
	return game.game.Position().String()
}
