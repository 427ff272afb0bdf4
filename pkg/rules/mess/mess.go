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

// Package mess provides a rules engine backed by the board representation
// and move generator of laptudirm.com/x/mess.
package mess

import (
	"fmt"
	"strings"
	"unicode"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/board/move"
	"laptudirm.com/x/mess/pkg/board/piece"
	"laptudirm.com/x/mess/pkg/formats/fen"

	"laptudirm.com/x/rollout/pkg/rules"
)

// Name is the name the engine is registered with.
const Name = "mess"

// Engine creates mess backed games. The zero value starts every game from
// the standard starting position.
type Engine struct {
	// FEN is the starting position of new games, if set.
	FEN string
}

var _ rules.Engine = Engine{}

func (Engine) Name() string {
	return Name
}

func (engine Engine) NewGame() rules.Game {
	if engine.FEN == "" {
		return newGame(board.New(board.FEN(board.StartFEN)))
	}

	return NewFromFEN(engine.FEN)
}

// NewFromFEN returns a Game starting from the given position.
func NewFromFEN(fenstr string) *Game {
	return newGame(board.New(board.FEN(fen.FromString(fenstr))))
}

func newGame(chessboard *board.Board) *Game {
	return &Game{
		board: chessboard,
		moves: chessboard.GenerateMoves(false),
	}
}

// Game is a single game played on a mess board. It never adjudicates draws
// by itself, so a game is only drawn by an accepted draw offer.
type Game struct {
	board *board.Board
	moves []move.Move // legal moves in the current position

	plies int
	draws rules.DrawBook
}

var _ rules.Game = (*Game)(nil)

func (game *Game) Moves() int {
	return len(game.moves)
}

func (game *Game) MakeMove(index int) error {
	if game.draws.Accepted() {
		return fmt.Errorf("make move: %w: game already drawn", rules.ErrContract)
	}

	if index < 0 || index >= len(game.moves) {
		return fmt.Errorf("make move: %w: index %d out of %d moves", rules.ErrContract, index, len(game.moves))
	}

	game.board.MakeMove(game.moves[index])
	game.moves = game.board.GenerateMoves(false)

	game.plies++
	game.draws.Moved()
	return nil
}

func (game *Game) Status() rules.Status {
	switch {
	case game.draws.Accepted():
		return rules.Drawn
	case len(game.moves) > 0:
		return rules.Ongoing
	case game.board.IsInCheck(game.board.SideToMove):
		return rules.Checkmate
	default:
		return rules.Stalemate
	}
}

func (game *Game) Material() int {
	fields := [6]string(game.board.FEN())

	pieces := 0
	for _, char := range fields[0] {
		if unicode.IsLetter(char) {
			pieces++
		}
	}

	return pieces
}

func (game *Game) Actions() int {
	return game.plies + game.draws.Actions()
}

func (game *Game) SideToMove() rules.Color {
	if game.board.SideToMove == piece.White {
		return rules.White
	}

	return rules.Black
}

func (game *Game) OfferDraw(side rules.Color) {
	game.draws.Offer(side)
}

func (game *Game) AcceptDraw() error {
	return game.draws.Accept()
}

func (game *Game) Result() (rules.Result, bool) {
	if game.draws.Accepted() {
		return rules.DrawAccepted, true
	}

	switch game.Status() {
	case rules.Checkmate:
		return rules.Checkmated(game.SideToMove()), true
	case rules.Stalemate:
		return rules.StalemateResult, true
	}

	return 0, false
}

// FEN returns the FEN string of the current position.
func (game *Game) FEN() string {
	fields := [6]string(game.board.FEN())
	return strings.Join(fields[:], " ")
}
