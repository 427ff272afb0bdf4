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

// Package rules defines the narrow interface through which the sampler
// talks to a chess rules engine. Everything about the board, move legality
// and draw bookkeeping lives behind it.
package rules

import "errors"

// ErrContract is wrapped by every error caused by a rules engine reporting a
// state inconsistent with this package's interface. Such errors are never
// recoverable.
var ErrContract = errors.New("rules engine contract violation")

// Engine is a factory for fresh games.
type Engine interface {
	// Name is the identifier the engine is registered with.
	Name() string

	// NewGame returns a game at the engine's starting position. Each call
	// returns an independent game which shares no mutable state with any
	// other game returned by the Engine.
	NewGame() Game
}

// Game is a single game's state along with the operations the sampler is
// allowed to perform on it.
type Game interface {
	// Moves returns the number of legal moves in the current position.
	Moves() int

	// MakeMove plays the index-th legal move, where index is in the range
	// [0, Moves()). An index outside that range is an error.
	MakeMove(index int) error

	// Status reports whether the game has concluded.
	Status() Status

	// Material returns the number of pieces, kings included, on the board.
	Material() int

	// Actions is the number of actions taken in the game so far. Moves,
	// draw offers and draw acceptances are all actions.
	Actions() int

	SideToMove() Color

	// OfferDraw registers a draw offer by the given side.
	OfferDraw(side Color)

	// AcceptDraw accepts the pending draw offer, ending the game. It is an
	// error to accept when no draw has been offered.
	AcceptDraw() error

	// Result returns the game's result, or false if it has not ended.
	Result() (Result, bool)
}

// Color represents the side playing a game.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opponent of the given side.
func (color Color) Other() Color {
	return color ^ 1
}

func (color Color) String() string {
	switch color {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "?"
	}
}

// Status is the on-board state of a game.
type Status uint8

const (
	Ongoing Status = iota
	Stalemate
	Checkmate

	// Drawn is reported once a draw offer has been accepted, and by
	// engines which adjudicate draws on their own, like on repetitions.
	Drawn
)

func (status Status) String() string {
	switch status {
	case Ongoing:
		return "ongoing"
	case Stalemate:
		return "stalemate"
	case Checkmate:
		return "checkmate"
	case Drawn:
		return "drawn"
	default:
		return "?"
	}
}

// Concluded reports whether the status means no more moves can be made.
func (status Status) Concluded() bool {
	return status != Ongoing
}

// Result is the way a game ended.
type Result uint8

const (
	WhiteCheckmates Result = iota
	WhiteResigns
	BlackCheckmates
	BlackResigns
	StalemateResult
	DrawAccepted
	DrawDeclared
)

// Checkmated returns the checkmate Result when the given side is mated.
func Checkmated(side Color) Result {
	if side == White {
		return BlackCheckmates
	}

	return WhiteCheckmates
}

// Resigned returns the resignation Result for the given side.
func Resigned(side Color) Result {
	if side == White {
		return WhiteResigns
	}

	return BlackResigns
}

func (result Result) String() string {
	switch result {
	case WhiteCheckmates:
		return "White Checkmates"
	case WhiteResigns:
		return "White Resigns"
	case BlackCheckmates:
		return "Black Checkmates"
	case BlackResigns:
		return "Black Resigns"
	case StalemateResult:
		return "Stalemate"
	case DrawAccepted:
		return "Draw Accepted"
	case DrawDeclared:
		return "Draw Declared"
	default:
		return "?"
	}
}
