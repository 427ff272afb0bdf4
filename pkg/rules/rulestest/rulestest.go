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

// Package rulestest provides scripted rules engines for testing code which
// plays games through the rules interface.
package rulestest

import (
	"fmt"
	"sync/atomic"

	"laptudirm.com/x/rollout/pkg/rules"
)

// Script describes how a stub game plays out. A game following a Script
// ends on the board with End once EndAt plies have been played, unless End
// is rules.Ongoing, in which case it never ends on its own.
type Script struct {
	Legal    int // number of legal moves in every position
	Material int // number of pieces on the board

	EndAt int
	End   rules.Status

	Black    bool // black moves first
	NoResult bool // never report a result
}

// Common scripts.
var (
	WhiteMates = Script{Legal: 20, Material: 32, EndAt: 5, End: rules.Checkmate}
	BlackMates = Script{Legal: 20, Material: 32, EndAt: 4, End: rules.Checkmate}
	Stalemates = Script{Legal: 20, Material: 32, EndAt: 8, End: rules.Stalemate}
	BareKings  = Script{Legal: 8, Material: 2}
	Endless    = Script{Legal: 20, Material: 32}
)

// Game is a game following a Script.
type Game struct {
	Script

	plies int
	draws rules.DrawBook
}

var _ rules.Game = (*Game)(nil)

// NewGame returns a new game which follows the given script.
func NewGame(script Script) *Game {
	return &Game{Script: script}
}

func (game *Game) Moves() int {
	if game.Status().Concluded() {
		return 0
	}

	return game.Legal
}

func (game *Game) MakeMove(index int) error {
	if index < 0 || index >= game.Moves() {
		return fmt.Errorf("make move: %w: index %d out of %d moves", rules.ErrContract, index, game.Moves())
	}

	game.plies++
	game.draws.Moved()
	return nil
}

func (game *Game) Status() rules.Status {
	if game.draws.Accepted() {
		return rules.Drawn
	}

	if game.End != rules.Ongoing && game.plies >= game.EndAt {
		return game.End
	}

	return rules.Ongoing
}

func (game *Game) Material() int {
	return game.Script.Material
}

func (game *Game) Actions() int {
	return game.plies + game.draws.Actions()
}

func (game *Game) SideToMove() rules.Color {
	side := rules.Color(game.plies % 2)
	if game.Black {
		return side.Other()
	}

	return side
}

func (game *Game) OfferDraw(side rules.Color) {
	game.draws.Offer(side)
}

func (game *Game) AcceptDraw() error {
	return game.draws.Accept()
}

func (game *Game) Result() (rules.Result, bool) {
	if game.NoResult {
		return 0, false
	}

	if game.draws.Accepted() {
		return rules.DrawAccepted, true
	}

	switch game.Status() {
	case rules.Checkmate:
		return rules.Checkmated(game.SideToMove()), true
	case rules.Stalemate:
		return rules.StalemateResult, true
	case rules.Drawn:
		return rules.DrawDeclared, true
	}

	return 0, false
}

// Engine hands out games following its Scripts in order, cycling back to
// the first one after the last. It is safe for concurrent use.
type Engine struct {
	Scripts []Script

	next atomic.Uint64
}

var _ rules.Engine = (*Engine)(nil)

// NewEngine returns an Engine cycling through the given scripts. At least
// one script is required.
func NewEngine(scripts ...Script) *Engine {
	if len(scripts) == 0 {
		panic("rulestest: engine needs at least one script")
	}

	return &Engine{Scripts: scripts}
}

func (*Engine) Name() string {
	return "stub"
}

func (engine *Engine) NewGame() rules.Game {
	if len(engine.Scripts) == 0 {
		panic("rulestest: engine needs at least one script")
	}

	index := engine.next.Add(1) - 1
	return NewGame(engine.Scripts[index%uint64(len(engine.Scripts))])
}
