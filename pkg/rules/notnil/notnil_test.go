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

package notnil

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/rollout/pkg/rules"
	"laptudirm.com/x/rollout/pkg/trial"
)

// play makes the given moves, in UCI notation, on the game.
func play(t *testing.T, game *Game, moves ...string) {
	t.Helper()

	for _, mov := range moves {
		index := -1
		for i, legal := range game.game.ValidMoves() {
			if legal.String() == mov {
				index = i
				break
			}
		}

		require.NotEqual(t, -1, index, "illegal move %s", mov)
		require.NoError(t, game.MakeMove(index))
	}
}

func TestStartPosition(t *testing.T) {
	game := Engine{}.NewGame()

	require.Equal(t, 20, game.Moves())
	require.Equal(t, 32, game.Material())
	require.Equal(t, 0, game.Actions())
	require.Equal(t, rules.White, game.SideToMove())
	require.Equal(t, rules.Ongoing, game.Status())

	_, ok := game.Result()
	require.False(t, ok)
}

func TestFoolsMate(t *testing.T) {
	game := Engine{}.NewGame().(*Game)
	play(t, game, "f2f3", "e7e5", "g2g4", "d8h4")

	require.Equal(t, rules.Checkmate, game.Status())
	require.Equal(t, 0, game.Moves())
	require.Equal(t, 4, game.Actions())

	result, ok := game.Result()
	require.True(t, ok)
	require.Equal(t, rules.BlackCheckmates, result)

	require.ErrorIs(t, game.MakeMove(0), rules.ErrContract)
}

func TestNewFromFEN(t *testing.T) {
	game, err := NewFromFEN("rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR w KQkq e6 0 2")
	require.NoError(t, err)
	require.Equal(t, 32, game.Material())
	require.Equal(t, rules.White, game.SideToMove())
	require.Contains(t, game.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR w")

	_, err = NewFromFEN("not a fen")
	require.Error(t, err)
}

func TestDraws(t *testing.T) {
	game := Engine{}.NewGame()

	require.ErrorIs(t, game.AcceptDraw(), rules.ErrContract)

	game.OfferDraw(rules.Black)
	require.NoError(t, game.AcceptDraw())
	require.Equal(t, 2, game.Actions())
	require.Equal(t, rules.Drawn, game.Status())

	result, ok := game.Result()
	require.True(t, ok)
	require.Equal(t, rules.DrawAccepted, result)
}

func TestResignation(t *testing.T) {
	game := Engine{}.NewGame().(*Game)
	game.game.Resign(chess.White)

	result, ok := game.Result()
	require.True(t, ok)
	require.Equal(t, rules.WhiteResigns, result)

	outcome, err := trial.Classify(result)
	require.NoError(t, err)
	require.Equal(t, trial.BlackWin, outcome)
}
