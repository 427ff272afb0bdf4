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

package rulestest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"laptudirm.com/x/rollout/pkg/rules"
	"laptudirm.com/x/rollout/pkg/rules/rulestest"
)

func TestEngineCyclesScripts(t *testing.T) {
	engine := rulestest.NewEngine(rulestest.WhiteMates, rulestest.BareKings)

	for i := 0; i < 4; i++ {
		game := engine.NewGame()
		if i%2 == 0 {
			require.Equal(t, 32, game.Material())
		} else {
			require.Equal(t, 2, game.Material())
		}
	}
}

func TestEngineWithoutScripts(t *testing.T) {
	require.PanicsWithValue(t, "rulestest: engine needs at least one script", func() {
		rulestest.NewEngine()
	})

	require.PanicsWithValue(t, "rulestest: engine needs at least one script", func() {
		(&rulestest.Engine{}).NewGame()
	})
}

func TestGameEnds(t *testing.T) {
	game := rulestest.NewGame(rulestest.WhiteMates)
	for i := 0; i < 5; i++ {
		require.Equal(t, rules.Ongoing, game.Status())
		require.NoError(t, game.MakeMove(0))
	}

	require.Equal(t, rules.Checkmate, game.Status())
	require.Equal(t, 0, game.Moves())

	result, ok := game.Result()
	require.True(t, ok)
	require.Equal(t, rules.WhiteCheckmates, result)
}
