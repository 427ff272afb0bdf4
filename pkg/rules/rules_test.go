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

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"laptudirm.com/x/rollout/pkg/rules"
)

func TestColor(t *testing.T) {
	require.Equal(t, rules.Black, rules.White.Other())
	require.Equal(t, rules.White, rules.Black.Other())
	require.Equal(t, "white", rules.White.String())
	require.Equal(t, "black", rules.Black.String())
}

func TestResults(t *testing.T) {
	require.Equal(t, rules.BlackCheckmates, rules.Checkmated(rules.White))
	require.Equal(t, rules.WhiteCheckmates, rules.Checkmated(rules.Black))
	require.Equal(t, rules.WhiteResigns, rules.Resigned(rules.White))
	require.Equal(t, rules.BlackResigns, rules.Resigned(rules.Black))
}

func TestStatus(t *testing.T) {
	require.False(t, rules.Ongoing.Concluded())
	require.True(t, rules.Stalemate.Concluded())
	require.True(t, rules.Checkmate.Concluded())
	require.True(t, rules.Drawn.Concluded())
}

func TestDrawBook(t *testing.T) {
	var book rules.DrawBook

	require.ErrorIs(t, book.Accept(), rules.ErrContract)
	require.False(t, book.Accepted())

	book.Offer(rules.White)
	book.Moved()
	require.ErrorIs(t, book.Accept(), rules.ErrContract)

	book.Offer(rules.Black)
	require.NoError(t, book.Accept())
	require.True(t, book.Accepted())
	require.Equal(t, 3, book.Actions())
}
