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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"laptudirm.com/x/rollout/pkg/config"
)

func writeFile(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestDefault(t *testing.T) {
	conf := config.Default()

	require.Equal(t, 240000, conf.Trials)
	require.Equal(t, 0, conf.Workers)
	require.Equal(t, "mess", conf.Engine)
	require.Equal(t, 1000, conf.MaxActions)
	require.NoError(t, conf.Validate())
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "trials: 500\nengine: notnil\n")

	conf, err := config.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, config.Config{
		Trials:     500,
		Workers:    0,
		Engine:     "notnil",
		MaxActions: 1000,
	}, conf)
}

func TestLoadFileErrors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":         "trials: [1, 2\n",
		"negative trials":  "trials: -5\n",
		"negative workers": "workers: -1\n",
		"zero max actions": "max-actions: 0\n",
		"unknown engine":   "engine: stockfish\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadFile(writeFile(t, data))
			require.Error(t, err)
		})
	}

	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
