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

// Package engines resolves rules engines by name.
package engines

import (
	"fmt"
	"sort"

	"laptudirm.com/x/rollout/pkg/rules"
	"laptudirm.com/x/rollout/pkg/rules/mess"
	"laptudirm.com/x/rollout/pkg/rules/notnil"
)

// Default is the engine used when none is specified.
const Default = mess.Name

var registry = map[string]rules.Engine{
	mess.Name:   mess.Engine{},
	notnil.Name: notnil.Engine{},
}

// Get returns the engine registered with the given name. An empty name
// resolves to the Default engine.
func Get(name string) (rules.Engine, error) {
	if name == "" {
		name = Default
	}

	engine, found := registry[name]
	if !found {
		return nil, fmt.Errorf("get engine: unknown engine %q", name)
	}

	return engine, nil
}

// Names returns the names of all the registered engines in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
