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

package stats

import "sort"

// Lengths is a histogram of game lengths, mapping a length to the number of
// games with it. The zero value is an empty histogram ready for use.
type Lengths map[int]int

// Add records a game of the given length.
func (lengths *Lengths) Add(length int) {
	if *lengths == nil {
		*lengths = make(Lengths)
	}

	(*lengths)[length]++
}

// Merge adds all the games recorded in other to the histogram.
func (lengths *Lengths) Merge(other Lengths) {
	if len(other) == 0 {
		return
	}

	if *lengths == nil {
		*lengths = make(Lengths, len(other))
	}

	for length, count := range other {
		(*lengths)[length] += count
	}
}

// Total returns the number of games in the histogram.
func (lengths Lengths) Total() int {
	total := 0
	for _, count := range lengths {
		total += count
	}

	return total
}

// Mean returns the average game length, or 0 for an empty histogram.
func (lengths Lengths) Mean() float64 {
	total, sum := 0, 0
	for length, count := range lengths {
		total += count
		sum += length * count
	}

	if total == 0 {
		return 0
	}

	return float64(sum) / float64(total)
}

// Min returns the shortest recorded length.
func (lengths Lengths) Min() int {
	keys := lengths.sorted()
	if len(keys) == 0 {
		return 0
	}

	return keys[0]
}

// Max returns the longest recorded length.
func (lengths Lengths) Max() int {
	keys := lengths.sorted()
	if len(keys) == 0 {
		return 0
	}

	return keys[len(keys)-1]
}

// Percentile returns the smallest length such that at least p percent of
// the games are no longer than it. p is clamped to [0, 100].
func (lengths Lengths) Percentile(p float64) int {
	keys := lengths.sorted()
	if len(keys) == 0 {
		return 0
	}

	switch {
	case p < 0:
		p = 0
	case p > 100:
		p = 100
	}

	target := p / 100 * float64(lengths.Total())

	seen := 0
	for _, length := range keys {
		seen += lengths[length]
		if float64(seen) >= target {
			return length
		}
	}

	return keys[len(keys)-1]
}

// sorted returns the recorded lengths in increasing order.
func (lengths Lengths) sorted() []int {
	keys := make([]int, 0, len(lengths))
	for length := range lengths {
		keys = append(keys, length)
	}

	sort.Ints(keys)
	return keys
}
