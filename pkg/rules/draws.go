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

package rules

import "fmt"

// DrawBook keeps the draw offer bookkeeping for engines which have none of
// their own. The zero value is ready for use.
type DrawBook struct {
	offered  bool
	accepted bool

	actions int
}

// Offer records a draw offer. Either side may offer, and a later offer
// replaces an earlier one.
func (book *DrawBook) Offer(Color) {
	book.offered = true
	book.actions++
}

// Accept accepts the pending draw offer.
func (book *DrawBook) Accept() error {
	if !book.offered {
		return fmt.Errorf("accept draw: %w: no draw offered", ErrContract)
	}

	book.accepted = true
	book.actions++
	return nil
}

// Moved withdraws any pending offer, since an offer only stands until the
// next move is played.
func (book *DrawBook) Moved() {
	book.offered = false
}

// Accepted reports whether a draw offer has been accepted.
func (book *DrawBook) Accepted() bool {
	return book.accepted
}

// Actions is the number of draw related actions taken so far.
func (book *DrawBook) Actions() int {
	return book.actions
}
