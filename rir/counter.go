// Copyright (c) 2024 The Ember Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package rir

import "fmt"

// DefaultCounterSeed is the conventional starting value for fresh-symbol
// counters threaded across the uniquify and arg-simplify passes.
const DefaultCounterSeed uint64 = 12345

// Counter mints fresh "vN" symbol names, shared by pointer across passes
// that need to keep minting from where the previous pass left off.
type Counter struct {
	next uint64
}

func NewCounter(seed uint64) *Counter {
	return &Counter{next: seed}
}

// Fresh returns a new unique symbol and advances the counter.
func (c *Counter) Fresh() Symbol {
	sym := NewSymbol(fmt.Sprintf("v%d", c.next))
	c.next++
	return sym
}

// Value reports the next value the counter will mint, useful for tests
// that assert on exact symbol numbering.
func (c *Counter) Value() uint64 { return c.next }
