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

// Package ember holds the small assertion and error-construction helpers
// shared by every compiler pass.
package ember

import "github.com/pkg/errors"

// Assert panics with a stack-carrying error if cond is false.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(errors.Errorf(format, args...))
	}
}

// Fatalf reports an unrecoverable compiler error (malformed input,
// invariant violation) and panics with a stack-carrying error.
func Fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// ShouldNotReachHere marks a code path the exhaustive type switches in
// this compiler believe is unreachable given the closed IR node sets.
func ShouldNotReachHere() {
	panic(errors.New("should not reach here"))
}

// Align16 rounds n up to the next multiple of 16, matching the x86-64
// System V stack alignment requirement at a call boundary.
func Align16(n int64) int64 {
	return (n + 15) &^ 15
}
