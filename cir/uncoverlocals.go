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

package cir

import "ember/internal/ember"

// UncoverLocals walks every tail in prog, collecting the set of symbols
// assigned anywhere in the program into prog.Info.Locals. Each symbol
// needs exactly one stack slot once assign-homes runs.
func UncoverLocals(prog *Program) *Program {
	locals := ember.NewSet[Symbol]()
	for _, tail := range prog.Tails {
		foldTail(tail, locals)
	}
	return &Program{
		Info:  Info{Locals: locals},
		Tails: prog.Tails,
	}
}

func foldTail(t Tail, locals *ember.Set[Symbol]) {
	switch n := t.(type) {
	case *Seq:
		locals.Add(n.Stmt.Name)
		foldTail(n.Next, locals)
	case *Ret:
		// A return introduces no new binding.
	default:
		ember.ShouldNotReachHere()
	}
}
