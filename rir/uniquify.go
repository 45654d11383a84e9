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

import "ember/internal/ember"

// uniquifier renames every let-bound variable to a fresh symbol so that no
// two bindings in the resulting tree share a name, resolving shadowing by
// lexical scope rather than by name.
type uniquifier struct {
	counter  *Counter
	symTable map[Symbol]Symbol
}

// Uniquify renames every bound variable in prog to a globally unique
// symbol, minting fresh names from counter.
func Uniquify(prog *Program, counter *Counter) *Program {
	u := &uniquifier{counter: counter, symTable: make(map[Symbol]Symbol)}
	return &Program{Body: u.fold(prog.Body)}
}

func (u *uniquifier) fold(e Expr) Expr {
	switch n := e.(type) {
	case *Read:
		return n
	case *IntLit:
		return n
	case *Neg:
		return &Neg{Operand: u.fold(n.Operand)}
	case *Add:
		return &Add{Left: u.fold(n.Left), Right: u.fold(n.Right)}
	case *Var:
		gen, ok := u.symTable[n.Name]
		if !ok {
			ember.Fatalf("undefined variable: %s", n.Name)
		}
		return &Var{Name: gen}
	case *Let:
		return u.foldLet(n)
	default:
		ember.ShouldNotReachHere()
		return nil
	}
}

func (u *uniquifier) foldLet(n *Let) Expr {
	// Fold the value expression in the outer scope, before the new
	// binding shadows anything — a `let x = x + 1 in ...` must see the
	// outer x.
	foldedVal := u.fold(n.Value)

	oldUnq, hadOld := u.symTable[n.Name]

	gen := u.counter.Fresh()
	u.symTable[n.Name] = gen

	foldedBody := u.fold(n.Body)

	if hadOld {
		u.symTable[n.Name] = oldUnq
	} else {
		delete(u.symTable, n.Name)
	}

	return &Let{Name: gen, Value: foldedVal, Body: foldedBody}
}
