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

// argSimplifier rewrites every Neg/Add whose operand is not atomic into a
// fresh let-binding holding that operand's (recursively simplified)
// value, leaving only atomic operands in the arithmetic node itself.
type argSimplifier struct {
	counter *Counter
}

// SimplifyArgs lifts every non-atomic Neg/Add operand of prog's body into
// a fresh let-binding, minting fresh names from counter.
func SimplifyArgs(prog *Program, counter *Counter) *Program {
	s := &argSimplifier{counter: counter}
	return &Program{Body: s.fold(prog.Body)}
}

func (s *argSimplifier) fold(e Expr) Expr {
	switch n := e.(type) {
	case *Read:
		return n
	case *IntLit:
		return n
	case *Var:
		return n
	case *Neg:
		return s.foldNeg(n)
	case *Add:
		return s.foldAdd(n)
	case *Let:
		return &Let{Name: n.Name, Value: s.fold(n.Value), Body: s.fold(n.Body)}
	default:
		ember.ShouldNotReachHere()
		return nil
	}
}

func (s *argSimplifier) foldNeg(n *Neg) Expr {
	if !isComplex(n.Operand) {
		return &Neg{Operand: n.Operand}
	}
	name := s.counter.Fresh()
	folded := s.fold(n.Operand)
	return &Let{Name: name, Value: folded, Body: &Neg{Operand: &Var{Name: name}}}
}

func (s *argSimplifier) foldAdd(n *Add) Expr {
	leftComplex := isComplex(n.Left)
	rightComplex := isComplex(n.Right)

	switch {
	case leftComplex && rightComplex:
		name1 := s.counter.Fresh()
		folded1 := s.fold(n.Left)
		name2 := s.counter.Fresh()
		folded2 := s.fold(n.Right)
		return &Let{
			Name:  name1,
			Value: folded1,
			Body: &Let{
				Name:  name2,
				Value: folded2,
				Body:  &Add{Left: &Var{Name: name1}, Right: &Var{Name: name2}},
			},
		}
	case leftComplex:
		name := s.counter.Fresh()
		folded := s.fold(n.Left)
		return &Let{Name: name, Value: folded, Body: &Add{Left: &Var{Name: name}, Right: n.Right}}
	case rightComplex:
		name := s.counter.Fresh()
		folded := s.fold(n.Right)
		return &Let{Name: name, Value: folded, Body: &Add{Left: n.Left, Right: &Var{Name: name}}}
	default:
		return &Add{Left: n.Left, Right: n.Right}
	}
}

// isComplex reports whether e needs to be lifted into its own
// let-binding before it can appear as an operand of Neg/Add.
func isComplex(e Expr) bool {
	return !IsAtomic(e)
}
