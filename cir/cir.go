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

// Package cir defines the C-like intermediate representation produced by
// explicate-control: straight-line statement sequences ending in a
// single return, with every arithmetic operand reduced to an atom.
package cir

import (
	"fmt"

	"ember/internal/ember"
	"ember/rir"
)

// Symbol is a CIR variable name, carried over unchanged from rir.Symbol.
type Symbol = rir.Symbol

// Arg is an atomic CIR operand: an integer literal or a variable.
type Arg interface {
	isArg()
	String() string
}

type IntArg struct{ Value int64 }
type VarArg struct{ Name Symbol }

func (*IntArg) isArg() {}
func (*VarArg) isArg() {}

func (a *IntArg) String() string { return fmt.Sprintf("%d", a.Value) }
func (a *VarArg) String() string { return a.Name.Name }

// Expr is a CIR right-hand-side expression: read, a bare atom, negation,
// or addition of two atoms.
type Expr interface {
	isCExpr()
	String() string
}

type ReadExpr struct{}
type ArgExpr struct{ Arg Arg }
type NegExpr struct{ Arg Arg }
type AddExpr struct{ Left, Right Arg }

func (*ReadExpr) isCExpr() {}
func (*ArgExpr) isCExpr()  {}
func (*NegExpr) isCExpr()  {}
func (*AddExpr) isCExpr()  {}

func (e *ReadExpr) String() string { return "(read)" }
func (e *ArgExpr) String() string  { return e.Arg.String() }
func (e *NegExpr) String() string  { return fmt.Sprintf("(- %s)", e.Arg) }
func (e *AddExpr) String() string  { return fmt.Sprintf("(+ %s %s)", e.Left, e.Right) }

// Stmt is a CIR statement: assignment of an expression's value to a
// symbol.
type Stmt struct {
	Name Symbol
	Expr Expr
}

// Tail is a straight-line sequence of statements ending in a return.
type Tail interface {
	isTail()
	String() string
}

type Seq struct {
	Stmt *Stmt
	Next Tail
}

type Ret struct {
	Expr Expr
}

func (*Seq) isTail() {}
func (*Ret) isTail() {}

func (t *Seq) String() string {
	return fmt.Sprintf("%s = %s;\n%s", t.Stmt.Name, t.Stmt.Expr, t.Next)
}
func (t *Ret) String() string { return fmt.Sprintf("return %s;", t.Expr) }

// Label names a top-level tail definition.
type Label struct{ Name string }

// StartLabel is the single entry-point label explicate-control produces
// for this language's straight-line programs.
var StartLabel = Label{Name: "start"}

// Info carries whole-program facts computed by later passes (currently
// just the set of locally-assigned symbols, populated by uncover-locals).
type Info struct {
	Locals *ember.Set[Symbol]
}

// Program is a full CIR compilation unit: one tail per label, plus
// whole-program info.
type Program struct {
	Info  Info
	Tails map[Label]Tail
}
