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

import (
	"ember/internal/ember"
	"ember/rir"
)

// Explicate lowers a uniquified, arg-simplified rir.Program into a single
// CIR tail under the start label, flattening every nested let into a
// linear statement sequence.
func Explicate(prog *rir.Program) *Program {
	tail := foldRootExpr(prog.Body)
	return &Program{
		Info:  Info{},
		Tails: map[Label]Tail{StartLabel: tail},
	}
}

// foldArg converts an rir expression that arg-simplify has guaranteed to
// be atomic into a CIR Arg.
func foldArg(e rir.Expr) Arg {
	switch n := e.(type) {
	case *rir.IntLit:
		return &IntArg{Value: n.Value}
	case *rir.Var:
		return &VarArg{Name: n.Name}
	default:
		ember.Fatalf("arg-simplify pass should have converted all operands into vars or literals, got %T", e)
		return nil
	}
}

// prependExprToTail wraps a freshly built CIR expr either as the final
// return of a tail, or as an assignment statement prepended to tail.
func prependExprToTail(expr Expr, assignTo *Symbol, tail Tail) Tail {
	if assignTo == nil {
		return &Ret{Expr: expr}
	}
	return &Seq{Stmt: &Stmt{Name: *assignTo, Expr: expr}, Next: tail}
}

// foldLetAssign explicates the value expression of a let, which becomes
// the assignment to assignTo, continuing with the already-explicated
// tail for everything after this let.
func foldLetAssign(assignTo Symbol, expr rir.Expr, tail Tail) Tail {
	switch n := expr.(type) {
	case *rir.Read:
		return &Seq{Stmt: &Stmt{Name: assignTo, Expr: &ReadExpr{}}, Next: tail}
	case *rir.IntLit:
		return &Seq{Stmt: &Stmt{Name: assignTo, Expr: &ArgExpr{Arg: &IntArg{Value: n.Value}}}, Next: tail}
	case *rir.Neg:
		return &Seq{Stmt: &Stmt{Name: assignTo, Expr: &NegExpr{Arg: foldArg(n.Operand)}}, Next: tail}
	case *rir.Add:
		return &Seq{Stmt: &Stmt{Name: assignTo, Expr: &AddExpr{Left: foldArg(n.Left), Right: foldArg(n.Right)}}, Next: tail}
	case *rir.Var:
		return &Seq{Stmt: &Stmt{Name: assignTo, Expr: &ArgExpr{Arg: &VarArg{Name: n.Name}}}, Next: tail}
	case *rir.Let:
		tailWithParentAssign := foldLetBody(n.Body, &assignTo, tail)
		return foldLetAssign(n.Name, n.Value, tailWithParentAssign)
	default:
		ember.ShouldNotReachHere()
		return nil
	}
}

// foldLetBody explicates the body of a let (or the root expression),
// either returning its value directly (assignTo == nil) or assigning it
// before continuing into tail.
func foldLetBody(expr rir.Expr, assignTo *Symbol, tail Tail) Tail {
	switch n := expr.(type) {
	case *rir.Read:
		return prependExprToTail(&ReadExpr{}, assignTo, tail)
	case *rir.IntLit:
		return prependExprToTail(&ArgExpr{Arg: &IntArg{Value: n.Value}}, assignTo, tail)
	case *rir.Neg:
		return prependExprToTail(&NegExpr{Arg: foldArg(n.Operand)}, assignTo, tail)
	case *rir.Add:
		return prependExprToTail(&AddExpr{Left: foldArg(n.Left), Right: foldArg(n.Right)}, assignTo, tail)
	case *rir.Var:
		return prependExprToTail(&ArgExpr{Arg: &VarArg{Name: n.Name}}, assignTo, tail)
	case *rir.Let:
		nestedTail := foldLetBody(n.Body, assignTo, tail)
		return foldLetAssign(n.Name, n.Value, nestedTail)
	default:
		ember.ShouldNotReachHere()
		return nil
	}
}

func foldRootExpr(expr rir.Expr) Tail {
	switch n := expr.(type) {
	case *rir.Read:
		return &Ret{Expr: &ReadExpr{}}
	case *rir.IntLit:
		return &Ret{Expr: &ArgExpr{Arg: &IntArg{Value: n.Value}}}
	case *rir.Neg:
		return &Ret{Expr: &NegExpr{Arg: foldArg(n.Operand)}}
	case *rir.Add:
		return &Ret{Expr: &AddExpr{Left: foldArg(n.Left), Right: foldArg(n.Right)}}
	case *rir.Var:
		return &Ret{Expr: &ArgExpr{Arg: &VarArg{Name: n.Name}}}
	case *rir.Let:
		tail := foldLetBody(n.Body, nil, nil)
		return foldLetAssign(n.Name, n.Value, tail)
	default:
		ember.ShouldNotReachHere()
		return nil
	}
}
