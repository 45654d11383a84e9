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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArgSimplifyAlreadySimplified(t *testing.T) {
	expr := LetExpr("foo",
		LetExpr("bar", Int(10), AddExpr(Int(20), VarExpr("bar"))),
		NegExpr(VarExpr("foo")))

	actual := SimplifyArgs(&Program{Body: expr}, NewCounter(200000))

	if diff := cmp.Diff(expr, actual.Body); diff != "" {
		t.Fatalf("arg-simplify mismatch (-want +got):\n%s", diff)
	}
}

func TestArgSimplifyNegArg(t *testing.T) {
	expr := NegExpr(ReadExpr())
	expected := LetExpr("v200000", ReadExpr(), NegExpr(VarExpr("v200000")))

	actual := SimplifyArgs(&Program{Body: expr}, NewCounter(200000))

	if diff := cmp.Diff(expected, actual.Body); diff != "" {
		t.Fatalf("arg-simplify mismatch (-want +got):\n%s", diff)
	}
}

func TestArgSimplifyAddArgs(t *testing.T) {
	expr := AddExpr(
		AddExpr(Int(1), Int(2)),
		AddExpr(
			AddExpr(Int(3), ReadExpr()),
			AddExpr(ReadExpr(), Int(4)),
		),
	)

	expected := LetExpr("v200000", AddExpr(Int(1), Int(2)),
		LetExpr("v200001",
			LetExpr("v200002",
				LetExpr("v200003", ReadExpr(), AddExpr(Int(3), VarExpr("v200003"))),
				LetExpr("v200004",
					LetExpr("v200005", ReadExpr(), AddExpr(VarExpr("v200005"), Int(4))),
					AddExpr(VarExpr("v200002"), VarExpr("v200004")))),
			AddExpr(VarExpr("v200000"), VarExpr("v200001"))))

	actual := SimplifyArgs(&Program{Body: expr}, NewCounter(200000))

	if diff := cmp.Diff(expected, actual.Body); diff != "" {
		t.Fatalf("arg-simplify mismatch (-want +got):\n%s", diff)
	}
}
