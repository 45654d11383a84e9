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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"ember/compile"
	"ember/rir"
)

// demoProgram builds a small hardcoded source tree (52 + -10, with a
// shadowed binding) so the CLI has something to compile without a
// front-end parser, which this system does not implement.
func demoProgram() *rir.Program {
	return &rir.Program{
		Body: rir.LetExpr("x", rir.Int(52),
			rir.LetExpr("x", rir.AddExpr(rir.VarExpr("x"), rir.NegExpr(rir.Int(10))),
				rir.VarExpr("x"))),
	}
}

func main() {
	prog := demoProgram()
	text := compile.Compile(prog)

	if len(os.Args) == 2 {
		out := os.Args[1]
		if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", out, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", filepath.Clean(out))
		return
	}

	fmt.Print(text)
}
