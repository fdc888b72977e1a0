// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pipeline

import (
	"github.com/db47h/intcode/vm"
)

// Permutations returns all orderings of vals. The result has len(vals)!
// entries, each a new slice.
func Permutations(vals []vm.Cell) [][]vm.Cell {
	a := append([]vm.Cell(nil), vals...)
	var res [][]vm.Cell
	// Heap's algorithm
	var gen func(k int)
	gen = func(k int) {
		if k <= 1 {
			res = append(res, append([]vm.Cell(nil), a...))
			return
		}
		gen(k - 1)
		for i := 0; i < k-1; i++ {
			if k%2 == 0 {
				a[i], a[k-1] = a[k-1], a[i]
			} else {
				a[0], a[k-1] = a[k-1], a[0]
			}
			gen(k - 1)
		}
	}
	gen(len(a))
	return res
}

// Max tries every ordering of the given phase settings and returns the highest
// result with the phases that produced it. The chain input is 0. If feedback
// is true, chains are run as feedback loops. Options are applied to every
// instance, as with New.
func Max(prog vm.Program, feedback bool, phases []vm.Cell, opts ...vm.Option) (best vm.Cell, bestPhases []vm.Cell, err error) {
	for k, p := range Permutations(phases) {
		insts, err := New(prog, p, opts...)
		if err != nil {
			return 0, nil, err
		}
		v, err := Drive(insts, 0, feedback)
		if err != nil {
			return 0, nil, err
		}
		if k == 0 || v > best {
			best, bestPhases = v, p
		}
	}
	return best, bestPhases, nil
}
