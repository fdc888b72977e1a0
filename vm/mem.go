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

package vm

// DefaultDenseSlack is the default number of cells past the end of the dense
// area that a write may land on and still grow the dense area instead of going
// to sparse storage.
const DefaultDenseSlack = 4096

// Memory is the VM memory: an unbounded, zero initialized array of cells
// addressed by non-negative integers.
//
// Cells near the program are kept in a slice. Writes far beyond its end go to
// a map, so a relative base set to some huge value does not allocate the whole
// range in between. Reads never allocate.
type Memory struct {
	dense  []Cell
	sparse map[Cell]Cell
	slack  Cell
	hwm    Cell
}

// NewMemory returns a new Memory initialized with a copy of prog.
func NewMemory(prog Program) *Memory {
	n := len(prog)
	m := &Memory{
		dense: make([]Cell, n, n+n/2+16),
		slack: DefaultDenseSlack,
		hwm:   Cell(n),
	}
	copy(m.dense, prog)
	return m
}

// Read returns the value at address addr. Addresses never written read as 0.
func (m *Memory) Read(addr Cell) (Cell, error) {
	if addr < 0 {
		return 0, addrError(addr)
	}
	return m.get(addr), nil
}

// Write sets the value at address addr.
func (m *Memory) Write(addr, v Cell) error {
	if addr < 0 {
		return addrError(addr)
	}
	m.set(addr, v)
	return nil
}

// Len returns the high-water mark: one past the highest address ever written,
// or the program length if larger.
func (m *Memory) Len() Cell {
	return m.hwm
}

// Snapshot returns a copy of the first n cells.
func (m *Memory) Snapshot(n int) []Cell {
	s := make([]Cell, n)
	k := copy(s, m.dense)
	if len(m.sparse) > 0 {
		for ; k < n; k++ {
			s[k] = m.sparse[Cell(k)]
		}
	}
	return s
}

func (m *Memory) clone() *Memory {
	c := &Memory{
		dense: make([]Cell, len(m.dense), cap(m.dense)),
		slack: m.slack,
		hwm:   m.hwm,
	}
	copy(c.dense, m.dense)
	if len(m.sparse) > 0 {
		c.sparse = make(map[Cell]Cell, len(m.sparse))
		for k, v := range m.sparse {
			c.sparse[k] = v
		}
	}
	return c
}

// get and set expect addr >= 0.

func (m *Memory) get(addr Cell) Cell {
	if addr < Cell(len(m.dense)) {
		return m.dense[addr]
	}
	return m.sparse[addr]
}

func (m *Memory) set(addr, v Cell) {
	l := Cell(len(m.dense))
	if addr >= m.hwm {
		m.hwm = addr + 1
	}
	switch {
	case addr < l:
		m.dense[addr] = v
	case addr-l <= m.slack:
		m.grow(addr + 1)
		m.dense[addr] = v
	default:
		if m.sparse == nil {
			m.sparse = make(map[Cell]Cell)
		}
		m.sparse[addr] = v
	}
}

// grow extends the dense area to at least n cells and migrates any sparse
// cells that now fall inside it.
func (m *Memory) grow(n Cell) {
	l := Cell(len(m.dense))
	if n <= Cell(cap(m.dense)) {
		m.dense = m.dense[:n]
	} else {
		c := 2 * Cell(cap(m.dense))
		if c < n {
			c = n
		}
		d := make([]Cell, n, c)
		copy(d, m.dense)
		m.dense = d
	}
	for k, v := range m.sparse {
		if k >= l && k < n {
			m.dense[k] = v
			delete(m.sparse, k)
		}
	}
}
