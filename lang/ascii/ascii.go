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

// Package ascii implements the ASCII convention used by text based Intcode
// programs: input is a stream of character codes with lines terminated by
// '\n' (10), and output values below 128 are character codes. Larger output
// values are plain numbers (e.g. a final score) and are reported as such.
package ascii

import (
	"bufio"
	"io"
	"strconv"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// MaxChar is the first value that is not an ASCII character.
const MaxChar = 128

// IsChar returns true if v is an ASCII character code.
func IsChar(v vm.Cell) bool {
	return v >= 0 && v < MaxChar
}

// Encode returns the character codes of s.
func Encode(s string) []vm.Cell {
	b := make([]vm.Cell, len(s))
	for i := 0; i < len(s); i++ {
		b[i] = vm.Cell(s[i])
	}
	return b
}

// Lines returns the character codes of the given lines, each terminated by
// '\n'.
func Lines(lines ...string) []vm.Cell {
	var b []vm.Cell
	for _, l := range lines {
		b = append(b, Encode(l)...)
		b = append(b, '\n')
	}
	return b
}

// Decode splits program output into text, made of the character codes, and
// the non character values in order of appearance.
func Decode(out []vm.Cell) (text string, values []vm.Cell) {
	s := make([]byte, 0, len(out))
	for _, v := range out {
		if IsChar(v) {
			s = append(s, byte(v))
		} else {
			values = append(values, v)
		}
	}
	return string(s), values
}

// newByteReader returns r if it implements io.ByteReader or wraps it into a
// bufio.Reader.
func newByteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// Input returns a vm.InHandler that feeds the bytes read from r. It returns
// io.EOF once r is exhausted.
func Input(r io.Reader) vm.InHandler {
	br := newByteReader(r)
	return func(i *vm.Instance) (vm.Cell, error) {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return 0, err
			}
			return 0, errors.Wrap(err, "ascii input")
		}
		return vm.Cell(c), nil
	}
}

type flusher interface {
	Flush() error
}

// Output returns a vm.OutHandler that writes character codes to w as is and
// any other value in decimal on a line of its own. If w has a Flush method,
// it is called after every '\n' and every number.
func Output(w io.Writer) vm.OutHandler {
	f, _ := w.(flusher)
	b := make([]byte, 0, 24)
	return func(i *vm.Instance, v vm.Cell) error {
		b = b[:0]
		if IsChar(v) {
			b = append(b, byte(v))
		} else {
			b = strconv.AppendInt(b, int64(v), 10)
			b = append(b, '\n')
		}
		if _, err := w.Write(b); err != nil {
			return errors.Wrap(err, "ascii output")
		}
		if f != nil && b[len(b)-1] == '\n' {
			return errors.Wrap(f.Flush(), "ascii output")
		}
		return nil
	}
}
