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

// Package ici - or intcode-internal with some commonly used stuff.
package ici

import (
	"io"
	"strconv"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// ErrWriter is a simple wrapper to track io errors. Write will keep returning
// the last error over and over.
type ErrWriter struct {
	w   io.Writer
	Err error
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// NewErrWriter returns a new ErrWriter. If w already is an *ErrWriter, it is
// returned as is.
func NewErrWriter(w io.Writer) *ErrWriter {
	if ew, ok := w.(*ErrWriter); ok {
		return ew
	}
	return &ErrWriter{w, nil}
}

// WriteCells writes cells to w as a comma separated list of decimal values
// with at most perLine values per line. A perLine <= 0 puts all values on a
// single line. The output always ends with a newline unless cells is empty.
func WriteCells(w io.Writer, cells []vm.Cell, perLine int) error {
	ew := NewErrWriter(w)
	b := make([]byte, 0, 32)
	for k, c := range cells {
		b = b[:0]
		if k > 0 {
			b = append(b, ',')
			if perLine > 0 && k%perLine == 0 {
				b = append(b, '\n')
			}
		}
		b = strconv.AppendInt(b, int64(c), 10)
		if _, err := ew.Write(b); err != nil {
			return err
		}
	}
	if len(cells) > 0 {
		ew.Write([]byte{'\n'})
	}
	return ew.Err
}
