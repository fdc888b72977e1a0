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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// values returns an input handler that feeds vs first, then defers to next.
func values(vs []vm.Cell, next vm.InHandler) vm.InHandler {
	return func(i *vm.Instance) (vm.Cell, error) {
		if len(vs) > 0 {
			v := vs[0]
			vs = vs[1:]
			return v, nil
		}
		if next == nil {
			return 0, errors.Wrapf(vm.ErrInputExhausted, "@pc=%d", i.PC)
		}
		return next(i)
	}
}

// readlineLines feeds the lines typed by the user as ASCII input.
func readlineLines(rl *readline.Instance) vm.InHandler {
	var buf []vm.Cell
	return func(i *vm.Instance) (vm.Cell, error) {
		for len(buf) == 0 {
			line, err := rl.Readline()
			if err != nil {
				if err == readline.ErrInterrupt {
					return 0, io.EOF
				}
				return 0, err
			}
			buf = ascii.Lines(line)
		}
		v := buf[0]
		buf = buf[1:]
		return v, nil
	}
}

// readlineValues prompts the user for one integer value at a time.
func readlineValues(rl *readline.Instance) vm.InHandler {
	return func(i *vm.Instance) (vm.Cell, error) {
		for {
			line, err := rl.Readline()
			if err != nil {
				if err == readline.ErrInterrupt {
					return 0, io.EOF
				}
				return 0, err
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			v, err := strconv.ParseInt(line, 0, 64)
			if err != nil {
				fmt.Fprintf(rl.Stderr(), "not a number: %q\n", line)
				continue
			}
			return vm.Cell(v), nil
		}
	}
}

// rawKeys feeds key presses read from a terminal in raw mode. Since the
// terminal does not echo nor handle CTRL-D in this mode, we do it here.
func rawKeys(r io.Reader, echo io.Writer) vm.InHandler {
	br := bufio.NewReader(r)
	f, _ := echo.(interface{ Flush() error })
	return func(i *vm.Instance) (vm.Cell, error) {
		c, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch c {
		case 4:
			return 0, io.EOF
		case '\r':
			c = '\n'
		}
		echo.Write([]byte{c})
		if f != nil {
			f.Flush()
		}
		return vm.Cell(c), nil
	}
}

// numbers writes every output value on a line of its own.
func numbers(w io.Writer) vm.OutHandler {
	return func(i *vm.Instance, v vm.Cell) error {
		_, err := fmt.Fprintln(w, v)
		return errors.Wrap(err, "output")
	}
}

// ioSetup holds the handlers used to run a program and what must be released
// once done.
type ioSetup struct {
	in       vm.InHandler
	out      vm.OutHandler
	stdout   *bufio.Writer
	tearDown []func()
}

func (s *ioSetup) close() {
	s.stdout.Flush()
	for k := len(s.tearDown) - 1; k >= 0; k-- {
		s.tearDown[k]()
	}
}

func newIOSetup(asciiMode, interactive, raw bool) (*ioSetup, error) {
	s := &ioSetup{stdout: bufio.NewWriter(os.Stdout)}
	var next vm.InHandler
	switch {
	case interactive:
		prompt := "input> "
		if asciiMode {
			prompt = "> "
		}
		rl, err := readline.New(prompt)
		if err != nil {
			return nil, errors.Wrap(err, "readline")
		}
		s.tearDown = append(s.tearDown, func() { rl.Close() })
		s.stdout = bufio.NewWriter(rl.Stdout())
		if asciiMode {
			next = readlineLines(rl)
		} else {
			next = readlineValues(rl)
		}
	case asciiMode && raw:
		restore, err := setRawIO()
		if err != nil {
			// not a tty
			next = ascii.Input(bufio.NewReader(os.Stdin))
			break
		}
		s.tearDown = append(s.tearDown, restore)
		next = rawKeys(os.Stdin, s.stdout)
	case asciiMode:
		next = ascii.Input(bufio.NewReader(os.Stdin))
	}
	s.in = traceIn(values(cells(inputs), next))
	if asciiMode {
		s.out = traceOut(ascii.Output(s.stdout))
	} else {
		s.out = traceOut(numbers(s.stdout))
	}
	return s, nil
}
