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

import (
	"github.com/pkg/errors"
)

// ErrInputExhausted is returned by RunAll when the program requests more
// input values than were supplied.
var ErrInputExhausted = errors.New("input exhausted")

// InHandler is the function prototype for input handlers. It is called by
// Drive whenever the instance needs input and must return the value to feed.
type InHandler func(i *Instance) (Cell, error)

// OutHandler is the function prototype for output handlers. It is called by
// Drive with every value produced by the instance.
type OutHandler func(i *Instance, v Cell) error

// Drive runs the instance until it halts and returns the content of address 0
// at halt time.
//
// The in handler is called each time the program needs input, and the out
// handler with each output value. Either may be nil: a nil in handler makes
// any input request fail with ErrInputExhausted, a nil out handler discards
// output. An error from a handler stops execution and is returned as is. The
// instance remains usable after a handler error.
func Drive(i *Instance, in InHandler, out OutHandler) (Cell, error) {
	for {
		sig, err := i.Run()
		if err != nil {
			return 0, err
		}
		switch sig.Status {
		case Halted:
			return sig.Value, nil
		case NeedsInput:
			if in == nil {
				return 0, errors.Wrapf(ErrInputExhausted, "@pc=%d", i.PC)
			}
			v, err := in(i)
			if err != nil {
				return 0, err
			}
			if err = i.SetInput(v); err != nil {
				return 0, err
			}
		case Output:
			if out == nil {
				continue
			}
			if err = out(i, sig.Value); err != nil {
				return 0, err
			}
		}
	}
}

// Values returns an InHandler that feeds the given values in order, then
// fails with ErrInputExhausted.
func Values(vs ...Cell) InHandler {
	return func(i *Instance) (Cell, error) {
		if len(vs) == 0 {
			return 0, errors.Wrapf(ErrInputExhausted, "@pc=%d", i.PC)
		}
		v := vs[0]
		vs = vs[1:]
		return v, nil
	}
}

// RunAll runs a fresh instance of prog to completion with the given inputs and
// returns all produced values.
func RunAll(prog Program, inputs ...Cell) ([]Cell, error) {
	i, err := New(prog)
	if err != nil {
		return nil, err
	}
	var out []Cell
	_, err = Drive(i, Values(inputs...), func(_ *Instance, v Cell) error {
		out = append(out, v)
		return nil
	})
	if err != nil {
		return out, err
	}
	return out, nil
}
