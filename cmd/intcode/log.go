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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/db47h/intcode/vm"
)

// Verbose trace entries are formatted as K=V pairs, one entry per line.

var (
	logMu     sync.Mutex // protects logWriter
	logWriter io.Writer  = os.Stderr

	pairDelims = " ,;|&\t\n\r"
)

func formatValue(v interface{}) string {
	var s string
	switch v := v.(type) {
	case string:
		s = v
	case vm.Cell:
		return strconv.FormatInt(int64(v), 10)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case error:
		s = v.Error()
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	if s == "" || strings.ContainsAny(s, pairDelims+`="`) {
		return strconv.Quote(s)
	}
	return s
}

// logKV writes a log entry made of alternating keys and values if verbose
// logging is enabled.
func logKV(keyvals ...interface{}) {
	if !verbose {
		return
	}
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "", "log-error", "odd number of log params")
	}
	var b strings.Builder
	for k := 0; k < len(keyvals); k += 2 {
		if k > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprint(keyvals[k]))
		b.WriteByte('=')
		b.WriteString(formatValue(keyvals[k+1]))
	}
	b.WriteByte('\n')
	logMu.Lock()
	io.WriteString(logWriter, b.String())
	logMu.Unlock()
}

// traceIn wraps an input handler and logs the values it returns.
func traceIn(h vm.InHandler) vm.InHandler {
	if !verbose {
		return h
	}
	return func(i *vm.Instance) (vm.Cell, error) {
		v, err := h(i)
		if err != nil {
			logKV("event", "in", "pc", i.PC, "error", err)
			return v, err
		}
		logKV("event", "in", "pc", i.PC, "value", v)
		return v, nil
	}
}

// traceOut wraps an output handler and logs the values it receives.
func traceOut(h vm.OutHandler) vm.OutHandler {
	if !verbose {
		return h
	}
	return func(i *vm.Instance, v vm.Cell) error {
		logKV("event", "out", "pc", i.PC, "value", v)
		return h(i, v)
	}
}
