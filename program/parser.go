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

package program

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

// ErrParse is the error type returned by Parse. It holds the list of errors
// found in the input, in order of appearance.
type ErrParse []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrParse) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

type parser struct {
	s    scanner.Scanner
	prog vm.Program
	errs ErrParse
}

func (p *parser) error(pos scanner.Position, msg string) {
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, struct {
			Pos scanner.Position
			Msg string
		}{pos, msg})
	}
}

// value parses an integer literal. Without a 0x, 0o or 0b prefix, the literal
// is decimal, even with leading zeros.
func (p *parser) value(text string, neg bool) {
	base := 10
	if len(text) > 1 && text[0] == '0' && strings.ContainsRune("xXoObB", rune(text[1])) {
		base = 0
	}
	if neg {
		text = "-" + text
	}
	n, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		msg := err.Error()
		if ne, ok := err.(*strconv.NumError); ok {
			msg = ne.Err.Error()
		}
		p.error(p.s.Position, msg+": "+text)
		return
	}
	p.prog = append(p.prog, vm.Cell(n))
}

func (p *parser) token(tok rune) string {
	if tok == scanner.EOF {
		return "EOF"
	}
	return strconv.Quote(p.s.TokenText())
}

// skip skips tokens up to the next ',' and returns false at EOF.
func (p *parser) skip(tok rune) bool {
	for tok != ',' && tok != scanner.EOF {
		tok = p.s.Scan()
	}
	return tok != scanner.EOF
}

func (p *parser) parse(name string, r io.Reader) (vm.Program, error) {
	p.s.Init(r)
	p.s.Filename = name
	p.s.Mode = scanner.ScanInts | scanner.ScanComments | scanner.SkipComments
	p.s.Error = func(s *scanner.Scanner, msg string) {
		// leading zeros do not make an octal literal. Bad 0o literals are
		// caught by value.
		if strings.HasSuffix(msg, "in octal literal") {
			return
		}
		p.error(s.Position, msg)
	}

	var (
		expectValue = true
		signed      bool
		neg         bool
		signPos     scanner.Position
	)
	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		switch {
		case expectValue && !signed && (tok == '-' || tok == '+'):
			signed, neg = true, tok == '-'
			signPos = p.s.Position
		case expectValue && tok == scanner.Int:
			p.value(p.s.TokenText(), neg)
			expectValue, signed, neg = false, false, false
		case !expectValue && tok == ',':
			expectValue = true
		default:
			if expectValue {
				p.error(p.s.Position, "expected integer, got "+p.token(tok))
			} else {
				p.error(p.s.Position, "expected ',', got "+p.token(tok))
			}
			expectValue, signed, neg = true, false, false
			if !p.skip(tok) {
				return nil, p.errs
			}
		}
	}
	switch {
	case len(p.errs) > 0:
	case signed:
		p.error(signPos, "sign without value")
	case expectValue && len(p.prog) > 0:
		p.error(p.s.Pos(), "unexpected EOF after ','")
	case len(p.prog) == 0:
		p.error(p.s.Pos(), "empty program")
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.prog, nil
}

// Parse reads a program from r.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrParse value that
// will contain up to 10 entries.
func Parse(name string, r io.Reader) (vm.Program, error) {
	var p parser
	return p.parse(name, r)
}

// MustParse is like Parse for a program in a string, but panics on error.
func MustParse(s string) vm.Program {
	prog, err := Parse("<string>", strings.NewReader(s))
	if err != nil {
		panic(fmt.Sprintf("program.MustParse: %v", err))
	}
	return prog
}
