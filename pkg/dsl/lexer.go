// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package dsl

import (
	"github.com/consensys/go-bounds/pkg/util/source"
	"github.com/consensys/go-bounds/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace (not including newlines)
const WHITESPACE uint = 1

// NEWLINE signals the end of a statement
const NEWLINE uint = 2

// COMMENT signals "# ... \n"
const COMMENT uint = 3

// LBRACE signals "("
const LBRACE uint = 4

// RBRACE signals ")"
const RBRACE uint = 5

// LSQUARE signals "["
const LSQUARE uint = 6

// RSQUARE signals "]"
const RSQUARE uint = 7

// COMMA signals ","
const COMMA uint = 8

// DOTDOT signals ".."
const DOTDOT uint = 9

// DOT signals "."
const DOT uint = 10

// NUMBER signals a decimal number
const NUMBER uint = 11

// IDENTIFIER signals a variable or function name
const IDENTIFIER uint = 20

// KEYWORD_FN signals a function declaration
const KEYWORD_FN uint = 21

// KEYWORD_INF signals infinity
const KEYWORD_INF uint = 22

// EQUALS signals "="
const EQUALS uint = 30

// EQUALS_EQUALS signals "=="
const EQUALS_EQUALS uint = 31

// NOT_EQUALS signals "!="
const NOT_EQUALS uint = 32

// LESS_THAN signals "<"
const LESS_THAN uint = 33

// LESS_THAN_EQUALS signals "<="
const LESS_THAN_EQUALS uint = 34

// GREATER_THAN signals ">"
const GREATER_THAN uint = 35

// GREATER_THAN_EQUALS signals ">="
const GREATER_THAN_EQUALS uint = 36

// ADD signals "+"
const ADD uint = 37

// SUB signals "-"
const SUB uint = 38

// MUL signals "*"
const MUL uint = 39

// DIV signals "/"
const DIV uint = 40

// BANG signals "!"
const BANG uint = 41

// QUESTION signals "?"
const QUESTION uint = 50

// QUESTION_STAR signals "?*"
const QUESTION_STAR uint = 51

// IF signals "??"
const IF uint = 52

// ELSE signals ">>"
const ELSE uint = 53

// END signals "--"
const END uint = 54

// RETURN signals "<-"
const RETURN uint = 55

// COMPARATORS captures the set of comparison operators.
var COMPARATORS = []uint{EQUALS_EQUALS, NOT_EQUALS, LESS_THAN, LESS_THAN_EQUALS, GREATER_THAN, GREATER_THAN_EQUALS}

// BINOPS captures the set of arithmetic operators.
var BINOPS = []uint{ADD, SUB, MUL, DIV}

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\r')))

// Rule for describing one or more digits
var digits lex.Scanner[rune] = lex.Followed(lex.Within('0', '9'), lex.Many(lex.Within('0', '9')))

var exponent lex.Scanner[rune] = lex.Or(
	lex.Sequence(lex.Or(lex.Unit('e'), lex.Unit('E')), lex.Or(lex.Unit('+'), lex.Unit('-')), digits),
	lex.Sequence(lex.Or(lex.Unit('e'), lex.Unit('E')), digits))

// Rule for describing numbers, such as "1", "0.25" or "1e-3".  Observe that
// "1..2" lexes as a number, a range separator and another number.
var number lex.Scanner[rune] = lex.Followed(digits, lex.Sequence(lex.Unit('.'), digits), exponent)

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner[rune] = lex.Followed(identifierStart, identifierRest)

// Comments start with '#' and continue until a newline or EOF.
var comment lex.Scanner[rune] = lex.Followed(lex.Unit('#'), lex.Until('\n'))

// lexing rules.  Observe that longer operators must precede their prefixes.
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(comment, COMMENT),
	lex.Rule(lex.Unit('\n'), NEWLINE),
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('['), LSQUARE),
	lex.Rule(lex.Unit(']'), RSQUARE),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit('.', '.'), DOTDOT),
	lex.Rule(lex.Unit('.'), DOT),
	lex.Rule(lex.Unit('?', '?'), IF),
	lex.Rule(lex.Unit('?', '*'), QUESTION_STAR),
	lex.Rule(lex.Unit('?'), QUESTION),
	lex.Rule(lex.Unit('>', '>'), ELSE),
	lex.Rule(lex.Unit('-', '-'), END),
	lex.Rule(lex.Unit('<', '-'), RETURN),
	lex.Rule(lex.Unit('=', '='), EQUALS_EQUALS),
	lex.Rule(lex.Unit('!', '='), NOT_EQUALS),
	lex.Rule(lex.Unit('<', '='), LESS_THAN_EQUALS),
	lex.Rule(lex.Unit('>', '='), GREATER_THAN_EQUALS),
	lex.Rule(lex.Unit('<'), LESS_THAN),
	lex.Rule(lex.Unit('>'), GREATER_THAN),
	lex.Rule(lex.Unit('='), EQUALS),
	lex.Rule(lex.Unit('!'), BANG),
	lex.Rule(lex.Unit('+'), ADD),
	lex.Rule(lex.Unit('-'), SUB),
	lex.Rule(lex.Unit('*'), MUL),
	lex.Rule(lex.Unit('/'), DIV),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(number, NUMBER),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// keywords maps reserved identifiers to their token kinds.
var keywords = map[string]uint{
	"fn":  KEYWORD_FN,
	"inf": KEYWORD_INF,
}

// Lex a given source file into a sequence of zero or more tokens.  Whitespace
// and comments are discarded, whilst newlines are retained since they separate
// statements.  An error is returned for any text which cannot be lexed.
func Lex(srcfile *source.File) ([]lex.Token, error) {
	var (
		lexer  = lex.NewLexer[rune](srcfile.Contents(), rules...).Ignore(WHITESPACE, COMMENT)
		tokens = lexer.Collect()
		lexed  = make([]lex.Token, 0, len(tokens))
	)
	// Check whether anything was left (if so this is an error)
	if span, ok := lexer.Unmatched(); ok {
		return nil, NewError(SYNTAX_ERROR, span, "unknown text encountered")
	}
	//
	for _, t := range tokens {
		switch {
		case t.Kind == IDENTIFIER:
			if kind, ok := keywords[srcfile.Text(t.Span)]; ok {
				t.Kind = kind
			}
		case t.Kind == RETURN && !atStatementStart(lexed):
			// "<-" only returns at the start of a statement, so "x<-1" is "x < -1"
			start := t.Span.Start()
			lexed = append(lexed, lex.Token{Kind: LESS_THAN, Span: source.NewSpan(start, start+1)})
			t = lex.Token{Kind: SUB, Span: source.NewSpan(start+1, t.Span.End())}
		}
		//
		lexed = append(lexed, t)
	}
	//
	return lexed, nil
}

func atStatementStart(tokens []lex.Token) bool {
	return len(tokens) == 0 || tokens[len(tokens)-1].Kind == NEWLINE
}
