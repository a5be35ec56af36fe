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
package lex

import (
	"slices"

	"github.com/consensys/go-bounds/pkg/util/source"
)

// Token associates a piece of information with a given range of characters in
// the string being scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule is simply a rule for associating groups of characters with a given
// tag.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a new lexing rule which maps matching characters to a given
// tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer tokenises a given input sequence.  Rules are tried in order, and the
// first which matches determines the next token.  Hence, longer operators must
// precede their prefixes.  Tokens of an ignored kind (e.g. whitespace) are
// consumed but never returned.  Lexing stops either after the end-of-input
// token, or at the first item which no rule matches.
type Lexer[T any] struct {
	items   []T
	index   int
	rules   []LexRule[T]
	// Kinds of token which are consumed silently.
	ignored []uint
	// Lookahead token (if any).
	next    *Token
	// Indicates whether the input has been exhausted.
	done    bool
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{items: input, rules: rules}
}

// Ignore configures this lexer to silently consume tokens of the given kinds.
func (p *Lexer[T]) Ignore(kinds ...uint) *Lexer[T] {
	p.ignored = append(p.ignored, kinds...)
	return p
}

// Index returns the current index within the items array.
func (p *Lexer[T]) Index() uint {
	return uint(p.index)
}

// Remaining determines how many items from the original sequence have not yet
// been consumed.
func (p *Lexer[T]) Remaining() uint {
	return uint(len(p.items) - p.index)
}

// Unmatched returns the span of the first item which no rule matched, or false
// if lexing has not become stuck.
func (p *Lexer[T]) Unmatched() (source.Span, bool) {
	if p.HasNext() || p.Remaining() == 0 {
		return source.Span{}, false
	}
	//
	return source.NewSpan(p.index, p.index+1), true
}

// HasNext checks whether or not there are any tokens remaining.
func (p *Lexer[T]) HasNext() bool {
	p.scan()
	return p.next != nil
}

// Next returns the next token and advances the lexer.
func (p *Lexer[T]) Next() Token {
	p.scan()
	//
	next := *p.next
	p.next = nil
	//
	return next
}

// Collect is a convenience function which lexes all remaining tokens in one
// go, producing an array of tokens.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	// Keep scanning
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

// Fill the lookahead, skipping over any ignored tokens.
func (p *Lexer[T]) scan() {
	for p.next == nil && !p.done {
		token, ok := p.match()
		//
		if !ok {
			return
		}
		// Matching at the end of input can only be the end-of-input rule.
		p.done = p.index == len(p.items)
		p.index = token.Span.End()
		//
		if !slices.Contains(p.ignored, token.Kind) {
			p.next = &token
		}
	}
}

// Find the first rule matching at the current position.
func (p *Lexer[T]) match() (Token, bool) {
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			//
			return Token{r.tag, source.NewSpan(p.index, end)}, true
		}
	}
	//
	return Token{}, false
}
