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
	"math"
	"slices"
	"strconv"

	"github.com/consensys/go-bounds/pkg/bounds"
	"github.com/consensys/go-bounds/pkg/util/collection/stack"
	"github.com/consensys/go-bounds/pkg/util/source"
	"github.com/consensys/go-bounds/pkg/util/source/lex"
)

// Parse a given source file into a program.  The default inclusion determines
// whether the endpoints of a pair "a..b" are included or not.  Parsing stops at
// the first error encountered.
func Parse(srcfile *source.File, inclusive bool) (*Program, error) {
	tokens, err := Lex(srcfile)
	//
	if err != nil {
		return nil, err
	}
	//
	return NewParser(srcfile, tokens, inclusive).Parse()
}

// Parser is responsible for turning the tokens of a source file into a
// program.  Statements are separated by newlines, and blocks are checked for
// balance as they are parsed.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
	// Default inclusion for pairs "a..b"
	inclusive bool
	// Conditional blocks currently open
	blocks *stack.Stack[block]
}

// block records an open conditional block.
type block struct {
	span source.Span
	// Indicates whether ">>" has been seen for this block.
	otherwise bool
}

// operand represents one side of a condition.
type operand struct {
	variable string
	value    float64
}

// NewParser constructs a new parser for a given sequence of tokens.
func NewParser(srcfile *source.File, tokens []lex.Token, inclusive bool) *Parser {
	return &Parser{srcfile, tokens, 0, inclusive, stack.NewStack[block]()}
}

// Parse all statements from the token stream.
func (p *Parser) Parse() (*Program, error) {
	var statements []Statement
	//
	for p.skipNewlines(); p.lookahead().Kind != END_OF; p.skipNewlines() {
		stmt, err := p.parseStatement(false)
		//
		if err != nil {
			return nil, err
		}
		//
		statements = append(statements, stmt)
	}
	// Check all blocks closed
	if !p.blocks.IsEmpty() {
		return nil, NewError(UNBALANCED_BLOCK, p.blocks.Top().span, "missing \"--\"")
	}
	//
	return &Program{statements}, nil
}

func (p *Parser) parseStatement(inFunction bool) (Statement, error) {
	var (
		start     = p.index
		lookahead = p.lookahead()
	)
	//
	switch lookahead.Kind {
	case IF:
		return p.parseIf()
	case ELSE:
		p.index++
		//
		if p.blocks.IsEmpty() {
			return nil, NewError(UNBALANCED_BLOCK, lookahead.Span, "\">>\" without \"??\"")
		} else if top := p.blocks.Top(); top.otherwise {
			return nil, NewError(UNBALANCED_BLOCK, lookahead.Span, "duplicate \">>\"")
		} else {
			p.blocks.Replace(block{top.span, true})
		}
		//
		return &Else{lookahead.Span}, p.endOfStatement(SYNTAX_ERROR)
	case END:
		p.index++
		//
		if p.blocks.IsEmpty() {
			return nil, NewError(UNBALANCED_BLOCK, lookahead.Span, "\"--\" without \"??\"")
		}
		//
		p.blocks.Pop()
		//
		return &End{lookahead.Span}, p.endOfStatement(SYNTAX_ERROR)
	case QUESTION, QUESTION_STAR:
		p.index++
		return &Dump{lookahead.Kind == QUESTION, lookahead.Span}, p.endOfStatement(SYNTAX_ERROR)
	case KEYWORD_FN:
		if inFunction {
			return nil, NewError(NESTED_FUNCTION, lookahead.Span, "nested function definition")
		} else if !p.blocks.IsEmpty() {
			return nil, NewError(UNBALANCED_BLOCK, lookahead.Span, "function definition within \"??\"")
		}
		//
		return p.parseFunction()
	case RETURN:
		return nil, NewError(UNBALANCED_BLOCK, lookahead.Span, "\"<-\" outside of function")
	case IDENTIFIER:
		return p.parseVariableStatement(start)
	}
	//
	return nil, NewError(SYNTAX_ERROR, lookahead.Span, "unknown statement")
}

// Parse a statement beginning with a variable name, such as "x = 1", "x! =
// 1", "x.", "x?" or "v[4] = 1".
func (p *Parser) parseVariableStatement(start int) (Statement, error) {
	var (
		name = p.string(p.tokens[start])
		size = uint(1)
		expr Expr
		err  error
	)
	//
	p.index++
	//
	switch p.lookahead().Kind {
	case QUESTION:
		p.index++
		return &Query{name, p.spanOf(start, p.index-1)}, p.endOfStatement(SYNTAX_ERROR)
	case DOT:
		p.index++
		return &Finalise{name, p.spanOf(start, p.index-1)}, p.endOfStatement(SYNTAX_ERROR)
	case BANG:
		p.index++
		//
		if _, err := p.expect(EQUALS); err != nil {
			return nil, err
		}
		//
		fallthrough
	case NOT_EQUALS:
		// "x!= e" lexes as a single "!=", hence is treated as "x! = e".
		p.match(NOT_EQUALS)
		//
		if expr, err = p.parseExpr(); err != nil {
			return nil, err
		}
		//
		return &Rebind{name, expr, p.spanOf(start, p.index-1)}, p.endOfStatement(MALFORMED_EXPRESSION)
	case LSQUARE:
		if size, err = p.parseSize(); err != nil {
			return nil, err
		}
	}
	//
	if _, err := p.expect(EQUALS); err != nil {
		return nil, err
	} else if expr, err = p.parseExpr(); err != nil {
		return nil, err
	}
	//
	return &Declaration{name, size, expr, p.spanOf(start, p.index-1)}, p.endOfStatement(MALFORMED_EXPRESSION)
}

// Parse an array width "[n]" where n is a positive integer.
func (p *Parser) parseSize() (uint, error) {
	p.index++
	//
	token, err := p.expect(NUMBER)
	//
	if err != nil {
		return 0, err
	}
	//
	size, perr := strconv.ParseUint(p.string(token), 10, 32)
	//
	if perr != nil || size == 0 {
		return 0, NewError(SYNTAX_ERROR, token.Span, "invalid array size")
	} else if _, err := p.expect(RSQUARE); err != nil {
		return 0, err
	}
	//
	return uint(size), nil
}

func (p *Parser) parseIf() (Statement, error) {
	var start = p.index
	// Skip "??"
	p.index++
	//
	cond, err := p.parseCondition(start)
	//
	if err != nil {
		return nil, err
	}
	//
	span := p.spanOf(start, p.index-1)
	p.blocks.Push(block{span, false})
	//
	return &If{cond, span}, p.endOfStatement(MALFORMED_CONDITION)
}

// Parse a condition which is either "var OP number" or "number OP var".  The
// shape of the condition is checked before the operator, such that "x != 1"
// signals an unsupported operator whilst "x != 1 2" signals a malformed
// condition.
func (p *Parser) parseCondition(start int) (Condition, error) {
	var (
		first = p.index
		ok    bool
		lhs   operand
		rhs   operand
		cmp   lex.Token
	)
	// Determine extent of condition
	for !p.follows(NEWLINE, END_OF) {
		p.index++
	}
	//
	tokens := p.tokens[first:p.index]
	span := p.spanOf(start, max(start, p.index-1))
	malformed := NewError(MALFORMED_CONDITION, span, "malformed condition (expected \"var OP number\")")
	//
	if lhs, tokens, ok = p.conditionOperand(tokens); !ok {
		return Condition{}, malformed
	} else if len(tokens) == 0 || !slices.Contains(COMPARATORS, tokens[0].Kind) {
		return Condition{}, malformed
	}
	//
	cmp, tokens = tokens[0], tokens[1:]
	//
	if rhs, tokens, ok = p.conditionOperand(tokens); !ok || len(tokens) != 0 {
		return Condition{}, malformed
	} else if cmp.Kind == NOT_EQUALS {
		return Condition{}, NewError(UNSUPPORTED_OPERATOR, cmp.Span, "unsupported operator \"!=\"")
	} else if lhs.variable != "" && rhs.variable != "" {
		return Condition{}, NewError(UNSUPPORTED_OPERATOR, span, "unsupported comparison of two variables")
	} else if lhs.variable == "" && rhs.variable == "" {
		return Condition{}, NewError(MALFORMED_CONDITION, span, "condition must reference a variable")
	}
	//
	op := comparisonOf(cmp.Kind)
	//
	if lhs.variable == "" {
		return NewCondition(rhs.variable, op.Flip(), lhs.value, span), nil
	}
	//
	return NewCondition(lhs.variable, op, rhs.value, span), nil
}

// Parse one side of a condition, which is either a variable or a (possibly
// negated) number.
func (p *Parser) conditionOperand(tokens []lex.Token) (operand, []lex.Token, bool) {
	var negated bool
	//
	if len(tokens) > 0 && tokens[0].Kind == IDENTIFIER {
		return operand{p.string(tokens[0]), 0}, tokens[1:], true
	} else if len(tokens) > 0 && tokens[0].Kind == SUB {
		negated, tokens = true, tokens[1:]
	}
	//
	if len(tokens) == 0 || tokens[0].Kind != NUMBER {
		return operand{}, nil, false
	}
	//
	value, err := strconv.ParseFloat(p.string(tokens[0]), 64)
	//
	if err != nil {
		return operand{}, nil, false
	} else if negated {
		value = -value
	}
	//
	return operand{"", value}, tokens[1:], true
}

// Parse a function definition "fn name(params)", followed by its body and
// terminated by "<- expr".
func (p *Parser) parseFunction() (Statement, error) {
	var (
		start  = p.index
		outer  = p.blocks
		params []string
		body   []Statement
	)
	// Skip "fn"
	p.index++
	//
	name, err := p.expect(IDENTIFIER)
	//
	if err != nil {
		return nil, err
	} else if params, err = p.parseParams(); err != nil {
		return nil, err
	} else if err = p.endOfStatement(SYNTAX_ERROR); err != nil {
		return nil, err
	}
	// Function bodies have their own blocks
	p.blocks = stack.NewStack[block]()
	defer func() { p.blocks = outer }()
	//
	for p.skipNewlines(); p.lookahead().Kind != RETURN; p.skipNewlines() {
		if p.lookahead().Kind == END_OF {
			return nil, NewError(UNBALANCED_BLOCK, p.spanOf(start, start+1),
				"function \"%s\" missing \"<-\"", p.string(name))
		}
		//
		stmt, err := p.parseStatement(true)
		//
		if err != nil {
			return nil, err
		}
		//
		body = append(body, stmt)
	}
	//
	if !p.blocks.IsEmpty() {
		return nil, NewError(UNBALANCED_BLOCK, p.blocks.Top().span, "missing \"--\"")
	}
	// Skip "<-"
	p.index++
	//
	ret, err := p.parseExpr()
	//
	if err != nil {
		return nil, err
	}
	//
	span := p.spanOf(start, p.index-1)
	//
	return &FunctionDef{p.string(name), params, body, ret, span}, p.endOfStatement(MALFORMED_EXPRESSION)
}

// Parse a parameter list "(a, b, ...)".
func (p *Parser) parseParams() ([]string, error) {
	var params []string
	//
	if _, err := p.expect(LBRACE); err != nil {
		return nil, err
	}
	//
	for i := 0; !p.match(RBRACE); i++ {
		if i != 0 {
			if _, err := p.expect(COMMA); err != nil {
				return nil, err
			}
		}
		//
		param, err := p.expect(IDENTIFIER)
		//
		if err != nil {
			return nil, err
		} else if slices.Contains(params, p.string(param)) {
			return nil, NewError(REDECLARATION, param.Span, "duplicate parameter \"%s\"", p.string(param))
		}
		//
		params = append(params, p.string(param))
	}
	//
	return params, nil
}

// ============================================================================
// Expressions
// ============================================================================

// Parse an expression "operand (op operand)*".
func (p *Parser) parseExpr() (Expr, error) {
	var (
		start     = p.index
		operators []bounds.Operator
	)
	//
	operand, err := p.parseOperand()
	//
	if err != nil {
		return nil, err
	}
	//
	operands := []Expr{operand}
	//
	for p.follows(BINOPS...) {
		operators = append(operators, operatorOf(p.lookahead().Kind))
		p.index++
		//
		if operand, err = p.parseOperand(); err != nil {
			return nil, err
		}
		//
		operands = append(operands, operand)
	}
	//
	if len(operands) == 1 {
		return operand, nil
	}
	//
	return &Arith{operands, operators, p.spanOf(start, p.index-1)}, nil
}

func (p *Parser) parseOperand() (Expr, error) {
	var lookahead = p.lookahead()
	//
	switch lookahead.Kind {
	case IDENTIFIER:
		if p.index+1 < len(p.tokens) && p.tokens[p.index+1].Kind == LBRACE {
			return p.parseCall()
		}
		//
		p.index++
		//
		return NewVarRef(p.string(lookahead), lookahead.Span), nil
	case NUMBER, SUB, KEYWORD_INF, LSQUARE, LBRACE:
		return p.parseLiteral()
	case NEWLINE, END_OF:
		return nil, NewError(MALFORMED_EXPRESSION, lookahead.Span, "missing operand")
	}
	//
	return nil, NewError(MALFORMED_EXPRESSION, lookahead.Span, "expected operand")
}

// Parse a function call "name(arg, ...)".
func (p *Parser) parseCall() (Expr, error) {
	var (
		start = p.index
		name  = p.string(p.lookahead())
		args  []Expr
	)
	// Skip name and "("
	p.index += 2
	//
	for i := 0; !p.match(RBRACE); i++ {
		if i != 0 {
			if _, err := p.expect(COMMA); err != nil {
				return nil, err
			}
		}
		//
		arg, err := p.parseExpr()
		//
		if err != nil {
			return nil, err
		}
		//
		args = append(args, arg)
	}
	//
	return &Call{name, args, p.spanOf(start, p.index-1)}, nil
}

// Parse a literal, which is the union of one or more intervals separated by
// "U".
func (p *Parser) parseLiteral() (Expr, error) {
	var (
		start     = p.index
		intervals []bounds.Interval
	)
	//
	for {
		ith, err := p.parseInterval()
		//
		if err != nil {
			return nil, err
		}
		//
		intervals = append(intervals, ith)
		//
		if p.lookahead().Kind != IDENTIFIER || p.string(p.lookahead()) != "U" {
			break
		}
		//
		p.index++
	}
	// Cannot be empty, since at least one interval was parsed.
	value, _ := bounds.FromList(intervals...)
	//
	return NewLiteral(value, p.spanOf(start, p.index-1)), nil
}

// Parse a single interval, which is either a number "n", a pair "a..b" or a
// range such as "[a, b)".
func (p *Parser) parseInterval() (bounds.Interval, error) {
	var start = p.index
	//
	if p.follows(LSQUARE, LBRACE) {
		return p.parseRange()
	}
	//
	low, err := p.parseValue()
	//
	if err != nil {
		return bounds.Interval{}, err
	} else if !p.match(DOTDOT) {
		if math.IsInf(low, 0) {
			return bounds.Interval{}, NewError(INVALID_BOUNDS, p.spanOf(start, p.index-1), "infinite value")
		}
		//
		return bounds.ClosedInterval(low, low), nil
	}
	//
	high, err := p.parseValue()
	//
	if err != nil {
		return bounds.Interval{}, err
	}
	//
	return p.interval(low, p.inclusive, high, p.inclusive, p.spanOf(start, p.index-1))
}

// Parse a range "[a, b]", where either bracket may be open.
func (p *Parser) parseRange() (bounds.Interval, error) {
	var (
		start = p.index
		open  = p.lookahead().Kind == LBRACE
	)
	// Skip bracket
	p.index++
	//
	low, err := p.parseValue()
	if err != nil {
		return bounds.Interval{}, err
	} else if _, err = p.expect(COMMA); err != nil {
		return bounds.Interval{}, err
	}
	//
	high, err := p.parseValue()
	if err != nil {
		return bounds.Interval{}, err
	}
	//
	closing := p.lookahead()
	//
	if closing.Kind != RSQUARE && closing.Kind != RBRACE {
		return bounds.Interval{}, NewError(SYNTAX_ERROR, closing.Span, "expected \"]\" or \")\"")
	}
	//
	p.index++
	//
	return p.interval(low, !open, high, closing.Kind == RSQUARE, p.spanOf(start, p.index-1))
}

// Parse a (possibly negated) number or "inf".
func (p *Parser) parseValue() (float64, error) {
	var (
		negated = p.match(SUB)
		token   = p.lookahead()
		value   float64
	)
	//
	switch token.Kind {
	case KEYWORD_INF:
		value = math.Inf(1)
	case NUMBER:
		v, err := strconv.ParseFloat(p.string(token), 64)
		//
		if err != nil {
			return 0, NewError(SYNTAX_ERROR, token.Span, "number out of range")
		}
		//
		value = v
	default:
		return 0, NewError(MALFORMED_EXPRESSION, token.Span, "expected number")
	}
	//
	p.index++
	//
	if negated {
		return -value, nil
	}
	//
	return value, nil
}

// Construct an interval from its endpoints, where infinite values are
// unbounded.
func (p *Parser) interval(low float64, lowIncluded bool, high float64, highIncluded bool,
	span source.Span) (bounds.Interval, error) {
	//
	if low > high || math.IsInf(low, 1) || math.IsInf(high, -1) {
		return bounds.Interval{}, NewError(INVALID_BOUNDS, span, "invalid bounds (lower %s exceeds upper %s)",
			formatValue(low), formatValue(high))
	} else if !math.IsInf(low, 0) && !math.IsInf(high, 0) && lowIncluded == highIncluded {
		b, err := bounds.FromPairs(lowIncluded, [2]float64{low, high})
		//
		if err != nil {
			return bounds.Interval{}, NewError(INVALID_BOUNDS, span, "%s", err.Error())
		}
		//
		return b.Interval(0), nil
	}
	//
	ith, ok := bounds.NewInterval(endpoint(low, lowIncluded), endpoint(high, highIncluded))
	//
	if !ok {
		return bounds.Interval{}, NewError(INVALID_BOUNDS, span, "%s", bounds.ErrEmptyBounds.Error())
	}
	//
	return ith, nil
}

func endpoint(value float64, included bool) bounds.Endpoint {
	if math.IsInf(value, 0) {
		return bounds.Unbounded()
	}
	//
	return bounds.At(bounds.Point{Value: value, Included: included})
}

func formatValue(value float64) string {
	switch {
	case math.IsInf(value, 1):
		return "inf"
	case math.IsInf(value, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
}

func operatorOf(kind uint) bounds.Operator {
	switch kind {
	case ADD:
		return bounds.ADD
	case SUB:
		return bounds.SUB
	case MUL:
		return bounds.MUL
	default:
		return bounds.DIV
	}
}

func comparisonOf(kind uint) Comparison {
	switch kind {
	case LESS_THAN:
		return LT
	case LESS_THAN_EQUALS:
		return LTEQ
	case GREATER_THAN:
		return GT
	case GREATER_THAN_EQUALS:
		return GTEQ
	default:
		return EQ
	}
}

// ============================================================================
// Helpers
// ============================================================================

// Skip over any blank lines.
func (p *Parser) skipNewlines() {
	for p.match(NEWLINE) {
	}
}

// Check that the current statement is finished, reporting an error of the
// given kind otherwise.
func (p *Parser) endOfStatement(kind ErrorKind) error {
	if p.match(NEWLINE) || p.lookahead().Kind == END_OF {
		return nil
	}
	//
	return NewError(kind, p.lookahead().Span, "unexpected token")
}

func (p *Parser) string(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

// Follows determines whether the lookahead is any of the given kinds.
func (p *Parser) follows(kinds ...uint) bool {
	return slices.Contains(kinds, p.lookahead().Kind)
}

// Expect returns an error if the next token is not what was expected.
func (p *Parser) expect(kind uint) (lex.Token, error) {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != kind {
		return lookahead, NewError(SYNTAX_ERROR, lookahead.Span, "unexpected token")
	}
	//
	p.index++
	//
	return lookahead, nil
}

// Match attempts to match the given token.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) spanOf(firstToken, lastToken int) source.Span {
	start := p.tokens[firstToken].Span.Start()
	end := p.tokens[lastToken].Span.End()
	//
	return source.NewSpan(start, end)
}
