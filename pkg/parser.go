package shork

import "fmt"

// Parser turns a token stream into a single-rooted AST arena via
// recursive-descent precedence climbing. A Parser never halts: every
// problem becomes a diagnostic and parsing continues, returning whatever
// tree it managed to build.
type Parser struct {
	source   string
	tokens   []Token
	current  int
	idOffset int

	ast      *AST
	reporter Reporter

	diagnostics []Diagnostic
}

// NewParser creates a parser over tokens lexed from source, reporting to
// reporter. source is kept only to resolve diagnostic positions to a
// line/column/line-text triple; the parser never re-scans it.
func NewParser(source string, tokens []Token, reporter Reporter) *Parser {
	return &Parser{
		source:   source,
		tokens:   tokens,
		ast:      NewAST(),
		reporter: reporter,
	}
}

// Parse runs the parser to completion and returns the resulting AST
// (rooted at the top operator of the outermost expression) together with
// whatever diagnostics were raised.
func (p *Parser) Parse() (*AST, []Diagnostic) {
	p.expression()
	return p.ast, p.diagnostics
}

// nextID allocates a fresh, never-reused node id from the parser's shared
// counter — the single source of node ids across every fragment merged
// into p.ast, which is what lets CloneInto treat a merge as a plain
// append rather than a renumbering.
func (p *Parser) nextID() int {
	id := p.idOffset
	p.idOffset++
	return id
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().IsEOF()
}

func (p *Parser) advance() Token {
	if !p.atEnd() {
		p.current++
	}

	return p.previous()
}

func (p *Parser) check(t TokenType) bool {
	return !p.atEnd() && p.peek().Typ == t
}

// match advances past and reports true if the head token is one of types.
func (p *Parser) match(types ...TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}

	return false
}

func (p *Parser) errorf(kind Kind, pos int, format string, args ...interface{}) {
	d := NewDiagnostic(kind, pos, p.source, fmt.Sprintf(format, args...))
	p.diagnostics = append(p.diagnostics, d)
	if p.reporter != nil {
		p.reporter.AddError(d)
	}
}

// expression is the grammar's entry point: expression → equality.
func (p *Parser) expression() []int {
	return p.equality()
}

// operandStartTokens is every token that can plausibly begin an operand: a
// literal of any kind, a parenthesized sub-expression, or a unary operator.
// It is the accepted set for the lookahead check shared by the comparison,
// bitwise, term and factor levels (spec §4.3's "Lookahead diagnostics"
// checks "whether the next token could plausibly begin an operand" at
// each binary operator, as opposed to the narrower, operator-specific sets
// pinned for unary "-"/"!"). A narrower set grounded directly on
// original_source/parser/src/expressions.rs's check_error calls (which
// omit BooleanType at these levels) would reject spec §8 scenario 3's
// `... | 1) + false << ...`, which the spec states must parse successfully
// and fail only at evaluation — so this set is deliberately the general
// one, not original_source's per-level ones.
var operandStartTokens = []TokenType{
	TokenIntegerType, TokenFloatType, TokenCharType, TokenStringType,
	TokenBooleanType, TokenRegexType, TokenLeftParen, TokenBang, TokenMinus,
}

// equality → bitwise ( ( "!=" | "==" ) bitwise )*
//
// No lookahead check here, matching original_source's equality(), which
// never calls check_error.
func (p *Parser) equality() []int {
	return p.binaryLevel(p.bitwise, nil, TokenBangEqual, TokenEqualEqual)
}

// bitwise → comparison ( ( "|" | "&" | "<<" | ">>" ) comparison )*
func (p *Parser) bitwise() []int {
	return p.binaryLevel(p.comparison, operandStartTokens, TokenPipe, TokenAmp, TokenLessLess, TokenGreaterGreater)
}

// comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() []int {
	return p.binaryLevel(p.term, operandStartTokens, TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual)
}

// term → factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() []int {
	return p.binaryLevel(p.factor, operandStartTokens, TokenMinus, TokenPlus)
}

// factor → unary ( ( "/" | "*" | "%" ) unary )*
func (p *Parser) factor() []int {
	return p.binaryLevel(p.unary, operandStartTokens, TokenSlash, TokenStar, TokenPercent)
}

// binaryLevel implements one rung of the precedence ladder: parse the left
// operand via next, then loop while the head token is one of ops. Before
// consuming the right operand it runs the soft lookahead check against
// accepted (skipped when accepted is nil, as for equality), then
// allocates a fresh operator node whose two children are the current
// roots of the accumulating fragment (left first, then right), merged via
// SetRootAll so the operator becomes the sole root.
func (p *Parser) binaryLevel(next func() []int, accepted []TokenType, ops ...TokenType) []int {
	roots := next()

	for p.match(ops...) {
		if accepted != nil {
			p.checkError(accepted)
		}

		opTok := p.previous()

		// The right operand is parsed into a fragment of its own and then
		// merged, so SetRootAll only reaches this operator's two operands.
		acc := p.ast
		p.ast = NewAST()
		rhsRoots := next()
		rhs := p.ast
		p.ast = acc

		opID := p.nextID()
		children := append(append([]int(nil), roots...), rhsRoots...)

		rhs.CloneInto(p.ast)
		p.ast.SetRootAll(opID)
		p.ast.Add(Node{ID: opID, Tok: opTok, Children: children})

		roots = []int{opID}
	}

	return roots
}

// checkError is the parser's non-halting lookahead: it reports a soft
// ParserError when the upcoming token cannot plausibly begin an operand,
// without consuming that token or stopping the parse. Grounded on
// original_source/parser/src/expressions.rs's check_error, called here at
// each binary level and for each unary operator.
func (p *Parser) checkError(accepted []TokenType) {
	next := p.peek()
	for _, t := range accepted {
		if next.Typ == t {
			return
		}
	}

	p.errorf(ParserError, next.Offset, "expected number, found %s", next.Typ)
}

// unary → ( "!" | "-" ) unary | primary
//
// Per the resolved Open Question, unary builds a dedicated single-child
// AST shape rather than reusing the binary minus token, so the evaluator
// can dispatch on child count instead of inspecting sibling counts. Each
// operator runs its own lookahead check before recursing, with the
// operator-specific accepted sets spec §4.3 pins exactly: "-" accepts
// Integer/Float/Minus, "!" accepts Boolean/Exclamation/LeftParen.
func (p *Parser) unary() []int {
	if p.match(TokenBang, TokenMinus) {
		opTok := p.previous()

		switch opTok.Typ {
		case TokenBang:
			p.checkError([]TokenType{TokenBooleanType, TokenBang, TokenLeftParen})
		case TokenMinus:
			p.checkError([]TokenType{TokenIntegerType, TokenFloatType, TokenMinus})
		}

		operand := p.unary()

		id := p.nextID()
		p.ast.SetRootAll(id)
		p.ast.Add(Node{ID: id, Tok: opTok, Children: operand})

		return []int{id}
	}

	return p.primary()
}

// primary → literal | "(" expression ")"
//
// Per the resolved Open Question, primary accepts exactly one of a
// literal or a parenthesized expression — never both in sequence.
func (p *Parser) primary() []int {
	if p.match(TokenLeftParen) {
		roots := p.expression()

		if !p.match(TokenRightParen) {
			pos := 0
			if !p.atEnd() {
				pos = p.peek().Offset
			}
			p.errorf(ParserError, pos, "expected ')' after expression")
		}

		return roots
	}

	switch {
	case p.check(TokenIntegerType), p.check(TokenFloatType), p.check(TokenCharType),
		p.check(TokenStringType), p.check(TokenBooleanType), p.check(TokenRegexType):
		tok := p.advance()
		id := p.nextID()
		p.ast.Add(Node{ID: id, Tok: tok})
		return []int{id}
	default:
		// Neither a literal nor "(" — return no roots at all rather than
		// reporting its own diagnostic here. original_source's primary()
		// does the same (silently returns an empty tree); the caller
		// reaching this point already ran a checkError lookahead that
		// reported the problem, so a second diagnostic for the same
		// token would be redundant. A caller with no such check upstream
		// (e.g. wholly empty source) surfaces the missing root at
		// evaluation time instead, per spec §8's boundary behavior.
		return nil
	}
}
