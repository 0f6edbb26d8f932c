package parser

import (
	"fmt"

	"github.com/ashgrove/weave/lexer"
)

// precedence levels, lowest to highest.
const (
	lowest     = iota
	precOr     // or
	precAnd    // and
	precCmp    // == != < <= > >=
	precAdd    // + -
	precMul    // * /
	precPow    // **
	precUnary  // unary -
	precPostfix // call / attribute / index
)

var binaryPrecedence = map[lexer.TokenType]int{
	lexer.OR:       precOr,
	lexer.AND:      precAnd,
	lexer.EQ:       precCmp,
	lexer.NOTEQ:    precCmp,
	lexer.LT:       precCmp,
	lexer.LTE:      precCmp,
	lexer.GT:       precCmp,
	lexer.GTE:      precCmp,
	lexer.PLUS:     precAdd,
	lexer.MINUS:    precAdd,
	lexer.STAR:     precMul,
	lexer.SLASH:    precMul,
	lexer.POW:      precPow,
	lexer.LPAREN:   precPostfix,
	lexer.DOT:      precPostfix,
	lexer.LBRACKET: precPostfix,
}

// Parser implements a Pratt parser over the Lexer's token stream, with
// two-token lookahead and error-collecting (rather than panicking) on
// malformed input.
type Parser struct {
	lex *lexer.Lexer

	cur  lexer.Token
	next lexer.Token

	errors []error
}

// NewParser creates a Parser over src and primes the lookahead tokens.
func NewParser(src string) *Parser {
	p := &Parser{lex: lexer.NewLexer(src)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.next
	p.next = p.lex.NextToken()
}

func (p *Parser) addErrorf(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Errorf("[%d:%d] syntax error: %s", p.cur.Begin, p.cur.End, fmt.Sprintf(format, args...)))
}

// HasErrors reports whether parsing accumulated any syntax errors.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// Errors returns every syntax error collected while parsing.
func (p *Parser) Errors() []error { return p.errors }

func (p *Parser) expect(t lexer.TokenType) bool {
	if p.cur.Type != t {
		p.addErrorf("expected %s, got %s (%q)", t, p.cur.Type, p.cur.Literal)
		return false
	}
	return true
}

func (p *Parser) expectAndAdvance(t lexer.TokenType) bool {
	if !p.expect(t) {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) skipSeps() {
	for p.cur.Type == lexer.SEP {
		p.advance()
	}
}

// Parse parses the whole source as a top-level Sequence.
func (p *Parser) Parse() (*Sequence, []error) {
	begin := p.cur.Begin
	var nodes []Node
	p.skipSeps()
	for p.cur.Type != lexer.EOF {
		n := p.parseStatement()
		if n != nil {
			nodes = append(nodes, n)
		}
		if p.cur.Type != lexer.EOF && p.cur.Type != lexer.SEP && p.cur.Type != lexer.RBRACE {
			p.addErrorf("expected statement separator, got %s", p.cur.Type)
			p.advance()
		}
		p.skipSeps()
	}
	end := p.cur.Begin
	return &Sequence{base: base{Position{begin, end}}, Nodes: nodes}, p.errors
}
