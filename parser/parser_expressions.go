package parser

import (
	"strconv"

	"github.com/ashgrove/weave/lexer"
)

// parseExpression is the Pratt core: parse a prefix/unary form, then fold
// in binary/postfix operators while their precedence exceeds minPrec.
func (p *Parser) parseExpression(minPrec int) Node {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for {
		prec, ok := binaryPrecedence[p.cur.Type]
		if !ok || prec <= minPrec {
			break
		}
		left = p.parseInfix(left, prec)
	}
	return left
}

func (p *Parser) parsePrefix() Node {
	switch p.cur.Type {
	case lexer.INT:
		return p.parseIntegerLiteral()
	case lexer.FLOAT:
		return p.parseFloatLiteral()
	case lexer.STRING:
		return p.parseStringLiteral()
	case lexer.NIL:
		n := &NilLiteral{base{Position{p.cur.Begin, p.cur.End}}}
		p.advance()
		return n
	case lexer.TRUE, lexer.FALSE:
		return p.parseBoolLiteral()
	case lexer.IDENT:
		return p.parseIdentifierOrFunctionLiteral()
	case lexer.MINUS:
		// unary '-' binds tighter than '**': only postfix forms
		// (call/attr/index) fold into its operand.
		return p.parseUnary(OpNeg, precUnary)
	case lexer.NOT:
		// 'not' binds looser than comparison but tighter than 'and'/'or':
		// everything above 'and' folds in.
		return p.parseUnary(OpNot, precAnd)
	case lexer.LPAREN:
		return p.parseParenOrFunctionLiteral()
	case lexer.LBRACE:
		return p.parseBraced()
	case lexer.LBRACKET:
		return p.parseListLiteral()
	case lexer.IF:
		return p.parseIfElse()
	case lexer.LOOP:
		return p.parseLoop()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.DROP:
		return p.parseDrop()
	default:
		tok := p.cur
		p.addErrorf("unexpected token %s (%q)", p.cur.Type, p.cur.Literal)
		p.advance()
		// A placeholder keeps callers that read the operand's Pos() from
		// dereferencing a nil node; the recorded error still fails Parse.
		return &NilLiteral{base{Position{tok.Begin, tok.End}}}
	}
}

func (p *Parser) parseIntegerLiteral() Node {
	tok := p.cur
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.addErrorf("invalid integer literal %q: %v", tok.Literal, err)
	}
	p.advance()
	return &IntegerLiteral{base{Position{tok.Begin, tok.End}}, v}
}

func (p *Parser) parseFloatLiteral() Node {
	tok := p.cur
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.addErrorf("invalid float literal %q: %v", tok.Literal, err)
	}
	p.advance()
	return &FloatLiteral{base{Position{tok.Begin, tok.End}}, v}
}

func (p *Parser) parseStringLiteral() Node {
	tok := p.cur
	p.advance()
	return &StringLiteral{base{Position{tok.Begin, tok.End}}, tok.Literal}
}

func (p *Parser) parseBoolLiteral() Node {
	tok := p.cur
	p.advance()
	return &BoolLiteral{base{Position{tok.Begin, tok.End}}, tok.Type == lexer.TRUE}
}

// parseUnary parses a prefix operator whose operand is everything that
// binds tighter than minPrec (see call-site comments for the exact levels).
func (p *Parser) parseUnary(op UnaryOp, minPrec int) Node {
	tok := p.cur
	p.advance()
	right := p.parseExpression(minPrec)
	end := tok.End
	if right != nil {
		end = right.Pos().End
	}
	return &UnaryExpr{base{Position{tok.Begin, end}}, op, right}
}

// parseIdentifierOrFunctionLiteral always parses a bare identifier: an
// identifier followed by `->` without parens is not a function literal in
// this grammar, since function literals always start at `(` (see
// parseParenOrFunctionLiteral).
func (p *Parser) parseIdentifierOrFunctionLiteral() Node {
	tok := p.cur
	p.advance()
	return &Identifier{base{Position{tok.Begin, tok.End}}, tok.Literal}
}

func (p *Parser) parseIfElse() Node {
	begin := p.cur.Begin
	p.advance() // consume 'if'
	cond := p.parseExpression(lowest)
	if p.cur.Type == lexer.THEN {
		p.advance()
	}
	then := p.parseExpression(lowest)
	var elseNode Node
	end := then.Pos().End
	if p.cur.Type == lexer.ELSE {
		p.advance()
		elseNode = p.parseExpression(lowest)
		end = elseNode.Pos().End
	}
	return &IfElse{base{Position{begin, end}}, cond, then, elseNode}
}

func (p *Parser) parseLoop() Node {
	begin := p.cur.Begin
	p.advance() // consume 'loop'
	body := p.parseExpression(lowest)
	end := begin
	if body != nil {
		end = body.Pos().End
	}
	return &Loop{base{Position{begin, end}}, body}
}

func (p *Parser) parseReturn() Node {
	tok := p.cur
	p.advance()
	if p.atExpressionBoundary() {
		return &Return{base{Position{tok.Begin, tok.End}}, nil}
	}
	expr := p.parseExpression(lowest)
	end := tok.End
	if expr != nil {
		end = expr.Pos().End
	}
	return &Return{base{Position{tok.Begin, end}}, expr}
}

func (p *Parser) atExpressionBoundary() bool {
	switch p.cur.Type {
	case lexer.SEP, lexer.EOF, lexer.RBRACE, lexer.RPAREN, lexer.RBRACKET, lexer.COMMA:
		return true
	default:
		return false
	}
}

func (p *Parser) parseDrop() Node {
	begin := p.cur.Begin
	p.advance() // consume 'drop'
	var names []string
	end := begin
	for {
		if !p.expect(lexer.IDENT) {
			break
		}
		names = append(names, p.cur.Literal)
		end = p.cur.End
		p.advance()
		if p.cur.Type != lexer.COMMA {
			break
		}
		p.advance()
	}
	return &Drop{base{Position{begin, end}}, names}
}

// parseBraced disambiguates a bare `{ ... }` block from a Hash literal: both
// start with '{', but a hash pairs its entries with '->' (the same token a
// function literal uses), while a block separates statements with a SEP.
// looksLikeHashLiteral decides by scanning ahead for whichever comes first
// at brace depth 0.
func (p *Parser) parseBraced() Node {
	if p.looksLikeHashLiteral() {
		return p.parseHashLiteral()
	}
	return p.parseBlock()
}

func (p *Parser) looksLikeHashLiteral() bool {
	scan := *p.lex
	cur := p.next
	depth := 0
	for {
		switch cur.Type {
		case lexer.EOF:
			return false
		case lexer.LBRACE, lexer.LPAREN, lexer.LBRACKET:
			depth++
		case lexer.RBRACE:
			if depth == 0 {
				return false
			}
			depth--
		case lexer.RPAREN, lexer.RBRACKET:
			depth--
		case lexer.ARROW:
			if depth == 0 {
				return true
			}
		case lexer.SEP:
			if depth == 0 {
				return false
			}
		}
		cur = scan.NextToken()
	}
}

func (p *Parser) parseHashLiteral() Node {
	begin := p.cur.Begin
	p.advance() // consume '{'
	var pairs []HashPair
	for p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		key := p.parseExpression(lowest)
		p.expectAndAdvance(lexer.ARROW)
		val := p.parseExpression(lowest)
		pairs = append(pairs, HashPair{Key: key, Value: val})
		if p.cur.Type == lexer.COMMA {
			p.advance()
		} else {
			break
		}
	}
	end := p.cur.End
	p.expectAndAdvance(lexer.RBRACE)
	return &HashLiteral{base{Position{begin, end}}, pairs}
}

func (p *Parser) parseBlock() Node {
	begin := p.cur.Begin
	p.advance() // consume '{'
	var nodes []Node
	p.skipSeps()
	for p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		n := p.parseStatement()
		if n != nil {
			nodes = append(nodes, n)
		}
		if p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.SEP {
			p.addErrorf("expected statement separator or '}', got %s", p.cur.Type)
			break
		}
		p.skipSeps()
	}
	end := p.cur.End
	p.expectAndAdvance(lexer.RBRACE)
	return &Sequence{base{Position{begin, end}}, nodes}
}

func (p *Parser) parseListLiteral() Node {
	begin := p.cur.Begin
	p.advance() // consume '['
	var elems []Node
	for p.cur.Type != lexer.RBRACKET && p.cur.Type != lexer.EOF {
		elems = append(elems, p.parseExpression(lowest))
		if p.cur.Type == lexer.COMMA {
			p.advance()
		} else {
			break
		}
	}
	end := p.cur.End
	p.expectAndAdvance(lexer.RBRACKET)
	return &ListLiteral{base{Position{begin, end}}, elems}
}

// parseParenOrFunctionLiteral disambiguates `(expr)` from
// `(params) -> body` by scanning the parenthesized group first.
func (p *Parser) parseParenOrFunctionLiteral() Node {
	if p.looksLikeParamList() {
		return p.parseFunctionLiteral()
	}
	begin := p.cur.Begin
	p.advance() // consume '('
	if p.cur.Type == lexer.RPAREN {
		end := p.cur.End
		p.advance()
		return &NilLiteral{base{Position{begin, end}}}
	}
	inner := p.parseExpression(lowest)
	p.expectAndAdvance(lexer.RPAREN)
	return inner
}

// looksLikeParamList peeks ahead (without mutating cur/next beyond the
// lexer's own lookahead) to decide whether `(` opens a parameter list
// followed by `->`. It does so by scanning a throwaway lexer copy.
func (p *Parser) looksLikeParamList() bool {
	scan := *p.lex
	cur, next := p.cur, p.next
	depth := 0
	for {
		if cur.Type == lexer.EOF {
			return false
		}
		if cur.Type == lexer.LPAREN {
			depth++
		}
		if cur.Type == lexer.RPAREN {
			depth--
			if depth == 0 {
				return next.Type == lexer.ARROW
			}
		}
		cur = next
		next = scan.NextToken()
	}
}

func (p *Parser) parseFunctionLiteral() Node {
	begin := p.cur.Begin
	p.expectAndAdvance(lexer.LPAREN)
	var positional []string
	var defaults []Param
	for p.cur.Type != lexer.RPAREN && p.cur.Type != lexer.EOF {
		if !p.expect(lexer.IDENT) {
			break
		}
		name := p.cur.Literal
		p.advance()
		if p.cur.Type == lexer.ASSIGN {
			p.advance()
			defExpr := p.parseExpression(lowest)
			defaults = append(defaults, Param{Name: name, Default: defExpr})
		} else {
			positional = append(positional, name)
		}
		if p.cur.Type == lexer.COMMA {
			p.advance()
		} else {
			break
		}
	}
	p.expectAndAdvance(lexer.RPAREN)
	p.expectAndAdvance(lexer.ARROW)
	body := p.parseExpression(lowest)
	end := begin
	if body != nil {
		end = body.Pos().End
	}
	return &FunctionLiteral{base{Position{begin, end}}, positional, defaults, body}
}

// parseInfix continues an expression given the already-parsed left operand
// and the precedence of the current (infix) token.
func (p *Parser) parseInfix(left Node, prec int) Node {
	switch p.cur.Type {
	case lexer.OR:
		return p.parseLogical(left, LogicalOr, prec)
	case lexer.AND:
		return p.parseLogical(left, LogicalAnd, prec)
	case lexer.EQ, lexer.NOTEQ, lexer.LT, lexer.LTE, lexer.GT, lexer.GTE:
		return p.parseCompare(left, prec)
	case lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.POW:
		return p.parseArith(left, prec)
	case lexer.LPAREN:
		return p.parseCall(left)
	case lexer.DOT:
		return p.parseDotAccess(left)
	case lexer.LBRACKET:
		return p.parseIndexAccess(left)
	default:
		return left
	}
}

func (p *Parser) parseLogical(left Node, op LogicalOp, prec int) Node {
	p.advance()
	right := p.parseExpression(prec)
	return &LogicalExpr{base{Position{left.Pos().Begin, right.Pos().End}}, op, left, right}
}

func (p *Parser) parseCompare(left Node, prec int) Node {
	op := CmpOp(p.cur.Type)
	p.advance()
	right := p.parseExpression(prec)
	return &CompareExpr{base{Position{left.Pos().Begin, right.Pos().End}}, op, left, right}
}

func (p *Parser) parseArith(left Node, prec int) Node {
	op := ArithOp(p.cur.Type)
	// ** is left-associative here: use the same precedence, not prec-1,
	// so a chained `**` folds left just like `+`.
	p.advance()
	right := p.parseExpression(prec)
	return &BinaryExpr{base{Position{left.Pos().Begin, right.Pos().End}}, op, left, right}
}

func (p *Parser) parseCall(callee Node) Node {
	begin := callee.Pos().Begin
	p.advance() // consume '('
	var positional []Node
	var keyword []KeywordArg
	for p.cur.Type != lexer.RPAREN && p.cur.Type != lexer.EOF {
		if p.cur.Type == lexer.IDENT && p.next.Type == lexer.ASSIGN {
			name := p.cur.Literal
			p.advance()
			p.advance() // consume '='
			val := p.parseExpression(lowest)
			keyword = append(keyword, KeywordArg{Name: name, Value: val})
		} else {
			positional = append(positional, p.parseExpression(lowest))
		}
		if p.cur.Type == lexer.COMMA {
			p.advance()
		} else {
			break
		}
	}
	end := p.cur.End
	p.expectAndAdvance(lexer.RPAREN)
	return &CallExpr{base{Position{begin, end}}, callee, positional, keyword}
}

func (p *Parser) parseDotAccess(receiver Node) Node {
	begin := receiver.Pos().Begin
	p.advance() // consume '.'
	if !p.expect(lexer.IDENT) {
		return receiver
	}
	key := &StringLiteral{base{Position{p.cur.Begin, p.cur.End}}, p.cur.Literal}
	end := p.cur.End
	p.advance()
	return &GetAttribute{base{Position{begin, end}}, receiver, key}
}

func (p *Parser) parseIndexAccess(receiver Node) Node {
	begin := receiver.Pos().Begin
	p.advance() // consume '['
	key := p.parseExpression(lowest)
	end := p.cur.End
	p.expectAndAdvance(lexer.RBRACKET)
	return &GetAttribute{base{Position{begin, end}}, receiver, key}
}
