package parser

import "github.com/ashgrove/weave/lexer"

// parseStatement parses one statement inside a Sequence: a bare expression,
// or `targets = values` where both sides are comma-separated lists of equal
// length. Assignment is recognized here, above the Pratt expression
// grammar, because '=' never appears as a binary operator inside an
// expression — only as a default-parameter or keyword-argument marker,
// both of which are parsed locally by their own productions.
func (p *Parser) parseStatement() Node {
	first := p.parseExpression(lowest)
	if first == nil {
		return nil
	}
	if p.cur.Type != lexer.COMMA && p.cur.Type != lexer.ASSIGN {
		return first
	}

	targets := []Node{first}
	for p.cur.Type == lexer.COMMA {
		p.advance()
		targets = append(targets, p.parseExpression(lowest))
	}

	if p.cur.Type != lexer.ASSIGN {
		if len(targets) == 1 {
			return targets[0]
		}
		p.addErrorf("expected '=' after comma-separated assignment targets")
		return targets[0]
	}
	p.advance() // consume '='

	values := []Node{p.parseExpression(lowest)}
	for p.cur.Type == lexer.COMMA {
		p.advance()
		values = append(values, p.parseExpression(lowest))
	}

	if len(targets) != len(values) {
		p.addErrorf("assignment has %d target(s) but %d value(s)", len(targets), len(values))
	}

	begin := targets[0].Pos().Begin
	end := values[len(values)-1].Pos().End
	return &Assign{base{Position{begin, end}}, targets, values}
}
