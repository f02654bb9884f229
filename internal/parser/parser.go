// Package parser implements the recursive-descent precedence climb
// described in spec §4.3: one function per precedence level, from
// logical-or down to the atom grammar, all binary levels left-associative
// including the deliberately non-mathematical left-associative "**".
package parser

import (
	"fmt"

	"github.com/hhollis/spreadterm/internal/ast"
	"github.com/hhollis/spreadterm/internal/lexer"
	"github.com/hhollis/spreadterm/internal/value"
)

// Parser walks a flat token sequence and builds an expression tree.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a Parser over tokens.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses the complete token sequence into a single expression tree.
func Parse(tokens []lexer.Token) (ast.Node, error) {
	return New(tokens).Parse()
}

// Parse runs the precedence climb and ensures no trailing tokens remain.
func (p *Parser) Parse() (ast.Node, error) {
	node, err := p.logicalOr()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, fmt.Errorf("Unexpected Token %s at index %d", p.tokens[p.pos].Text, p.pos)
	}
	return node, nil
}

func (p *Parser) at(t lexer.TokenType) bool {
	return p.pos < len(p.tokens) && p.tokens[p.pos].Type == t
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// leftAssoc is shared by every binary precedence level: parse one operand
// at the next-higher level, then fold in as many same-level operators as
// match, always grouping to the left.
func (p *Parser) leftAssoc(next func() (ast.Node, error), match func() (value.BinaryOp, bool)) (ast.Node, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := match()
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) logicalOr() (ast.Node, error) {
	return p.leftAssoc(p.logicalAnd, func() (value.BinaryOp, bool) {
		if p.at(lexer.PIPE_PIPE) {
			return value.OpLogicalOr, true
		}
		return 0, false
	})
}

func (p *Parser) logicalAnd() (ast.Node, error) {
	return p.leftAssoc(p.bitwiseOr, func() (value.BinaryOp, bool) {
		if p.at(lexer.AMP_AMP) {
			return value.OpLogicalAnd, true
		}
		return 0, false
	})
}

func (p *Parser) bitwiseOr() (ast.Node, error) {
	return p.leftAssoc(p.bitwiseXor, func() (value.BinaryOp, bool) {
		if p.at(lexer.PIPE) {
			return value.OpBitwiseOr, true
		}
		return 0, false
	})
}

func (p *Parser) bitwiseXor() (ast.Node, error) {
	return p.leftAssoc(p.bitwiseAnd, func() (value.BinaryOp, bool) {
		if p.at(lexer.CARET) {
			return value.OpBitwiseXor, true
		}
		return 0, false
	})
}

func (p *Parser) bitwiseAnd() (ast.Node, error) {
	return p.leftAssoc(p.equality, func() (value.BinaryOp, bool) {
		if p.at(lexer.AMP) {
			return value.OpBitwiseAnd, true
		}
		return 0, false
	})
}

func (p *Parser) equality() (ast.Node, error) {
	return p.leftAssoc(p.comparison, func() (value.BinaryOp, bool) {
		switch {
		case p.at(lexer.EQUAL_EQUAL):
			return value.OpEqual, true
		case p.at(lexer.BANG_EQUAL):
			return value.OpNotEqual, true
		default:
			return 0, false
		}
	})
}

func (p *Parser) comparison() (ast.Node, error) {
	return p.leftAssoc(p.shift, func() (value.BinaryOp, bool) {
		switch {
		case p.at(lexer.LESS):
			return value.OpLess, true
		case p.at(lexer.LESS_EQUAL):
			return value.OpLessEqual, true
		case p.at(lexer.GREATER):
			return value.OpGreater, true
		case p.at(lexer.GREATER_EQ):
			return value.OpGreaterEqual, true
		default:
			return 0, false
		}
	})
}

func (p *Parser) shift() (ast.Node, error) {
	return p.leftAssoc(p.additive, func() (value.BinaryOp, bool) {
		switch {
		case p.at(lexer.LESS_LESS):
			return value.OpLeftShift, true
		case p.at(lexer.GREATER_GT):
			return value.OpRightShift, true
		default:
			return 0, false
		}
	})
}

func (p *Parser) additive() (ast.Node, error) {
	return p.leftAssoc(p.multiplicative, func() (value.BinaryOp, bool) {
		switch {
		case p.at(lexer.PLUS):
			return value.OpAdd, true
		case p.at(lexer.MINUS):
			return value.OpSubtract, true
		default:
			return 0, false
		}
	})
}

func (p *Parser) multiplicative() (ast.Node, error) {
	return p.leftAssoc(p.power, func() (value.BinaryOp, bool) {
		switch {
		case p.at(lexer.STAR):
			return value.OpMultiply, true
		case p.at(lexer.SLASH):
			return value.OpDivide, true
		case p.at(lexer.PERCENT):
			return value.OpModulus, true
		default:
			return 0, false
		}
	})
}

// power is left-associative — a deliberate deviation from the usual
// mathematical right-associative convention (spec §4.3, §9.3):
// 2**3**2 parses as (2**3)**2, not 2**(3**2).
func (p *Parser) power() (ast.Node, error) {
	return p.leftAssoc(p.unary, func() (value.BinaryOp, bool) {
		if p.at(lexer.STAR_STAR) {
			return value.OpPower, true
		}
		return 0, false
	})
}

// unary handles the right-associative prefix operators: !!x parses as !(!x).
func (p *Parser) unary() (ast.Node, error) {
	var op value.UnaryOp
	switch {
	case p.at(lexer.BANG):
		op = value.OpLogicalNot
	case p.at(lexer.TILDE):
		op = value.OpBitwiseNot
	case p.at(lexer.INT_CAST):
		op = value.OpFloatToInt
	case p.at(lexer.FLOAT_CAST):
		op = value.OpIntToFloat
	default:
		return p.aggregate()
	}
	p.advance()
	child, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Op: op, Child: child}, nil
}

// aggregate parses max|mean|min|sum(cellAddr, cellAddr). Corners must be
// literal cell addresses, never arbitrary sub-expressions (spec §9).
func (p *Parser) aggregate() (ast.Node, error) {
	var fn value.AggregateFn
	switch {
	case p.at(lexer.MAX):
		fn = value.AggMax
	case p.at(lexer.MEAN):
		fn = value.AggMean
	case p.at(lexer.MIN):
		fn = value.AggMin
	case p.at(lexer.SUM):
		fn = value.AggSum
	default:
		return p.atom()
	}
	p.advance()

	if !p.at(lexer.LPAREN) {
		return nil, fmt.Errorf("Missing Open Parenthesis at %d", p.pos)
	}
	p.advance()

	topLeft, err := p.cellAddress()
	if err != nil {
		return nil, err
	}

	if !p.at(lexer.COMMA) {
		return nil, fmt.Errorf("Missing Comma at %d", p.pos)
	}
	p.advance()

	bottomRight, err := p.cellAddress()
	if err != nil {
		return nil, err
	}

	if !p.at(lexer.RPAREN) {
		return nil, fmt.Errorf("Missing Closing Parenthesis at %d", p.pos)
	}
	p.advance()

	return &ast.Aggregate{Fn: fn, TopLeft: topLeft, BottomRight: bottomRight}, nil
}

// atom parses parenthesized expressions, literals, and cell references.
func (p *Parser) atom() (ast.Node, error) {
	if p.pos >= len(p.tokens) {
		return nil, fmt.Errorf("Incomplete Input String (Likely a dropped primitive after an operator)")
	}

	switch {
	case p.at(lexer.LPAREN):
		p.advance()
		node, err := p.logicalOr()
		if err != nil {
			return nil, err
		}
		if !p.at(lexer.RPAREN) {
			return nil, fmt.Errorf("Missing Closing Parenthesis at %d", p.pos)
		}
		p.advance()
		return node, nil

	case p.at(lexer.INTEGER):
		tok := p.advance()
		n, err := parseInt32(tok.Text)
		if err != nil {
			return nil, err
		}
		return &ast.Literal{Value: value.Integer(n)}, nil

	case p.at(lexer.FLOAT):
		tok := p.advance()
		f, err := parseFloat32(tok.Text)
		if err != nil {
			return nil, err
		}
		return &ast.Literal{Value: value.Float(f)}, nil

	case p.at(lexer.STRING):
		tok := p.advance()
		return &ast.Literal{Value: value.String(tok.Text)}, nil

	case p.at(lexer.TRUE):
		p.advance()
		return &ast.Literal{Value: value.Boolean(true)}, nil

	case p.at(lexer.FALSE):
		p.advance()
		return &ast.Literal{Value: value.Boolean(false)}, nil

	case p.at(lexer.LBRACKET):
		addr, err := p.cellAddress()
		if err != nil {
			return nil, err
		}
		return &ast.CellRef{Addr: addr}, nil

	default:
		return nil, fmt.Errorf("Unexpected Token %s at index %d", p.tokens[p.pos].Text, p.pos)
	}
}

// cellAddress parses "[ int , int ]".
func (p *Parser) cellAddress() (ast.CellAddress, error) {
	if !p.at(lexer.LBRACKET) {
		return ast.CellAddress{}, fmt.Errorf("Unexpected Token at index %d", p.pos)
	}
	p.advance()

	if !p.at(lexer.INTEGER) {
		return ast.CellAddress{}, fmt.Errorf("Incomplete Input String (Likely a dropped primitive after an operator)")
	}
	row, err := parseInt32(p.advance().Text)
	if err != nil {
		return ast.CellAddress{}, err
	}

	if !p.at(lexer.COMMA) {
		return ast.CellAddress{}, fmt.Errorf("Missing Comma at %d", p.pos)
	}
	p.advance()

	if !p.at(lexer.INTEGER) {
		return ast.CellAddress{}, fmt.Errorf("Incomplete Input String (Likely a dropped primitive after an operator)")
	}
	col, err := parseInt32(p.advance().Text)
	if err != nil {
		return ast.CellAddress{}, err
	}

	if !p.at(lexer.RBRACKET) {
		return ast.CellAddress{}, fmt.Errorf("Missing Closing Bracket at %d", p.pos)
	}
	p.advance()

	return ast.CellAddress{Row: row, Col: col}, nil
}
