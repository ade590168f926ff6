package expr

import "fmt"

// ---------------- Errors ----------------

// SyntaxError reports a malformed expression with the byte offset of the
// offending token and a short excerpt of the surrounding text.
type SyntaxError struct {
	Pos  int
	Near string
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Near == "" {
		return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("syntax error at offset %d near %q: %s", e.Pos, e.Near, e.Msg)
}

// ---------------- AST ----------------

type NodeKind int

const (
	NodeTerm NodeKind = iota
	NodeAnd
	NodeOr
	NodeNot
)

// Node is one vertex of a parsed expression tree. The variant set is
// closed: Term is a leaf holding the keyword, And/Or hold exactly two
// children, Not holds exactly one. Trees are built bottom-up by the
// parser and never mutated afterwards.
type Node struct {
	Kind NodeKind

	// Term
	Keyword string

	// Binary
	Left, Right *Node

	// Unary
	Operand *Node
}

// ---------------- Parser ----------------

// Grammar (precedence NOT > AND > OR, left-associative):
//
//	Expr    := OrExpr
//	OrExpr  := AndExpr ( OR AndExpr )*
//	AndExpr := NotExpr ( AND? NotExpr )*    -- bare adjacency is implicit AND
//	NotExpr := NOT NotExpr | Primary
//	Primary := TERM | '(' Expr ')'
type parser struct {
	input  string
	tokens []Token
	pos    int
}

// Parse builds the expression tree for the given token sequence.
// input is the original expression string, used only for error excerpts.
func Parse(input string, tokens []Token) (*Node, error) {
	if len(tokens) == 0 {
		return nil, &SyntaxError{Pos: 0, Msg: "empty expression"}
	}
	p := &parser{input: input, tokens: tokens}
	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if t := p.current(); t != nil {
		return nil, p.errAt(t, fmt.Sprintf("unexpected %s", t.Kind))
	}
	return root, nil
}

// ParseString tokenizes and parses in one step.
func ParseString(input string) (*Node, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(input, tokens)
}

func (p *parser) current() *Token {
	if p.pos < len(p.tokens) {
		return &p.tokens[p.pos]
	}
	return nil
}

func (p *parser) advance() *Token {
	tok := p.current()
	if tok != nil {
		p.pos++
	}
	return tok
}

func (p *parser) errAt(t *Token, msg string) error {
	if t == nil {
		return &SyntaxError{Pos: len(p.input), Msg: msg}
	}
	return &SyntaxError{Pos: t.Pos, Near: near(p.input, t.Pos), Msg: msg}
}

// OR (lowest)
func (p *parser) parseOr() (*Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		if t := p.current(); t != nil && t.Kind == TokOr {
			p.advance()
			right, err := p.parseAnd()
			if err != nil {
				return nil, err
			}
			left = &Node{Kind: NodeOr, Left: left, Right: right}
			continue
		}
		break
	}
	return left, nil
}

// AND (middle). Two adjacent operands with no operator between them are
// joined by an implicit AND, so "linux panic" means "linux AND panic".
func (p *parser) parseAnd() (*Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for {
		t := p.current()
		if t == nil {
			break
		}
		switch t.Kind {
		case TokAnd:
			p.advance()
		case TokTerm, TokNot, TokLeftParen:
			// implicit AND: keep t as the start of the right operand
		default:
			return left, nil
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &Node{Kind: NodeAnd, Left: left, Right: right}
	}
	return left, nil
}

// NOT (highest)
func (p *parser) parseNot() (*Node, error) {
	if t := p.current(); t != nil && t.Kind == TokNot {
		p.advance()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &Node{Kind: NodeNot, Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (*Node, error) {
	t := p.current()
	if t == nil {
		return nil, p.errAt(nil, "unexpected end of expression")
	}

	switch t.Kind {
	case TokTerm:
		p.advance()
		return &Node{Kind: NodeTerm, Keyword: t.Text}, nil

	case TokLeftParen:
		open := t
		p.advance()
		if r := p.current(); r != nil && r.Kind == TokRightParen {
			return nil, p.errAt(r, "empty parentheses")
		}
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if r := p.current(); r == nil || r.Kind != TokRightParen {
			return nil, p.errAt(open, "unmatched '('")
		}
		p.advance()
		return inner, nil

	case TokRightParen:
		return nil, p.errAt(t, "unmatched ')'")

	default:
		return nil, p.errAt(t, fmt.Sprintf("operator %s is missing an operand", t.Kind))
	}
}
