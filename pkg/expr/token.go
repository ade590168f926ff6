package expr

import "strings"

// ---------------- Tokens ----------------

type TokenKind int

const (
	TokTerm TokenKind = iota
	TokAnd
	TokOr
	TokNot
	TokLeftParen
	TokRightParen
)

func (k TokenKind) String() string {
	switch k {
	case TokTerm:
		return "TERM"
	case TokAnd:
		return "AND"
	case TokOr:
		return "OR"
	case TokNot:
		return "NOT"
	case TokLeftParen:
		return "("
	case TokRightParen:
		return ")"
	default:
		return "?"
	}
}

type Token struct {
	Kind TokenKind
	Text string // keyword literal for TokTerm
	Pos  int    // byte offset in the input expression
}

// Tokenize scans an expression string into an ordered token sequence.
// Operators are recognized both symbolic (&&, ||, !) and worded
// (and/or/not, any case). Parentheses are always single-character tokens.
// A term may be quoted ("disk full" or 'disk full') to embed spaces or to
// use a keyword that would otherwise read as an operator. Pure function,
// the input string is never mutated.
func Tokenize(input string) ([]Token, error) {
	toks := make([]Token, 0, 8)
	i := 0
	n := len(input)

	for i < n {
		ch := input[i]
		switch ch {
		case ' ', '\t', '\n', '\r':
			i++
			continue
		case '(':
			toks = append(toks, Token{Kind: TokLeftParen, Pos: i})
			i++
			continue
		case ')':
			toks = append(toks, Token{Kind: TokRightParen, Pos: i})
			i++
			continue
		case '!':
			toks = append(toks, Token{Kind: TokNot, Pos: i})
			i++
			continue
		case '&':
			if i+1 < n && input[i+1] == '&' {
				toks = append(toks, Token{Kind: TokAnd, Pos: i})
				i += 2
				continue
			}
			return nil, &SyntaxError{Pos: i, Near: near(input, i), Msg: "expected '&&'"}
		case '|':
			if i+1 < n && input[i+1] == '|' {
				toks = append(toks, Token{Kind: TokOr, Pos: i})
				i += 2
				continue
			}
			return nil, &SyntaxError{Pos: i, Near: near(input, i), Msg: "expected '||'"}
		case '"', '\'':
			quote := ch
			start := i
			i++
			j := i
			for j < n && input[j] != quote {
				j++
			}
			if j >= n {
				return nil, &SyntaxError{Pos: start, Near: near(input, start), Msg: "unterminated quote"}
			}
			if j == i {
				return nil, &SyntaxError{Pos: start, Near: near(input, start), Msg: "empty quoted term"}
			}
			toks = append(toks, Token{Kind: TokTerm, Text: input[i:j], Pos: start})
			i = j + 1
			continue
		default:
			start := i
			for i < n && !isDelimiter(input[i]) {
				i++
			}
			word := input[start:i]

			// worded operators, any case; quoting opts a term out
			switch strings.ToLower(word) {
			case "and":
				toks = append(toks, Token{Kind: TokAnd, Pos: start})
			case "or":
				toks = append(toks, Token{Kind: TokOr, Pos: start})
			case "not":
				toks = append(toks, Token{Kind: TokNot, Pos: start})
			default:
				toks = append(toks, Token{Kind: TokTerm, Text: word, Pos: start})
			}
			continue
		}
	}

	return toks, nil
}

// isDelimiter reports whether b terminates a bare term.
func isDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '(', ')', '!', '&', '|', '"', '\'':
		return true
	}
	return false
}

// near returns a short excerpt of the input around pos for error messages.
func near(input string, pos int) string {
	end := pos + 12
	if end > len(input) {
		end = len(input)
	}
	return input[pos:end]
}
