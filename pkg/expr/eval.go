package expr

import "strings"

// Eval reports whether line satisfies the expression tree. A Term matches
// when its keyword occurs anywhere in the line (substring, not whole-word).
// And/Or short-circuit; that is purely an efficiency property since term
// evaluation has no side effects. Case sensitivity is handled outside:
// for case-insensitive matching, fold the tree with Fold and lowercase
// each line the same way before calling Eval.
func (n *Node) Eval(line string) bool {
	switch n.Kind {
	case NodeTerm:
		return strings.Contains(line, n.Keyword)
	case NodeAnd:
		return n.Left.Eval(line) && n.Right.Eval(line)
	case NodeOr:
		return n.Left.Eval(line) || n.Right.Eval(line)
	case NodeNot:
		return !n.Operand.Eval(line)
	default:
		return false
	}
}

// Fold returns a copy of the tree with every keyword lowercased. The
// receiver is left untouched; trees are immutable once parsed.
func (n *Node) Fold() *Node {
	switch n.Kind {
	case NodeTerm:
		return &Node{Kind: NodeTerm, Keyword: strings.ToLower(n.Keyword)}
	case NodeAnd, NodeOr:
		return &Node{Kind: n.Kind, Left: n.Left.Fold(), Right: n.Right.Fold()}
	case NodeNot:
		return &Node{Kind: NodeNot, Operand: n.Operand.Fold()}
	default:
		return n
	}
}

// String renders the tree in fully parenthesized form, mainly for tests
// and error output.
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	switch n.Kind {
	case NodeTerm:
		b.WriteString(n.Keyword)
	case NodeAnd:
		b.WriteByte('(')
		n.Left.render(b)
		b.WriteString(" and ")
		n.Right.render(b)
		b.WriteByte(')')
	case NodeOr:
		b.WriteByte('(')
		n.Left.render(b)
		b.WriteString(" or ")
		n.Right.render(b)
		b.WriteByte(')')
	case NodeNot:
		b.WriteString("not ")
		n.Operand.render(b)
	}
}
