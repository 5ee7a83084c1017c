// core/newick/newick.go
//
// Minimal Newick tree parser. The pipeline only needs the left-to-right
// order of terminal labels, but the full structure is parsed so malformed
// trees are rejected rather than half-read.
package newick

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Node is one tree node. Terminal nodes have no children.
type Node struct {
	Name     string
	Length   float64 // branch length; 0 when absent
	Children []*Node
}

// Tree is a parsed Newick tree.
type Tree struct {
	Root *Node
}

// ParseError reports invalid Newick text with a byte offset into the input.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("newick: offset %d: %s", e.Offset, e.Msg)
}

// Leaves returns the terminal node names in their natural left-to-right
// traversal order. Enclosing single quotes are already stripped by the
// parser.
func (t *Tree) Leaves() []string {
	var names []string
	var walk func(n *Node)
	walk = func(n *Node) {
		if len(n.Children) == 0 {
			names = append(names, n.Name)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return names
}

// Parse reads one Newick tree from r.
func Parse(r io.Reader) (*Tree, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(text))
}

// ParseFile reads one Newick tree from a file.
func ParseFile(path string) (*Tree, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	t, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseString parses Newick text: nested parenthesized groups with named
// terminals, optional internal labels, optional ':length' suffixes, and an
// optional trailing ';'. Labels may be single-quoted.
func ParseString(text string) (*Tree, error) {
	p := &parser{src: text}
	p.skipSpace()
	root, err := p.node()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.accept(';') {
		p.skipSpace()
	}
	if p.pos != len(p.src) {
		return nil, p.errf("trailing text after tree")
	}
	if root.Name == "" && len(root.Children) == 0 {
		return nil, p.errf("empty tree")
	}
	return &Tree{Root: root}, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errf(format string, a ...any) error {
	return &ParseError{Offset: p.pos, Msg: fmt.Sprintf(format, a...)}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) accept(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

// node parses either a leaf label or a parenthesized child group, then the
// optional label and branch length that may follow the group.
func (p *parser) node() (*Node, error) {
	n := &Node{}
	p.skipSpace()
	if p.accept('(') {
		for {
			child, err := p.node()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
			p.skipSpace()
			if p.accept(',') {
				continue
			}
			if p.accept(')') {
				break
			}
			return nil, p.errf("expected ',' or ')'")
		}
		p.skipSpace()
		// optional internal node label
		name, err := p.label()
		if err != nil {
			return nil, err
		}
		n.Name = name
	} else {
		name, err := p.label()
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, p.errf("expected leaf label or '('")
		}
		n.Name = name
	}
	p.skipSpace()
	if p.accept(':') {
		length, err := p.number()
		if err != nil {
			return nil, err
		}
		n.Length = length
	}
	return n, nil
}

// label reads an optionally quoted node label. Quoted labels keep inner
// text verbatim ('' escapes a quote); the decorative quotes themselves are
// stripped. An absent label returns "".
func (p *parser) label() (string, error) {
	p.skipSpace()
	if p.accept('\'') {
		var b strings.Builder
		for {
			if p.pos >= len(p.src) {
				return "", p.errf("unterminated quoted label")
			}
			c := p.src[p.pos]
			p.pos++
			if c == '\'' {
				if p.accept('\'') { // doubled quote inside label
					b.WriteByte('\'')
					continue
				}
				return b.String(), nil
			}
			b.WriteByte(c)
		}
	}
	start := p.pos
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if strings.ContainsRune("(),:;'", r) || r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			break
		}
		p.pos += size
	}
	return p.src[start:p.pos], nil
}

func (p *parser) number() (float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return 0, p.errf("expected branch length after ':'")
	}
	var v float64
	if _, err := fmt.Sscan(p.src[start:p.pos], &v); err != nil {
		return 0, p.errf("bad branch length %q", p.src[start:p.pos])
	}
	return v, nil
}
