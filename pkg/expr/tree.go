package expr

import "fmt"

// Node is a node of a boolean expression tree. The set of nodes is closed: only TerminalNode,
// AndNode, OrNode and NotNode implement it.
type Node interface {
	fmt.Stringer
	node()
}

type TerminalNode struct {
	Name string
}

func (*TerminalNode) node() {}

func (n *TerminalNode) String() string {
	return n.Name
}

func NewTerminalNode(name string) *TerminalNode {
	return &TerminalNode{Name: name}
}

type AndNode struct {
	Left  Node
	Right Node
}

func (*AndNode) node() {}

func (n *AndNode) String() string {
	return fmt.Sprintf("(%s && %s)", n.Left, n.Right)
}

func NewAndNode(left, right Node) *AndNode {
	return &AndNode{
		Left:  left,
		Right: right,
	}
}

type OrNode struct {
	Left  Node
	Right Node
}

func (*OrNode) node() {}

func (n *OrNode) String() string {
	return fmt.Sprintf("(%s || %s)", n.Left, n.Right)
}

func NewOrNode(left, right Node) *OrNode {
	return &OrNode{
		Left:  left,
		Right: right,
	}
}

type NotNode struct {
	Expression Node
}

func (*NotNode) node() {}

func (n *NotNode) String() string {
	return fmt.Sprintf("!%s", n.Expression)
}

func NewNotNode(expression Node) *NotNode {
	return &NotNode{Expression: expression}
}
