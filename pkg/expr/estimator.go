package expr

import "fmt"

// Complexity describes the worst case cost of an expression evaluation,
// that is, without skipping of right operands.
type Complexity struct {
	Nodes     int // Total number of nodes
	Depth     int // Length of the longest path from the root to a terminal
	Terminals int // Number of variable lookups
}

func (c Complexity) String() string {
	return fmt.Sprintf("{Nodes: %d, Depth: %d, Terminals: %d}", c.Nodes, c.Depth, c.Terminals)
}

type treeEstimator struct {
	complexity Complexity
}

func (e *treeEstimator) walk(node Node, depth int) {
	e.complexity.Nodes++
	if depth > e.complexity.Depth {
		e.complexity.Depth = depth
	}
	switch n := node.(type) {
	case *TerminalNode:
		e.complexity.Terminals++

	case *AndNode:
		e.walk(n.Left, depth+1)
		e.walk(n.Right, depth+1)

	case *OrNode:
		e.walk(n.Left, depth+1)
		e.walk(n.Right, depth+1)

	case *NotNode:
		e.walk(n.Expression, depth+1)

	default:
		panic(fmt.Sprintf("unsupported type of node '%T'", node))
	}
}

// Estimate walks the tree and returns its complexity. A single terminal has depth 1.
func Estimate(node Node) Complexity {
	e := &treeEstimator{}
	e.walk(node, 1)
	return e.complexity
}

// Variables returns names of the variables referenced by the expression without duplicates,
// in order of the first occurrence from left to right.
func Variables(node Node) []string {
	seen := make(map[string]struct{})
	var names []string
	var walk func(Node)
	walk = func(node Node) {
		switch n := node.(type) {
		case *TerminalNode:
			if _, ok := seen[n.Name]; !ok {
				seen[n.Name] = struct{}{}
				names = append(names, n.Name)
			}
		case *AndNode:
			walk(n.Left)
			walk(n.Right)
		case *OrNode:
			walk(n.Left)
			walk(n.Right)
		case *NotNode:
			walk(n.Expression)
		default:
			panic(fmt.Sprintf("unsupported type of node '%T'", node))
		}
	}
	walk(node)
	return names
}
