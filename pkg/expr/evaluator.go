package expr

import "fmt"

// Interpret evaluates the expression tree against the environment.
// Operands of AndNode and OrNode are evaluated left to right and the right operand is skipped
// once the left one determines the result.
func Interpret(node Node, env *Environment) bool {
	switch n := node.(type) {
	case *TerminalNode:
		return env.Lookup(n.Name)

	case *AndNode:
		return Interpret(n.Left, env) && Interpret(n.Right, env)

	case *OrNode:
		return Interpret(n.Left, env) || Interpret(n.Right, env)

	case *NotNode:
		return !Interpret(n.Expression, env)

	default:
		panic(fmt.Sprintf("unsupported type of node '%T'", node))
	}
}
