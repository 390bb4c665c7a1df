package main

import (
	"github.com/pkg/errors"
	"github.com/wavesplatform/boolexpr/pkg/expr"
)

const scenarioAll = "all"

type scenario struct {
	name string
	node expr.Node
}

var scenarios = []scenario{
	{
		name: "mixed",
		node: expr.NewOrNode(
			expr.NewAndNode(expr.NewTerminalNode("A"), expr.NewTerminalNode("B")),
			expr.NewAndNode(expr.NewTerminalNode("C"), expr.NewNotNode(expr.NewTerminalNode("D"))),
		),
	},
	{
		name: "conjunction",
		node: expr.NewAndNode(
			expr.NewOrNode(expr.NewTerminalNode("A"), expr.NewTerminalNode("B")),
			expr.NewOrNode(expr.NewTerminalNode("C"), expr.NewTerminalNode("D")),
		),
	},
	{
		name: "double-negation",
		node: expr.NewNotNode(expr.NewNotNode(expr.NewTerminalNode("A"))),
	},
}

func scenarioNames() []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.name
	}
	return names
}

func selectScenarios(name string) ([]scenario, error) {
	if name == scenarioAll {
		return scenarios, nil
	}
	for _, s := range scenarios {
		if s.name == name {
			return []scenario{s}, nil
		}
	}
	return nil, errors.Errorf("unknown scenario '%s'", name)
}
