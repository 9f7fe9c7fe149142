package ast

import (
	. "git.lolli.tech/lollipopkit/kl/json"
)

type jsonNode map[string]any

// Dump encodes forms as indented JSON. Every node gets a "kind" field.
func Dump(forms []Form) ([]byte, error) {
	nodes := make([]jsonNode, 0, len(forms))
	for _, form := range forms {
		nodes = append(nodes, jsonForm(form))
	}
	return Json.MarshalIndent(nodes, "", "  ")
}

func jsonForm(form Form) jsonNode {
	switch f := form.(type) {
	case *Prototype:
		return jsonProto(f)
	case *Function:
		return jsonNode{
			"kind":  "function",
			"proto": jsonProto(f.Proto),
			"body":  jsonExp(f.Body),
		}
	}
	panic("unreachable!")
}

func jsonProto(p *Prototype) jsonNode {
	params := p.Params
	if params == nil {
		params = []string{}
	}
	return jsonNode{
		"kind":   "prototype",
		"line":   p.Line,
		"name":   p.Name,
		"params": params,
	}
}

func jsonExp(exp Exp) jsonNode {
	switch e := exp.(type) {
	case *NumberExp:
		return jsonNode{"kind": "number", "line": e.Line, "value": e.Val}
	case *VariableExp:
		return jsonNode{"kind": "variable", "line": e.Line, "name": e.Name}
	case *BinopExp:
		return jsonNode{
			"kind":  "binop",
			"line":  e.Line,
			"op":    string(e.Op),
			"left":  jsonExp(e.Left),
			"right": jsonExp(e.Right),
		}
	case *CallExp:
		args := make([]jsonNode, 0, len(e.Args))
		for _, arg := range e.Args {
			args = append(args, jsonExp(arg))
		}
		return jsonNode{
			"kind":   "call",
			"line":   e.Line,
			"callee": e.Callee,
			"args":   args,
		}
	}
	panic("unreachable!")
}
