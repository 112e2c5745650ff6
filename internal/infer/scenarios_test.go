// This file loads the concrete scenarios of spec.md §8.2 from
// testdata/scenarios.yaml and runs each through the driver, following the
// teacher's pattern of exercising a component against checked-in YAML
// fixtures rather than hand-written Go literals only.
package infer_test

import (
	"fmt"
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/typeinfer/internal/ast"
	"github.com/funvibe/typeinfer/internal/infer"
	"github.com/funvibe/typeinfer/internal/infer/prelude"
)

type scenarioFile struct {
	Scenarios []scenarioCase `yaml:"scenarios"`
}

type scenarioCase struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Expr        yaml.Node `yaml:"expr"`
	Want        string    `yaml:"want"`
}

func loadScenarios(t *testing.T) []scenarioCase {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("reading testdata/scenarios.yaml: %v", err)
	}
	var file scenarioFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		t.Fatalf("parsing testdata/scenarios.yaml: %v", err)
	}
	return file.Scenarios
}

func TestScenariosFromFixture(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			var raw interface{}
			if err := sc.Expr.Decode(&raw); err != nil {
				t.Fatalf("decoding expr: %v", err)
			}
			expr, err := buildExpr(raw)
			if err != nil {
				t.Fatalf("building expression: %v", err)
			}

			env := infer.NewEnv(prelude.Builtins())
			got, err := infer.TypeOf(env, expr)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", sc.Description, err)
			}
			if got.String() != sc.Want {
				t.Fatalf("%s: got %q, want %q", sc.Description, got.String(), sc.Want)
			}
		})
	}
}

// buildExpr translates the generic YAML structure of one fixture's "expr"
// field into an ast.Expr. Only the node shapes scenarios.yaml actually
// uses are handled; anything else is a fixture-authoring error.
func buildExpr(v interface{}) (ast.Expr, error) {
	switch node := v.(type) {
	case int:
		return ast.NewIntLit(0, int64(node)), nil
	case string:
		if node == "_" {
			return ast.NewWildcard(0), nil
		}
		return ast.NewSymbol(0, node), nil
	case map[string]interface{}:
		return buildExprFromMap(node)
	default:
		return nil, fmt.Errorf("unsupported fixture node %#v", v)
	}
}

func buildExprFromMap(node map[string]interface{}) (ast.Expr, error) {
	switch {
	case node["fundef"] != nil:
		def := node["fundef"].(map[string]interface{})
		args, err := symbolArgs(def["args"])
		if err != nil {
			return nil, err
		}
		body, err := buildExpr(def["body"])
		if err != nil {
			return nil, err
		}
		return ast.NewFunDef(0, nil, args, body), nil

	case node["apply"] != nil:
		call := node["apply"].(map[string]interface{})
		fn, err := buildExpr(call["fn"])
		if err != nil {
			return nil, err
		}
		argList, _ := call["args"].([]interface{})
		args := make([]ast.Expr, len(argList))
		for i, a := range argList {
			ae, err := buildExpr(a)
			if err != nil {
				return nil, err
			}
			args[i] = ae
		}
		return ast.NewApply(0, fn, args), nil

	case node["letfun"] != nil:
		let := node["letfun"].(map[string]interface{})
		args, err := symbolArgs(let["args"])
		if err != nil {
			return nil, err
		}
		value, err := buildExpr(let["value"])
		if err != nil {
			return nil, err
		}
		body, err := buildExpr(let["body"])
		if err != nil {
			return nil, err
		}
		name := ast.NewSymbol(0, let["name"].(string))
		return ast.NewFunBinding(0, ast.NewFunDef(0, name, args, value), body), nil

	case node["match"] != nil:
		m := node["match"].(map[string]interface{})
		scrutinee, err := buildExpr(m["scrutinee"])
		if err != nil {
			return nil, err
		}
		clauseList, _ := m["clauses"].([]interface{})
		clauses := make([]*ast.Clause, len(clauseList))
		for i, c := range clauseList {
			cm := c.(map[string]interface{})
			pattern, err := buildExpr(cm["pattern"])
			if err != nil {
				return nil, err
			}
			result, err := buildExpr(cm["result"])
			if err != nil {
				return nil, err
			}
			clauses[i] = ast.NewClause(0, pattern, nil, result)
		}
		return ast.NewMatch(0, scrutinee, clauses), nil

	case node["atom"] != nil:
		return ast.NewAtomLit(0, node["atom"].(string)), nil

	default:
		return nil, fmt.Errorf("unrecognized fixture node %#v", node)
	}
}

func symbolArgs(v interface{}) ([]ast.Expr, error) {
	list, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected an argument list, got %#v", v)
	}
	out := make([]ast.Expr, len(list))
	for i, a := range list {
		name, ok := a.(string)
		if !ok {
			return nil, fmt.Errorf("expected a symbol name, got %#v", a)
		}
		out[i] = ast.NewSymbol(0, name)
	}
	return out, nil
}
