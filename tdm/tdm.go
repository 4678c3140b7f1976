/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package tdm parses the design.tdm formula file into a table of pure,
// callable delay functions keyed by TDM identifier.
package tdm

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/Knetic/govaluate"
)

// EvalFunc computes a TDM edge's delay in ns for a given integer ratio.
type EvalFunc func(ratio uint32) (float64, error)

// Table maps a TDM identifier (e.g. "t0") to its evaluator.
type Table struct {
	fns map[string]EvalFunc
}

// Lookup returns the evaluator registered for id, if any.
func (t *Table) Lookup(id string) (EvalFunc, bool) {
	fn, ok := t.fns[id]
	return fn, ok
}

// three pattern families, tried in priority order B, C, A. Form B contains
// the "r/BASE" fragment that form C matches standalone; form C is anchored
// so that "r" must directly follow the identifier, so it never matches a
// form B line.
var (
	formB = regexp.MustCompile(`^(?P<tdm>t\d+)\s+\(\s*(?P<bias>[\d.]+)\s*\+\s*r\s*/\s*(?P<base>[\d.]+)\s*\)\s*/\s*(?P<freq>[\d.]+)`)
	formC = regexp.MustCompile(`^(?P<tdm>t\d+)\s+r\s*/\s*(?P<base>[\d.]+)`)
	formA = regexp.MustCompile(`^(?P<tdm>t\d+)\s+(?P<freq>[\d.]+)\s*/\s*\(\s*r\s*\+\s*(?P<bias>[\d.]+)\s*\)`)
)

func namedGroups(re *regexp.Regexp, line string) map[string]string {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		out[name] = m[i]
	}
	return out
}

// ParseFile reads TDM formula lines and builds the identifier -> evaluator
// table. Unrecognized lines are ignored silently, as required by the spec.
func ParseFile(r io.Reader) (*Table, error) {
	t := &Table{fns: map[string]EvalFunc{}}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if g := namedGroups(formB, line); g != nil {
			expr := fmt.Sprintf("(%s + r / %s) / %s", g["bias"], g["base"], g["freq"])
			fn, err := compile(expr)
			if err != nil {
				continue
			}
			t.fns[g["tdm"]] = fn
			continue
		}
		if g := namedGroups(formC, line); g != nil {
			expr := fmt.Sprintf("r / %s", g["base"])
			fn, err := compile(expr)
			if err != nil {
				continue
			}
			t.fns[g["tdm"]] = fn
			continue
		}
		if g := namedGroups(formA, line); g != nil {
			expr := fmt.Sprintf("%s / (r + %s)", g["freq"], g["bias"])
			fn, err := compile(expr)
			if err != nil {
				continue
			}
			t.fns[g["tdm"]] = fn
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// compile turns a formula string with free variable "r" into an EvalFunc
// backed by a govaluate expression, the same way fbclock/daemon's Math
// type prepares operator-supplied formulas once and evaluates them many
// times with a parameter map.
func compile(exprStr string) (EvalFunc, error) {
	expr, err := govaluate.NewEvaluableExpression(exprStr)
	if err != nil {
		return nil, err
	}
	return func(ratio uint32) (float64, error) {
		result, err := expr.Evaluate(map[string]interface{}{"r": float64(ratio)})
		if err != nil {
			return 0, err
		}
		f, ok := result.(float64)
		if !ok {
			return 0, fmt.Errorf("tdm formula %q did not evaluate to a number", exprStr)
		}
		return f, nil
	}, nil
}
