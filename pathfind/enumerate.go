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

// Package pathfind enumerates every simple timing path through the
// netlist graph: depth-first from a DFF or input port, terminating at the
// first DFF or port reached, never revisiting a node.
package pathfind

import "github.com/Fersis/STA-graph-algorithm/netlist"

// Enumerate walks every simple path starting at start (expected to be a
// DFF or a primary input port) and calls yield once per complete path, in
// depth-first order. Each path passed to yield is a freshly allocated
// slice; callers never need to copy before storing it.
//
// The walk prunes into already-visited nodes, which both avoids infinite
// recursion on a combinational loop and means a loop that never reaches a
// DFF or port simply yields no path through it.
func Enumerate(g *netlist.Graph, start string, yield func(path []string)) {
	visited := map[string]bool{start: true}
	stack := []string{start}

	var walk func(node string)
	walk = func(node string) {
		for _, next := range g.Successors(node) {
			if visited[next] {
				continue
			}

			switch role := g.NodeRole(next).(type) {
			case netlist.DFF:
				yield(append(append([]string{}, stack...), next))
			case netlist.Port:
				if role.Conflict {
					// Retained node, but produces no paths.
					continue
				}
				yield(append(append([]string{}, stack...), next))
			case netlist.Cell, netlist.ClockCell:
				visited[next] = true
				stack = append(stack, next)
				walk(next)
				stack = stack[:len(stack)-1]
				visited[next] = false
			default:
				// ClockSource, Power, or an unclassified node should never
				// appear mid-path; treat as a dead end defensively.
				continue
			}
		}
	}
	walk(start)
}
