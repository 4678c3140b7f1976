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

package clock

import (
	"fmt"
	"strings"

	"github.com/Fersis/STA-graph-algorithm/netlist"
)

// fragmentFormat matches the fixed-width report column layout the rest of
// the path analyzer uses: name, location, signed delta, running total.
const fragmentFormat = "    %-9s %-10s %+10.3f %10.3f\n"

// ResolveLatency walks backward from node through ClockCells to the first
// ClockSource predecessor, per the single-predecessor-per-step design
// note: this is an iterative walk, not mutual recursion. It stops at the
// first predecessor whose role is ClockSource or ClockCell; other
// predecessor roles are ignored. If no such predecessor chain reaches a
// ClockSource, the walk is unresolved and latency is reported as 0 with
// no diagnostic, per the permissive UnresolvedClockLatency policy.
func ResolveLatency(g *netlist.Graph, node string) (latency float64, report string) {
	var b strings.Builder
	current := node
	running := 0.0
	seen := map[string]bool{node: true}

	for {
		preds := g.Predecessors(current)
		var next string
		matched := false

		for _, p := range preds {
			role := g.NodeRole(p)
			edge, ok := g.EdgeBetween(p, current)
			if !ok {
				continue
			}

			switch role.(type) {
			case netlist.ClockSource:
				if edge.Delay != 0 {
					running += edge.Delay
					b.WriteString(fmt.Sprintf(fragmentFormat, "", edge.Tag(), edge.Delay, running))
				}
				return running, b.String()
			case netlist.ClockCell:
				if edge.Delay != 0 {
					running += edge.Delay
					b.WriteString(fmt.Sprintf(fragmentFormat, "", edge.Tag(), edge.Delay, running))
				}
				next = p
				matched = true
			default:
				continue
			}
			break
		}

		if !matched {
			// No reachable ClockSource through ClockCells: unresolved,
			// treated as latency 0 with no diagnostic.
			return 0, ""
		}
		if seen[next] {
			// A cycle of ClockCells never reaches a ClockSource: unresolved.
			return 0, ""
		}
		seen[next] = true
		current = next
	}
}

// ResolveAll resolves and stores clock source latency for every DFF in
// ffNodes, mutating each DFF's Role in place.
func ResolveAll(g *netlist.Graph, ffNodes []string) {
	for _, name := range ffNodes {
		dff, ok := g.NodeRole(name).(netlist.DFF)
		if !ok {
			continue
		}
		latency, report := ResolveLatency(g, name)
		dff.ClockSourceLatency = latency
		dff.ClockDelayReport = report
		g.Node(name).Role = dff
	}
}
