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

package timing

import (
	"fmt"
	"strings"

	"github.com/Fersis/STA-graph-algorithm/netlist"
)

// lineFormat is the fixed-width report column layout mandated by the
// spec: name, location tag, signed delta, running total.
const lineFormat = "    %-9s %-10s %+10.3f %10.3f\n"

func reportLine(name, location string, delta, running float64) string {
	return fmt.Sprintf(lineFormat, name, location, delta, running)
}

func fpgaTag(g *netlist.Graph, name string) string {
	group := g.Group(name)
	if group < 0 {
		return "@unassigned"
	}
	return fmt.Sprintf("@FPGA%d", group)
}

const (
	separator  = "-------------------------------------------" // 43 dashes
	terminator = "================================================================================" // 80 equals
)

func init() {
	if len(separator) != 43 {
		panic("separator must be exactly 43 characters")
	}
	if len(terminator) != 80 {
		panic("terminator must be exactly 80 characters")
	}
}

// walkDataArrival replays the path's instance and net delays, starting
// from initLatency/initReport (the launch- or capture-side clock source
// latency and its precomputed clock-delay fragment), and returns the
// final data arrival time plus the formatted report body.
func walkDataArrival(g *netlist.Graph, path []string, initLatency float64, initReport string) (float64, string) {
	var b strings.Builder
	b.WriteString(initReport)

	dat := initLatency
	for i := 0; i < len(path)-1; i++ {
		delay := netlist.InstanceDelay(g.NodeRole(path[i]))
		dat += delay
		b.WriteString(reportLine(path[i], fpgaTag(g, path[i]), delay, dat))

		edge, ok := g.EdgeBetween(path[i], path[i+1])
		if ok && edge.Delay != 0 {
			dat += edge.Delay
			b.WriteString(reportLine("", edge.Tag(), edge.Delay, dat))
		}
	}
	return dat, b.String()
}

func formatPathHeader(path []string) string {
	return fmt.Sprintf("path %v:\n", path)
}
