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

package netlist

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/Fersis/STA-graph-algorithm/errs"
)

// Indices collects the node-name lists the rest of the pipeline needs:
// every DFF (path-enumeration start/end candidate), and the primary
// input/output ports.
type Indices struct {
	FFNodes  []string
	InPorts  []string
	OutPorts []string
}

// attrLineRE matches a design.are line: NAME ['{' ['ff'] [CLKID] '}'].
var attrLineRE = regexp.MustCompile(
	`^\s*(?P<name>gp?\d+)\s*(?:\{\s*(?P<ff>ff)?\s*(?P<clk>c\d+)?\s*\})?\s*$`)

// Classify reads design.are and assigns exactly one Role to every node
// named there that also exists in g (floating attribute lines, for a node
// name not present in the graph, are ignored per spec). Power nodes are
// removed from the graph once identified. Returns the indices the path
// enumerator and clock-latency resolver need.
func Classify(g *Graph, r io.Reader) (*Indices, error) {
	idx := &Indices{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if blankLine(line) {
			continue
		}
		m := attrLineRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("attributes: %w at line %d: %q", errs.ErrMalformedAttribute, lineNo, line)
		}
		groups := subexpMap(attrLineRE, m)
		name := groups["name"]

		node := g.Node(name)
		if node == nil {
			// FloatingAttribute: attribute line for a node design.net never
			// mentioned. Silently ignored.
			continue
		}

		classifyOne(g, idx, node, groups["ff"] != "", groups["clk"])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return idx, nil
}

func classifyOne(g *Graph, idx *Indices, node *Node, hasFF bool, clk string) {
	name := node.Name

	if strings.Contains(name, "p") {
		if clk != "" {
			node.Role = ClockSource{ClockDomain: clk}
			return
		}
		switch node.Direction {
		case DirSource:
			node.Role = Port{Dir: PortIn}
			idx.InPorts = append(idx.InPorts, name)
		case DirSink:
			node.Role = Port{Dir: PortOut}
			idx.OutPorts = append(idx.OutPorts, name)
		default:
			// PortDirectionConflict: both in-degree and out-degree are
			// nonzero. Logged as a warning; the node is kept but marked so
			// it never starts or ends a path.
			log.Warnf("port %s is both a source and a sink; it will be retained but will not produce any paths", name)
			node.Role = Port{Dir: PortIn, Conflict: true}
		}
		return
	}

	if !hasFF {
		node.Role = Cell{Delay: 1.0}
		return
	}

	if clk != "" {
		node.Role = DFF{ClockDomain: clk, TCO: 1.0}
		idx.FFNodes = append(idx.FFNodes, name)
		return
	}

	switch node.Direction {
	case DirSource:
		// Power: a pure driver with no data role. Removed entirely.
		g.removeNode(name)
	case DirBoth:
		node.Role = ClockCell{}
	default:
		// A "ff" node with neither a clock domain nor source/sink direction
		// (sink-only, or never wired) doesn't fit any role the spec
		// defines; treat it as a clock cell rather than dropping it
		// silently, since only Power nodes (pure, in-degree-0 drivers) are
		// ever removed.
		node.Role = ClockCell{}
	}
}
