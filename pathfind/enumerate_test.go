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

package pathfind

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Fersis/STA-graph-algorithm/netlist"
	"github.com/Fersis/STA-graph-algorithm/tdm"
)

func buildGraph(t *testing.T, net, are string) *netlist.Graph {
	t.Helper()
	table, err := tdm.ParseFile(strings.NewReader(""))
	require.NoError(t, err)
	g, err := netlist.Build(strings.NewReader(net), table)
	require.NoError(t, err)
	_, err = netlist.Classify(g, strings.NewReader(are))
	require.NoError(t, err)
	return g
}

func TestEnumerateFFToFF(t *testing.T) {
	g := buildGraph(t, "g1 s\ng2 l\ng2 s\ng3 l\n", "g1 {ff c1}\ng2\ng3 {ff c1}\n")

	var paths [][]string
	Enumerate(g, "g1", func(p []string) { paths = append(paths, p) })

	require.Len(t, paths, 1)
	require.Equal(t, []string{"g1", "g2", "g3"}, paths[0])
}

func TestEnumerateStopsAtLoop(t *testing.T) {
	// g2 -> g3 -> g2 is a pure combinational loop with no endpoint: no
	// path should ever be yielded through it.
	net := "g1 s\ng2 l\ng2 s\ng3 l\ng3 s\ng2 l\n"
	are := "g1 {ff c1}\ng2\ng3\n"
	g := buildGraph(t, net, are)

	var paths [][]string
	Enumerate(g, "g1", func(p []string) { paths = append(paths, p) })

	require.Empty(t, paths)
}

func TestEnumeratePortConflictProducesNoPath(t *testing.T) {
	net := "g1 s\ngp0 l\ngp0 s\ng1 l\n"
	are := "g1 {ff c1}\ngp0\n"
	g := buildGraph(t, net, are)

	var paths [][]string
	Enumerate(g, "g1", func(p []string) { paths = append(paths, p) })

	require.Empty(t, paths)
}

func TestEnumerateMultipleFanoutPaths(t *testing.T) {
	net := "g1 s\ng2 l\ng1 s\ng3 l\n"
	are := "g1 {ff c1}\ng2 {ff c1}\ng3 {ff c1}\n"
	g := buildGraph(t, net, are)

	var paths [][]string
	Enumerate(g, "g1", func(p []string) { paths = append(paths, p) })

	require.Len(t, paths, 2)
}
