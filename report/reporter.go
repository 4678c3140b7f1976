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

// Package report sorts, truncates, sums and writes the final .rpt file,
// and optionally renders a per-FPGA-group console summary table.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/Fersis/STA-graph-algorithm/timing"
)

// DefaultTopN is the number of worst paths kept per section when the
// caller doesn't override it.
const DefaultTopN = 100

// Result bundles every path analyzer output the pipeline produced, ready
// to be summarized and written.
type Result struct {
	Setup         []*timing.SequentialReport   // FFToFF, FFToOut and InToFF paths
	Hold          []*timing.SequentialReport   // same set, reused for the hold ranking
	Combinational []*timing.CombinationalReport // InToOut paths
}

// Write sorts Setup ascending by setup slack and Hold ascending by hold
// slack (worst violations first), truncates each to the top N, sums the
// truncated violated slacks, sums every combinational delay, and writes
// the concatenated report to <outDir>/sta_<caseName>.rpt, creating outDir
// if it doesn't exist.
func Write(res Result, outDir, caseName string, topN int) (string, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	setup := append([]*timing.SequentialReport{}, res.Setup...)
	sort.Slice(setup, func(i, j int) bool { return setup[i].SetupSlack < setup[j].SetupSlack })
	setupTop := truncate(setup, topN)

	hold := append([]*timing.SequentialReport{}, res.Hold...)
	sort.Slice(hold, func(i, j int) bool { return hold[i].HoldSlack < hold[j].HoldSlack })
	holdTop := truncate(hold, topN)

	var totalSetupSlack, totalHoldSlack, totalCombinational float64
	for _, r := range setupTop {
		if r.IsSetupViolated {
			totalSetupSlack += r.SetupSlack
		}
	}
	for _, r := range holdTop {
		if r.IsHoldViolated {
			totalHoldSlack += r.HoldSlack
		}
	}
	for _, c := range res.Combinational {
		totalCombinational += c.Delay
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total setup slack %.3f ns\n", totalSetupSlack)
	fmt.Fprintf(&b, "Total hold slack %.3f ns\n", totalHoldSlack)
	fmt.Fprintf(&b, "Total combinal Port delay: %.3f ns\n\n\n", totalCombinational)

	fmt.Fprintf(&b, "Top %d setup violated paths:\n", len(setupTop))
	for i, r := range setupTop {
		fmt.Fprintf(&b, "%d   ", i+1)
		b.WriteString(r.SetupReportText)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Top %d hold violated paths:\n", len(holdTop))
	for i, r := range holdTop {
		fmt.Fprintf(&b, "%d   ", i+1)
		b.WriteString(r.HoldReportText)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Top %d combinational critical paths:\n", len(res.Combinational))
	for i, c := range res.Combinational {
		fmt.Fprintf(&b, "%d   ", i+1)
		b.WriteString(c.ReportText)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("report: creating %s: %w", outDir, err)
	}
	outPath := filepath.Join(outDir, fmt.Sprintf("sta_%s.rpt", caseName))
	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("report: writing %s: %w", outPath, err)
	}
	return outPath, nil
}

func truncate(reports []*timing.SequentialReport, n int) []*timing.SequentialReport {
	if len(reports) < n {
		return reports
	}
	return reports[:n]
}

// groupStat accumulates the worst setup/hold slack and the summed
// combinational delay observed for one FPGA group, keyed by the group tag
// rendered on the first node of each path.
type groupStat struct {
	tag                 string
	worstSetup          float64
	worstHold           float64
	combinationalDelay  float64
	haveSetup, haveHold bool
}

// PrintSummary renders one row per FPGA group touched by any path: its
// worst (most negative) setup and hold slack, and its total combinational
// delay. Grouping is keyed off each path's first node, mirroring the
// @FPGAn tag the detailed report prints beside that node.
func PrintSummary(res Result, groupOf func(node string) string) {
	stats := map[string]*groupStat{}
	order := []string{}

	get := func(tag string) *groupStat {
		s, ok := stats[tag]
		if !ok {
			s = &groupStat{tag: tag}
			stats[tag] = s
			order = append(order, tag)
		}
		return s
	}

	for _, r := range res.Setup {
		s := get(groupOf(r.Path[0]))
		if !s.haveSetup {
			s.worstSetup = r.SetupSlack
		} else {
			s.worstSetup = worseOf(s.worstSetup, r.SetupSlack)
		}
		s.haveSetup = true
	}
	for _, r := range res.Hold {
		s := get(groupOf(r.Path[0]))
		if !s.haveHold {
			s.worstHold = r.HoldSlack
		} else {
			s.worstHold = worseOf(s.worstHold, r.HoldSlack)
		}
		s.haveHold = true
	}
	for _, c := range res.Combinational {
		s := get(groupOf(c.Path[0]))
		s.combinationalDelay += c.Delay
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"fpga group", "worst setup slack", "worst hold slack", "combinational delay"})

	for _, tag := range order {
		s := stats[tag]
		table.Append([]string{
			s.tag,
			colorSlack(s.worstSetup, s.haveSetup),
			colorSlack(s.worstHold, s.haveHold),
			fmt.Sprintf("%.3f", s.combinationalDelay),
		})
	}
	table.Render()
}

func colorSlack(slack float64, have bool) string {
	if !have {
		return "-"
	}
	text := fmt.Sprintf("%.3f", slack)
	if slack < 0 {
		return color.RedString(text)
	}
	return color.GreenString(text)
}
