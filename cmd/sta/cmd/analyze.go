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

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Fersis/STA-graph-algorithm/clock"
	staconfig "github.com/Fersis/STA-graph-algorithm/config"
	"github.com/Fersis/STA-graph-algorithm/errs"
	"github.com/Fersis/STA-graph-algorithm/fpga"
	"github.com/Fersis/STA-graph-algorithm/netlist"
	"github.com/Fersis/STA-graph-algorithm/pathfind"
	"github.com/Fersis/STA-graph-algorithm/report"
	"github.com/Fersis/STA-graph-algorithm/tdm"
	"github.com/Fersis/STA-graph-algorithm/timing"
)

var (
	analyzeTopFlag     int
	analyzeOutDirFlag  string
	analyzeCaseFlag    string
	analyzeConfigFlag  string
	analyzeSummaryFlag bool
)

func init() {
	RootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().IntVar(&analyzeTopFlag, "top", staconfig.DefaultConfig().TopN, "number of worst paths kept per report section")
	analyzeCmd.Flags().StringVar(&analyzeOutDirFlag, "out-dir", "rpt", "directory the .rpt file is written into")
	analyzeCmd.Flags().StringVar(&analyzeCaseFlag, "case", "", "case name used in the report filename; defaults to the data directory's base name")
	analyzeCmd.Flags().StringVar(&analyzeConfigFlag, "config", "", "path to a YAML config overlay (tsu, thold, top_n)")
	analyzeCmd.Flags().BoolVar(&analyzeSummaryFlag, "summary", false, "print a per-FPGA-group console summary table")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <data-dir>",
	Short: "Run static timing analysis on a design directory",
	Long:  "Run static timing analysis over design.net/design.are/design.clk/design.tdm/design.node in the given directory and write a .rpt file.",
	Args:  cobra.ExactArgs(1),
	Run: func(c *cobra.Command, args []string) {
		ConfigureVerbosity()

		if err := runAnalyze(args[0], c.Flags().Changed("top")); err != nil {
			log.Fatal(err)
		}
	},
}

func runAnalyze(dataDir string, topFlagSet bool) error {
	cfg := staconfig.DefaultConfig()
	if analyzeConfigFlag != "" {
		loaded, err := staconfig.ReadConfig(analyzeConfigFlag)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if topFlagSet {
		cfg.TopN = analyzeTopFlag
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	caseName := analyzeCaseFlag
	if caseName == "" {
		caseName = filepath.Base(filepath.Clean(dataDir))
	}

	tdmFile, err := openInput(dataDir, "design.tdm")
	if err != nil {
		return err
	}
	defer tdmFile.Close()
	table, err := tdm.ParseFile(tdmFile)
	if err != nil {
		return fmt.Errorf("parsing design.tdm: %w", err)
	}

	netFile, err := openInput(dataDir, "design.net")
	if err != nil {
		return err
	}
	defer netFile.Close()
	g, err := netlist.Build(netFile, table)
	if err != nil {
		return fmt.Errorf("building netlist: %w", err)
	}

	areFile, err := openInput(dataDir, "design.are")
	if err != nil {
		return err
	}
	defer areFile.Close()
	idx, err := netlist.Classify(g, areFile)
	if err != nil {
		return fmt.Errorf("classifying netlist: %w", err)
	}

	nodeData, err := os.ReadFile(filepath.Join(dataDir, "design.node"))
	if err != nil {
		return fmt.Errorf("%w: design.node: %v", errs.ErrMissingInput, err)
	}
	groups := fpga.ParseGroups(string(nodeData))
	applyGroups(g, groups)

	clkFile, err := openInput(dataDir, "design.clk")
	if err != nil {
		return err
	}
	defer clkFile.Close()
	periods, err := clock.ParsePeriods(clkFile)
	if err != nil {
		return fmt.Errorf("parsing design.clk: %w", err)
	}

	clock.ResolveAll(g, idx.FFNodes)

	params := timing.Params{Tsu: cfg.Tsu, Thold: cfg.Thold, ClkPeriod: periods}

	var sequential []*timing.SequentialReport
	var combinational []*timing.CombinationalReport

	starts := append([]string{}, idx.FFNodes...)
	starts = append(starts, idx.InPorts...)
	for _, start := range starts {
		var walkErr error
		pathfind.Enumerate(g, start, func(path []string) {
			if walkErr != nil {
				return
			}
			class, ok := timing.Classify(g, path)
			if !ok {
				return
			}
			if class == timing.InToOut {
				combinational = append(combinational, timing.AnalyzeCombinational(g, path))
				return
			}
			rpt, err := timing.AnalyzeSequential(g, path, class, params)
			if err != nil {
				walkErr = fmt.Errorf("analyzing path %v: %w", path, err)
				return
			}
			sequential = append(sequential, rpt)
		})
		if walkErr != nil {
			return walkErr
		}
	}

	res := report.Result{Setup: sequential, Hold: sequential, Combinational: combinational}
	outPath, err := report.Write(res, analyzeOutDirFlag, caseName, cfg.TopN)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	log.Infof("wrote %s", outPath)

	if analyzeSummaryFlag {
		report.PrintSummary(res, func(node string) string { return fpgaTag(g, node) })
	}
	return nil
}

func openInput(dir, name string) (*os.File, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrMissingInput, name, err)
	}
	return f, nil
}

func applyGroups(g *netlist.Graph, groups []map[string]bool) {
	for idx, group := range groups {
		for name := range group {
			g.SetGroup(name, idx)
		}
	}
}

func fpgaTag(g *netlist.Graph, name string) string {
	group := g.Group(name)
	if group < 0 {
		return "@unassigned"
	}
	return fmt.Sprintf("@FPGA%d", group)
}
