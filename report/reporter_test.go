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

package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Fersis/STA-graph-algorithm/timing"
)

func seqReport(path []string, setupSlack, holdSlack float64) *timing.SequentialReport {
	return &timing.SequentialReport{
		Path:            path,
		SetupSlack:      setupSlack,
		HoldSlack:       holdSlack,
		IsSetupViolated: setupSlack < 0,
		IsHoldViolated:  holdSlack < 0,
		SetupReportText: "setup report for " + path[0] + "\n",
		HoldReportText:  "hold report for " + path[0] + "\n",
	}
}

func TestWriteSortsAndSumsViolations(t *testing.T) {
	res := Result{
		Setup: []*timing.SequentialReport{
			seqReport([]string{"g1", "g2"}, -1, 2),
			seqReport([]string{"g3", "g4"}, -5, 2),
			seqReport([]string{"g5", "g6"}, 3, 2),
		},
		Hold: []*timing.SequentialReport{
			seqReport([]string{"g1", "g2"}, -1, -2),
			seqReport([]string{"g3", "g4"}, -5, 1),
		},
		Combinational: []*timing.CombinationalReport{
			{Path: []string{"gp0", "gp1"}, Delay: 3, ReportText: "combinational report\n"},
		},
	}

	dir := t.TempDir()
	outPath, err := Write(res, dir, "case1", 10)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "sta_case1.rpt"), outPath)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	text := string(content)

	require.Contains(t, text, "Total setup slack -6.000 ns")
	require.Contains(t, text, "Total hold slack -2.000 ns")
	require.Contains(t, text, "Total combinal Port delay: 3.000 ns")
	require.Contains(t, text, "Top 3 setup violated paths:")
	require.Contains(t, text, "Top 2 hold violated paths:")
	require.Contains(t, text, "Top 1 combinational critical paths:")
	require.Contains(t, text, "setup report for g3")
	require.Contains(t, text, "combinational report")
}

func TestWriteTruncatesToTopN(t *testing.T) {
	var reports []*timing.SequentialReport
	for i := 0; i < 5; i++ {
		reports = append(reports, seqReport([]string{"g1", "g2"}, float64(-i), float64(-i)))
	}
	res := Result{Setup: reports, Hold: reports}

	dir := t.TempDir()
	outPath, err := Write(res, dir, "case2", 2)
	require.NoError(t, err)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "Top 2 setup violated paths:")
	require.Contains(t, string(content), "Top 2 hold violated paths:")
}

func TestWriteDefaultsTopN(t *testing.T) {
	res := Result{Setup: []*timing.SequentialReport{seqReport([]string{"g1", "g2"}, -1, -1)}}
	dir := t.TempDir()
	_, err := Write(res, dir, "case3", 0)
	require.NoError(t, err)
}

func TestWriteCreatesOutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "rpt")
	_, err := os.Stat(dir)
	require.True(t, os.IsNotExist(err))

	_, err = Write(Result{}, dir, "case4", 10)
	require.NoError(t, err)

	_, err = os.Stat(dir)
	require.NoError(t, err)
}
