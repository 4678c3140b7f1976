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

// Package clock parses design.clk into a clock-domain-period table and
// resolves each DFF's clock source latency by walking the clock tree.
package clock

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
)

// clkLineRE matches "CLKID   FREQ_MHZ".
var clkLineRE = regexp.MustCompile(`^\s*(?P<clk>c\d+)\s+(?P<freq>\d+(?:\.\d+)?)\s*$`)

// ParsePeriods reads design.clk and returns domain -> period (ns),
// computed as 1000 / frequency_MHz. Lines that don't match are ignored,
// matching the permissive style of the rest of the ingestion pipeline;
// the clock file has no fatal malformed-line kind of its own in the spec.
func ParsePeriods(r io.Reader) (map[string]float64, error) {
	periods := map[string]float64{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		m := clkLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		var clk, freqStr string
		for i, name := range clkLineRE.SubexpNames() {
			switch name {
			case "clk":
				clk = m[i]
			case "freq":
				freqStr = m[i]
			}
		}
		freq, err := strconv.ParseFloat(freqStr, 64)
		if err != nil {
			return nil, fmt.Errorf("clock: bad frequency %q for domain %s", freqStr, clk)
		}
		if freq == 0 {
			return nil, fmt.Errorf("clock: zero frequency for domain %s", clk)
		}
		periods[clk] = 1000.0 / freq
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return periods, nil
}
