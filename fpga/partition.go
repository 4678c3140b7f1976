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

// Package fpga parses design.node, the FPGA partitioning file, into an
// ordered list of node-name groups used purely for report annotation
// (the "@FPGAn" tag).
package fpga

import (
	"regexp"
	"strings"
)

// nodeNameRE pulls every "g..." identifier out of a partition section.
var nodeNameRE = regexp.MustCompile(`gp?\d+`)

// ParseGroups splits text on the literal token "FPGA"; every resulting
// section that contains at least one node identifier contributes one
// group (a set of those identifiers), in section order. Sections with no
// identifier, such as text before the first marker, contribute nothing.
func ParseGroups(text string) []map[string]bool {
	sections := strings.Split(text, "FPGA")
	groups := make([]map[string]bool, 0, len(sections))
	for _, section := range sections {
		names := nodeNameRE.FindAllString(section, -1)
		if len(names) == 0 {
			continue
		}
		group := make(map[string]bool, len(names))
		for _, n := range names {
			group[n] = true
		}
		groups = append(groups, group)
	}
	return groups
}
