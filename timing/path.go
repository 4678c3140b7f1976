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

// Package timing classifies enumerated node paths by endpoint kind and
// computes data-arrival/required times, setup/hold slack, and the
// formatted reports for each.
package timing

import (
	"fmt"

	"github.com/Fersis/STA-graph-algorithm/netlist"
)

// Class is the endpoint classification of an enumerated path.
type Class int

const (
	// FFToFF is a flip-flop to flip-flop path.
	FFToFF Class = iota
	// FFToOut is a flip-flop to primary output path.
	FFToOut
	// InToFF is a primary input to flip-flop path.
	InToFF
	// InToOut is a primary input to primary output, purely combinational
	// path with no slack.
	InToOut
)

// Classify determines a path's endpoint class from the roles of its first
// and last nodes. ok is false if the path's endpoints don't form one of
// the four recognized classes (for example both endpoints are the same
// conflicted port).
func Classify(g *netlist.Graph, path []string) (class Class, ok bool) {
	start := g.NodeRole(path[0])
	end := g.NodeRole(path[len(path)-1])

	switch s := start.(type) {
	case netlist.DFF:
		switch e := end.(type) {
		case netlist.DFF:
			return FFToFF, true
		case netlist.Port:
			if e.Dir == netlist.PortOut {
				return FFToOut, true
			}
		}
	case netlist.Port:
		if s.Dir == netlist.PortIn {
			switch e := end.(type) {
			case netlist.DFF:
				return InToFF, true
			case netlist.Port:
				if e.Dir == netlist.PortOut {
					return InToOut, true
				}
			}
		}
	}
	return 0, false
}

// Params are the design-wide constants needed to analyze a sequential
// path.
type Params struct {
	Tsu       float64
	Thold     float64
	ClkPeriod map[string]float64
}

// SequentialReport holds the computed times, slacks, and formatted report
// text for one FFToFF, FFToOut or InToFF path.
type SequentialReport struct {
	Path               []string
	Class              Class
	DataArrivalTime    float64
	SetupRequiredTime  float64
	HoldRequiredTime   float64
	SetupSlack         float64
	HoldSlack          float64
	IsSetupViolated    bool
	IsHoldViolated     bool
	SetupReportText    string
	HoldReportText     string
}

// CombinationalReport holds the pure delay and report text for one
// InToOut path (no slack is computed for these).
type CombinationalReport struct {
	Path       []string
	Delay      float64
	ReportText string
}

// launchCapture returns, for a given class, the launch-side and
// capture-side clock source latency/report plus the capture clock
// domain. FFToOut's capture side is the launch DFF (the output port
// inherits the launch clock); InToFF's launch side is the capture DFF
// (the input port inherits the capture clock).
func launchCapture(g *netlist.Graph, path []string, class Class) (
	launchLatency float64, launchReport string,
	captureLatency float64, captureReport string,
	captureDomain string,
) {
	dffAt := func(name string) netlist.DFF {
		return g.NodeRole(name).(netlist.DFF)
	}

	switch class {
	case FFToFF:
		launch := dffAt(path[0])
		capture := dffAt(path[len(path)-1])
		return launch.ClockSourceLatency, launch.ClockDelayReport,
			capture.ClockSourceLatency, capture.ClockDelayReport, capture.ClockDomain
	case FFToOut:
		launch := dffAt(path[0])
		return launch.ClockSourceLatency, launch.ClockDelayReport,
			launch.ClockSourceLatency, launch.ClockDelayReport, launch.ClockDomain
	case InToFF:
		capture := dffAt(path[len(path)-1])
		return capture.ClockSourceLatency, capture.ClockDelayReport,
			capture.ClockSourceLatency, capture.ClockDelayReport, capture.ClockDomain
	}
	return 0, "", 0, "", ""
}

// AnalyzeSequential computes data arrival/required times and setup/hold
// slack for an FFToFF, FFToOut or InToFF path.
func AnalyzeSequential(g *netlist.Graph, path []string, class Class, p Params) (*SequentialReport, error) {
	launchLatency, launchReport, captureLatency, captureReport, captureDomain := launchCapture(g, path, class)

	period, ok := p.ClkPeriod[captureDomain]
	if !ok {
		return nil, fmt.Errorf("timing: no clock period for domain %s", captureDomain)
	}

	dat, datBody := walkDataArrival(g, path, launchLatency, launchReport)

	captureNode := path[len(path)-1]

	srt := period
	setupExpected := reportLine(captureDomain, "rise edge", period, srt)
	srt += captureLatency
	setupExpected += captureReport
	srt -= p.Tsu
	setupExpected += reportLine(captureNode, "Tsu", -p.Tsu, srt)

	hrt := captureLatency
	holdExpected := captureReport
	hrt += p.Thold
	holdExpected += reportLine(captureNode, "Thold", p.Thold, hrt)

	setupSlack := srt - dat
	holdSlack := dat - hrt

	header := formatPathHeader(path)
	arrivalSection := "    data arrival time:\n" + datBody
	expectedHeader := "    data expected time:\n"

	setupReport := header + arrivalSection + expectedHeader + setupExpected +
		separator + "\n" +
		fmt.Sprintf("setup slack %.3f\n", setupSlack) + terminator + "\n"
	holdReport := header + arrivalSection + expectedHeader + holdExpected +
		separator + "\n" +
		fmt.Sprintf("hold slack %.3f\n", holdSlack) + terminator + "\n"

	return &SequentialReport{
		Path:               path,
		Class:              class,
		DataArrivalTime:    dat,
		SetupRequiredTime:  srt,
		HoldRequiredTime:   hrt,
		SetupSlack:         setupSlack,
		HoldSlack:          holdSlack,
		IsSetupViolated:    setupSlack < 0,
		IsHoldViolated:     holdSlack < 0,
		SetupReportText:    setupReport,
		HoldReportText:     holdReport,
	}, nil
}

// AnalyzeCombinational computes the pure delay and report for an InToOut
// path. The first node (a primary input port) contributes no instance
// delay, which falls out of InstanceDelay returning 0 for ports.
func AnalyzeCombinational(g *netlist.Graph, path []string) *CombinationalReport {
	delay, body := walkDataArrival(g, path, 0, "")
	return &CombinationalReport{
		Path:       path,
		Delay:      delay,
		ReportText: formatPathHeader(path) + "    data arrival time:\n" + body,
	}
}
