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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePeriods(t *testing.T) {
	periods, err := ParsePeriods(strings.NewReader("c1   1000\nc2   500\n"))
	require.NoError(t, err)
	require.InDelta(t, 1.0, periods["c1"], 1e-9)
	require.InDelta(t, 2.0, periods["c2"], 1e-9)
}

func TestParsePeriodsIgnoresGarbageLines(t *testing.T) {
	periods, err := ParsePeriods(strings.NewReader("not a clock line\nc1   200\n"))
	require.NoError(t, err)
	require.Len(t, periods, 1)
	require.InDelta(t, 5.0, periods["c1"], 1e-9)
}
