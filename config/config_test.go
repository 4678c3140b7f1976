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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestReadConfigOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sta.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tsu: 2.5\n"), 0o644))

	c, err := ReadConfig(path)
	require.NoError(t, err)
	require.InDelta(t, 2.5, c.Tsu, 1e-9)
	require.InDelta(t, 1.0, c.Thold, 1e-9) // untouched default
	require.Equal(t, 100, c.TopN)          // untouched default
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidateRejectsNegativeMargins(t *testing.T) {
	c := DefaultConfig()
	c.Tsu = -1
	require.Error(t, c.Validate())
}

func TestValidateRejectsZeroTopN(t *testing.T) {
	c := DefaultConfig()
	c.TopN = 0
	require.Error(t, c.Validate())
}
