// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-bounds/pkg/util/assert"
	"github.com/google/go-cmp/cmp"
	log "github.com/sirupsen/logrus"
)

func Test_Config_01(t *testing.T) {
	checkConfig(t, "", Default())
}

func Test_Config_02(t *testing.T) {
	expected := Default()
	expected.Colour = "never"
	expected.Precision = 3
	//
	checkConfig(t, "colour: never\nprecision: 3\n", expected)
}

func Test_Config_03(t *testing.T) {
	expected := Default()
	expected.DefaultInclusion = "open"
	expected.MaxCallDepth = 8
	expected.LogLevel = "debug"
	//
	checkConfig(t, "default-inclusion: open\nmax-call-depth: 8\nlog-level: debug\n", expected)
	assert.True(t, !expected.Inclusive())
	assert.Equal(t, log.DebugLevel, expected.Level())
}

func Test_Config_Invalid_01(t *testing.T) {
	checkInvalid(t, "colour: sometimes\n")
}

func Test_Config_Invalid_02(t *testing.T) {
	checkInvalid(t, "default-inclusion: half\n")
}

func Test_Config_Invalid_03(t *testing.T) {
	checkInvalid(t, "precision: -2\n")
}

func Test_Config_Invalid_04(t *testing.T) {
	checkInvalid(t, "log-level: loud\n")
}

func Test_Config_Invalid_05(t *testing.T) {
	checkInvalid(t, "colours: never\n")
}

func Test_Config_Invalid_06(t *testing.T) {
	checkInvalid(t, "max-call-depth: 0\n")
}

func Test_Config_Load_01(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.yaml")
	//
	assert.NoError(t, os.WriteFile(filename, []byte("precision: 1\n"), 0644))
	//
	cfg, err := Load(filename)
	//
	assert.NoError(t, err)
	assert.Equal(t, 1, cfg.Precision)
}

func Test_Config_Load_02(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	//
	assert.True(t, err != nil, "missing explicit config file")
}

func checkConfig(t *testing.T, input string, expected Config) {
	t.Helper()
	//
	cfg, err := Parse([]byte(input))
	//
	assert.NoError(t, err)
	//
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("config mismatch (-expected +actual):\n%s", diff)
	}
}

func checkInvalid(t *testing.T, input string) {
	t.Helper()
	//
	_, err := Parse([]byte(input))
	//
	assert.True(t, err != nil, "expected invalid config")
}
