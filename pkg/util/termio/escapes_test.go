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
package termio

import (
	"os"
	"testing"

	"github.com/consensys/go-bounds/pkg/util/assert"
)

func Test_AnsiEscape_01(t *testing.T) {
	checkEscape(t, ResetAnsiEscape(), "\033[0m")
}

func Test_AnsiEscape_02(t *testing.T) {
	checkEscape(t, NewAnsiEscape().FgColour(TERM_RED), "\033[31m")
}

func Test_AnsiEscape_03(t *testing.T) {
	checkEscape(t, NewAnsiEscape().Bold().FgColour(TERM_CYAN).BgColour(TERM_BLACK), "\033[1;36;40m")
}

func Test_AnsiEscape_04(t *testing.T) {
	base := NewAnsiEscape().Bold()
	red := base.FgColour(TERM_RED)
	green := base.FgColour(TERM_GREEN)
	// Escapes built from a common prefix must not interfere.
	checkEscape(t, red, "\033[1;31m")
	checkEscape(t, green, "\033[1;32m")
}

func Test_AnsiEscape_05(t *testing.T) {
	text := NewAnsiEscape().Underline().Wrap("x")
	assert.Equal(t, "\033[4mx\033[0m", text)
}

func Test_UseColour_01(t *testing.T) {
	on, err := UseColour(COLOUR_ALWAYS, os.Stdout)
	assert.NoError(t, err)
	assert.True(t, on, "colour should be enabled")
	//
	off, err := UseColour(COLOUR_NEVER, os.Stdout)
	assert.NoError(t, err)
	assert.True(t, !off, "colour should be disabled")
}

func Test_UseColour_02(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	//
	on, err := UseColour(COLOUR_AUTO, os.Stdout)
	assert.NoError(t, err)
	assert.True(t, !on, "NO_COLOR should disable colour")
}

func Test_UseColour_03(t *testing.T) {
	_, err := UseColour("sometimes", os.Stdout)
	assert.True(t, err != nil, "expected error for unknown mode")
}

func checkEscape(t *testing.T, escape AnsiEscape, expected string) {
	t.Helper()
	assert.Equal(t, expected, escape.Build())
}
