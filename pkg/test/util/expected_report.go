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
package util

import (
	"fmt"
	"strings"

	"github.com/consensys/go-bounds/pkg/util/source"
)

// EXPECT_PREFIX identifies an expected report, given as "#expect:name:value"
// where value is written exactly as it would be reported (e.g. "[0, 10]",
// "unreachable" or "x + 1 (pending)").
const EXPECT_PREFIX = "#expect:"

// Extract an expected report line from a given line in the source file.
func extractExpectedReport(lineno int, lines []source.Line, _ *source.File) (bool, string, error) {
	var contents = lines[lineno].String()
	//
	if !strings.HasPrefix(contents, EXPECT_PREFIX) {
		return false, "", nil
	}
	//
	name, value, ok := strings.Cut(strings.TrimPrefix(contents, EXPECT_PREFIX), ":")
	//
	if !ok || name == "" || strings.TrimSpace(value) == "" {
		return true, "", fmt.Errorf("line %d: malformed expectation \"%s\", should be e.g. \"#expect:x:[0, 1]\"",
			lineno+1, contents)
	}
	//
	return true, fmt.Sprintf("%s: %s", name, strings.TrimSpace(value)), nil
}
