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
	"errors"
	"fmt"
	"testing"

	"github.com/consensys/go-bounds/pkg/util/source"
	"github.com/google/go-cmp/cmp"
)

// CheckInvalid checks that a given program fails with the error given by an
// "#error" attribute at the beginning of the program.  Any reports produced
// before the error arises are checked against "#expect" attributes (if any).
// nolint
func CheckInvalid(t *testing.T, test string) {
	// Enable testing each program in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, test)
	// Extract expected errors and reports for comparison
	expected, errs := ExtractAttributes(srcfile, extractSyntaxError, Skip(extractExpectedReport))
	reports, _ := ExtractAttributes(srcfile, extractExpectedReport, Skip(extractSyntaxError))
	//
	if len(errs) > 0 {
		// Report any errors encountered parsing the attributes themselves.
		t.Fatal(errors.Join(errs...))
	}
	//
	recorder, err := analyse(srcfile)
	//
	var actual []source.SyntaxError
	//
	if serr, ok := toSyntaxError(srcfile, err); ok {
		actual = append(actual, serr)
	} else if err != nil {
		t.Fatalf("%s: unexpected error %s", srcfile.Filename(), err)
	}
	//
	if diff := cmp.Diff(reports, recorder.Lines()); len(reports) > 0 && diff != "" {
		t.Errorf("%s: unexpected reports (-want +got):\n%s", srcfile.Filename(), diff)
	}
	// Check program did not analyse!
	checkExpectedErrors(t, srcfile, actual, expected)
}

func checkExpectedErrors(t *testing.T, srcfile *source.File, actual, expected []source.SyntaxError) {
	if len(actual) == 0 {
		t.Fatalf("Error %s should not have been analysed\n", srcfile.Filename())
	} else if len(expected) == 0 {
		t.Fatalf("missing any expected errors for %s", srcfile.Filename())
	}
	//
	failed := false
	// Construct initial message
	msg := fmt.Sprintf("Error %s\n", srcfile.Filename())
	// Pad out with what received
	for i := 0; i < max(len(actual), len(expected)); i++ {
		if i < len(actual) && i < len(expected) {
			expected := expected[i]
			actual := actual[i]
			// Check whether message OK
			if expected.Message() == actual.Message() && expected.Span() == actual.Span() {
				continue
			}
		}
		// Indicate error arose
		failed = true
		// actual
		if i < len(actual) {
			msg = fmt.Sprintf("%s unexpected error %s\n", msg, errorToString(actual[i]))
		}
		// expected
		if i < len(expected) {
			msg = fmt.Sprintf("%s   expected error %s\n", msg, errorToString(expected[i]))
		}
	}
	//
	if failed {
		t.Fatal(msg)
	}
}
