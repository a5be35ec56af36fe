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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// CheckValid checks that a given program is analysed without error, and that
// the reports it produces match those expected.  Expected reports are given by
// "#expect" attributes at the beginning of the program, in the order they
// should be produced.
func CheckValid(t *testing.T, test string) {
	// Enable testing each program in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, test)
	// Extract expected reports for comparison
	expected, errs := ExtractAttributes(srcfile, extractExpectedReport)
	//
	if len(errs) > 0 {
		// Report any errors encountered parsing the attributes themselves.
		t.Fatal(errors.Join(errs...))
	} else if len(expected) == 0 {
		t.Fatalf("missing any expectations for %s", srcfile.Filename())
	}
	//
	recorder, err := analyse(srcfile)
	//
	if err != nil {
		if serr, ok := toSyntaxError(srcfile, err); ok {
			t.Fatalf("unexpected error %s", errorToString(serr))
		}
		//
		t.Fatal(err)
	}
	//
	if diff := cmp.Diff(expected, recorder.Lines()); diff != "" {
		t.Errorf("%s: unexpected reports (-want +got):\n%s", srcfile.Filename(), diff)
	}
}
