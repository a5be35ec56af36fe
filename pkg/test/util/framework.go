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
	"os"
	"testing"

	"github.com/consensys/go-bounds/pkg/dsl"
	"github.com/consensys/go-bounds/pkg/engine"
	"github.com/consensys/go-bounds/pkg/util/source"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the Bounds test programs are found.
const TestDir = "../../testdata"

// EXTENSION is the file extension used for Bounds programs.
const EXTENSION = "bds"

// Analyse a given source file, recording every report produced.  Observe that
// pairs "a..b" are closed in all test programs.
func analyse(srcfile *source.File) (*engine.Recorder, error) {
	var recorder engine.Recorder
	//
	program, err := dsl.Parse(srcfile, true)
	//
	if err != nil {
		return &recorder, err
	}
	//
	interpreter := engine.NewInterpreter(&recorder, engine.DEFAULT_MAX_CALL_DEPTH)
	//
	return &recorder, interpreter.Run(program)
}

// Convert an error produced by analysing a given file into a syntax error.
func toSyntaxError(srcfile *source.File, err error) (source.SyntaxError, bool) {
	var dslErr *dsl.Error
	//
	if errors.As(err, &dslErr) {
		return *srcfile.SyntaxError(dslErr.Span(), dslErr.Message()), true
	}
	//
	return source.SyntaxError{}, false
}

func readSourceFile(t *testing.T, test string) *source.File {
	var filename = fmt.Sprintf("%s/%s.%s", TestDir, test, EXTENSION)
	// Read program file
	bytes, err := os.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	// Package up as source file
	return source.NewSourceFile(filename, bytes)
}

// Convert a span into a useful human readable string.
func errorToString(err source.SyntaxError) string {
	return fmt.Sprintf("%s %s", err.Location(), err.Message())
}
