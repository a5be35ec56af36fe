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
package source

import (
	"testing"

	"github.com/consensys/go-bounds/pkg/util/assert"
)

func Test_Lines_01(t *testing.T) {
	checkLines(t, "", "")
}

func Test_Lines_02(t *testing.T) {
	checkLines(t, "x = 1", "x = 1")
}

func Test_Lines_03(t *testing.T) {
	checkLines(t, "x = 1\ny = 2\n", "x = 1", "y = 2", "")
}

func Test_Lines_04(t *testing.T) {
	checkLines(t, "\n\nz?", "", "", "z?")
}

func Test_Position_01(t *testing.T) {
	checkPosition(t, "x = 1\ny = z\n", NewSpan(10, 11), 2, 5)
}

func Test_Position_02(t *testing.T) {
	checkPosition(t, "x = 1", NewSpan(0, 1), 1, 1)
}

func Test_Position_03(t *testing.T) {
	// Positions beyond the end of the file belong to the last line
	checkPosition(t, "x = 1\ny =", NewSpan(9, 9), 2, 4)
}

func Test_Position_04(t *testing.T) {
	// A newline belongs to the line it terminates
	checkPosition(t, "x = 1\ny = 2", NewSpan(5, 6), 1, 6)
}

func Test_SyntaxError_01(t *testing.T) {
	srcfile := NewSourceFile("test.bds", []byte("x = 1\ny = z\n"))
	err := srcfile.SyntaxError(NewSpan(10, 11), "undefined variable")
	//
	assert.Equal(t, "test.bds:2:5: undefined variable", err.Error())
	assert.Equal(t, "y = z", err.FirstEnclosingLine().String())
	assert.Equal(t, "z", srcfile.Text(err.Span()))
}

func Test_SyntaxError_02(t *testing.T) {
	// Highlights are truncated at the end of the first line
	srcfile := NewSourceFile("test.bds", []byte("x = 1\ny = [0,\n 1]"))
	err := srcfile.SyntaxError(NewSpan(10, 17), "unbalanced")
	line, offset, length := err.Highlight()
	//
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, 4, offset)
	assert.Equal(t, 3, length)
	assert.Equal(t, "test.bds:2:5-8", err.Location())
}

func Test_SyntaxError_03(t *testing.T) {
	// Empty spans still highlight one character
	srcfile := NewSourceFile("test.bds", []byte("x ="))
	err := srcfile.SyntaxError(NewSpan(3, 3), "expected expression")
	//
	assert.Equal(t, "test.bds:1:4-5", err.Location())
}

func Test_Span_01(t *testing.T) {
	span := NewSpan(2, 4).Join(NewSpan(6, 9))
	//
	assert.Equal(t, 2, span.Start())
	assert.Equal(t, 9, span.End())
	assert.Equal(t, 7, span.Length())
}

func checkLines(t *testing.T, text string, expected ...string) {
	t.Helper()
	//
	lines := NewSourceFile("test", []byte(text)).Lines()
	//
	assert.Equal(t, len(expected), len(lines))
	//
	for i := 0; i < min(len(expected), len(lines)); i++ {
		assert.Equal(t, expected[i], lines[i].String())
		assert.Equal(t, i+1, lines[i].Number())
	}
}

func checkPosition(t *testing.T, text string, span Span, line, column int) {
	t.Helper()
	//
	err := NewSourceFile("test", []byte(text)).SyntaxError(span, "error")
	l, c := err.Position()
	//
	assert.Equal(t, line, l)
	assert.Equal(t, column, c)
}
