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
	"fmt"
	"os"
	"sort"
)

// ReadFiles reads a given set of source files, or produces an error.
func ReadFiles(filenames ...string) ([]File, error) {
	files := make([]File, len(filenames))
	//
	for i, n := range filenames {
		bytes, err := os.ReadFile(n)
		if err != nil {
			return nil, err
		}
		//
		files[i] = *NewSourceFile(n, bytes)
	}
	//
	return files, nil
}

// Line provides information about a given line within the original string.
// This includes the line number (counting from 1), and the span of the line
// within the original string.  The span excludes the terminating newline.
type Line struct {
	// Original text
	text []rune
	// Span within original text of this line.
	span Span
	// Line number of this line (counting from 1).
	number int
}

// Get the string representing this line.
func (p Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line in a string
// has line number 1.
func (p Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original string.
func (p Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p Line) Length() int {
	return p.span.Length()
}

// Span returns the span of this line within the original string.
func (p Line) Span() Span {
	return p.span
}

// File represents a given source file (typically stored on disk).
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	// Convert bytes into runes for easier parsing
	contents := []rune(string(bytes))
	return &File{filename, contents}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text returns the original text covered by a given span.
func (s *File) Text(span Span) string {
	return string(s.contents[span.start:span.end])
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// Lines splits this source file into its physical lines.
func (s *File) Lines() []Line {
	var (
		lines []Line
		start = 0
	)
	//
	for i, c := range s.contents {
		if c == '\n' {
			lines = append(lines, Line{s.contents, Span{start, i}, len(lines) + 1})
			start = i + 1
		}
	}
	// Last line (which may be empty)
	return append(lines, Line{s.contents, Span{start, len(s.contents)}, len(lines) + 1})
}

// FindFirstEnclosingLine determines the first line in this source file which
// encloses the start of a span, where a line encloses its terminating newline.
// If the position is beyond the bounds of the source file then the last line
// is returned.  The returned line need not enclose the entire span.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	lines := s.Lines()
	// Lines are ordered, hence find first ending at or after the span.
	i := sort.Search(len(lines), func(i int) bool {
		return lines[i].span.end >= span.start
	})
	//
	return lines[min(i, len(lines)-1)]
}

// SyntaxError is a structured error which retains the index into the original
// string where an error occurred, along with an error message.
type SyntaxError struct {
	srcfile *File
	// Byte index into string being parsed where error arose.
	span Span
	// Error message being reported
	msg string
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Position returns the line number and column (both counting from 1) at which
// this error starts.
func (p *SyntaxError) Position() (line int, column int) {
	enclosing, offset, _ := p.Highlight()
	//
	return enclosing.Number(), 1 + offset
}

// Highlight determines the line on which this error starts, along with the
// offset and length of the text to highlight on that line.  The highlight is
// truncated at the end of the line, but always covers at least one character.
func (p *SyntaxError) Highlight() (line Line, offset int, length int) {
	line = p.FirstEnclosingLine()
	offset = p.span.start - line.Start()
	length = max(1, min(line.Length()-offset, p.span.Length()))
	//
	return line, offset, length
}

// Location describes where this error occurs as "file:line:start-end", where
// columns count from 1 and the end is exclusive.
func (p *SyntaxError) Location() string {
	line, offset, length := p.Highlight()
	//
	return fmt.Sprintf("%s:%d:%d-%d", p.srcfile.Filename(), line.Number(), 1+offset, 1+offset+length)
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	line, column := p.Position()
	//
	return fmt.Sprintf("%s:%d:%d: %s", p.srcfile.Filename(), line, column, p.Message())
}

// FirstEnclosingLine determines the first line in this source file to which
// this error is associated. Observe that, if the position is beyond the bounds
// of the source file then the last physical line is returned.  Also, the
// returned line is not guaranteed to enclose the entire span, as these can
// cross multiple lines.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}
