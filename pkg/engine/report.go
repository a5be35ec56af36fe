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
package engine

import (
	"fmt"

	"github.com/consensys/go-bounds/pkg/bounds"
	"github.com/consensys/go-bounds/pkg/dsl"
	"github.com/consensys/go-bounds/pkg/util/source"
)

// Entry is a single line of a report, describing one variable at the point
// where it was queried.
type Entry struct {
	Name string
	Size uint
	// Bounds of the variable (when resolved and reachable).
	Value bounds.Bounds
	// Definition of the variable (when pending).
	Pending dsl.Expr
	// Indicates the query occurred in an unreachable arm.
	Unreachable bool
	// Statement responsible for this entry.
	Span source.Span
}

// Label returns the variable name of this entry, including its array width
// (if any).
func (e Entry) Label() string {
	if e.Size != 1 {
		return fmt.Sprintf("%s[%d]", e.Name, e.Size)
	}
	//
	return e.Name
}

// Format this entry as "name: value", where numbers are given to a fixed number
// of decimal places (or as few as necessary when precision is negative).
func (e Entry) Format(precision int) string {
	switch {
	case e.Unreachable:
		return fmt.Sprintf("%s: unreachable", e.Label())
	case e.Pending != nil:
		return fmt.Sprintf("%s: %s (pending)", e.Label(), e.Pending)
	default:
		return fmt.Sprintf("%s: %s", e.Label(), e.Value.Format(precision))
	}
}

func (e Entry) String() string {
	return e.Format(-1)
}

// Reporter receives the results of queries as they are executed.
type Reporter interface {
	Report(entry Entry)
}

// Recorder is a reporter which simply retains every entry reported.
type Recorder struct {
	Entries []Entry
}

// Report implementation for the Reporter interface.
func (r *Recorder) Report(entry Entry) {
	r.Entries = append(r.Entries, entry)
}

// Lines returns the recorded entries formatted as strings.
func (r *Recorder) Lines() []string {
	var lines = make([]string, len(r.Entries))
	//
	for i, e := range r.Entries {
		lines[i] = e.String()
	}
	//
	return lines
}
