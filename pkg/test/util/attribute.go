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
	"github.com/consensys/go-bounds/pkg/util/source"
)

// Attribute provides a generic mechanism for extracting attributes from the
// beginning of a file.  An attribute parses a given line (assuming it has
// matched) producing an item or, potentially, an error.
type Attribute[T any] func(int, []source.Line, *source.File) (bool, T, error)

// Matcher recognises lines belonging to the block of attributes at the
// beginning of a source file, without producing any items for them.
type Matcher func(int, []source.Line, *source.File) (bool, error)

// ExtractAttributes extracts any matching attributes at the beginning of a
// source file.  Lines recognised by one of the other matchers are permitted
// within the block, but contribute no items.  Extraction stops at the first
// line which neither the attribute nor any matcher recognises.
func ExtractAttributes[T any](srcfile *source.File, attribute Attribute[T], others ...Matcher) ([]T, []error) {
	var (
		// Calculate the character offset of each line
		lines = srcfile.Lines()
		// Now construct items
		items []T
		//
		errors []error
		//
		matched = true
	)
	// scan file line-by-line until no more attributes found
	for i := 0; i < len(lines) && matched; i++ {
		ok, item, err := attribute(i, lines, srcfile)
		//
		if err != nil {
			errors = append(errors, err)
		} else if ok {
			items = append(items, item)
		}
		//
		matched = ok
		//
		for _, other := range others {
			ok, err := other(i, lines, srcfile)
			//
			if err != nil {
				errors = append(errors, err)
			}
			//
			matched = matched || ok
		}
	}
	//
	return items, errors
}

// Skip converts an attribute into a matcher, such that its lines can be
// interleaved with those of interest.  Any errors arising from the attribute
// are still reported.
func Skip[T any](attribute Attribute[T]) Matcher {
	return func(lineno int, lines []source.Line, srcfile *source.File) (bool, error) {
		matched, _, err := attribute(lineno, lines, srcfile)
		//
		return matched, err
	}
}
