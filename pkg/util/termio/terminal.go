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
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// COLOUR_AUTO enables colour only when writing to a terminal.
const COLOUR_AUTO = "auto"

// COLOUR_ALWAYS enables colour regardless of the output.
const COLOUR_ALWAYS = "always"

// COLOUR_NEVER disables colour regardless of the output.
const COLOUR_NEVER = "never"

// IsTerminal determines whether a given file is attached to a terminal.  This
// includes the Cygwin (and MSYS) pseudo terminals found on Windows, which are
// not recognised as terminals by the operating system itself.
func IsTerminal(file *os.File) bool {
	fd := file.Fd()
	//
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}

// UseColour determines whether output written to a given file should be
// coloured, according to a colour mode (i.e. "auto", "always" or "never").
// When the mode is "auto", the NO_COLOR convention is respected.
func UseColour(mode string, file *os.File) (bool, error) {
	switch mode {
	case COLOUR_ALWAYS:
		return true, nil
	case COLOUR_NEVER:
		return false, nil
	case COLOUR_AUTO:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}
		//
		return IsTerminal(file), nil
	default:
		return false, fmt.Errorf("unknown colour mode \"%s\"", mode)
	}
}
