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
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-bounds/pkg/config"
	"github.com/consensys/go-bounds/pkg/dsl"
	"github.com/consensys/go-bounds/pkg/util/source"
	"github.com/consensys/go-bounds/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected signed integer, or panic if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Settings determined from the configuration file and command-line flags.
type settings struct {
	config.Config
	// Whether or not to colour the output.
	colour bool
}

// Load the configuration file (if any), and then apply any flags given on the
// command line over the top.  This also sets the logging level.
func loadSettings(cmd *cobra.Command) settings {
	cfg, err := config.Load(GetString(cmd, "config"))
	// Sanity check for errors
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// Flags take precedence
	if cmd.Flags().Changed("colour") {
		cfg.Colour = GetString(cmd, "colour")
	}
	//
	if cmd.Flags().Changed("precision") {
		cfg.Precision = GetInt(cmd, "precision")
	}
	//
	if GetFlag(cmd, "open") {
		cfg.DefaultInclusion = "open"
	}
	//
	if cmd.Flags().Changed("max-depth") {
		cfg.MaxCallDepth = GetUint(cmd, "max-depth")
	}
	//
	if GetFlag(cmd, "verbose") {
		cfg.LogLevel = "debug"
	}
	//
	if err = cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.SetLevel(cfg.Level())
	//
	colour, err := termio.UseColour(cfg.Colour, os.Stdout)
	// Validate already checked the mode
	if err != nil {
		panic(err)
	}
	//
	return settings{cfg, colour}
}

// Read a given set of source files, or exit if any cannot be read.
func readSourceFiles(filenames []string) []source.File {
	for _, n := range filenames {
		log.Debug(fmt.Sprintf("including source file %s", n))
	}
	//
	srcfiles, err := source.ReadFiles(filenames...)
	// Sanity check for errors
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	return srcfiles
}

// Convert an error arising from a given source file into a syntax error, where
// possible.  Errors not associated with any part of the file are returned as is.
func toSyntaxError(srcfile *source.File, err error) (*source.SyntaxError, bool) {
	var dslErr *dsl.Error
	//
	if errors.As(err, &dslErr) {
		msg := fmt.Sprintf("%s (%s)", dslErr.Message(), strings.ToLower(dslErr.Kind.String()))
		return srcfile.SyntaxError(dslErr.Span(), msg), true
	}
	//
	return nil, false
}

// Print an error arising from a given source file, with appropriate
// highlighting where the error is associated with part of the file.
func printError(out io.Writer, srcfile *source.File, err error, colour bool) {
	if serr, ok := toSyntaxError(srcfile, err); ok {
		printSyntaxError(out, serr, colour)
	} else {
		fmt.Fprintf(out, "%s: %s\n", srcfile.Filename(), err)
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, err *source.SyntaxError, colour bool) {
	line, offset, length := err.Highlight()
	// Print error + line number
	fmt.Fprintf(out, "%s %s\n", err.Location(), err.Message())
	// Print separator line
	fmt.Fprintln(out)
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", offset))
	// Print highlight
	highlight := strings.Repeat("^", length)
	//
	if colour {
		highlight = termio.NewAnsiEscape().Bold().FgColour(termio.TERM_RED).Wrap(highlight)
	}
	//
	fmt.Fprintln(out, highlight)
}
