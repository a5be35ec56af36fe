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
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-bounds/pkg/dsl"
	"github.com/consensys/go-bounds/pkg/engine"
	"github.com/consensys/go-bounds/pkg/util"
	"github.com/consensys/go-bounds/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] file1.bds file2.bds ...",
	Short: "Analyse one or more Bounds programs.",
	Long: `Analyse one or more Bounds programs, reporting the bounds of each variable
	queried.  Each file is analysed independently of the others.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadSettings(cmd)
		srcfiles := readSourceFiles(args)
		reporter := newPrinter(os.Stdout, cfg.Precision, cfg.colour)
		//
		for i := range srcfiles {
			srcfile := &srcfiles[i]
			stats := util.NewPerfStats()
			//
			program, err := dsl.Parse(srcfile, cfg.Inclusive())
			//
			if err == nil {
				interpreter := engine.NewInterpreter(reporter, cfg.MaxCallDepth)
				err = interpreter.Run(program)
			}
			//
			if err != nil {
				printError(os.Stdout, srcfile, err, cfg.colour)
				os.Exit(4)
			}
			//
			stats.Log(fmt.Sprintf("Analysing %s", srcfile.Filename()))
		}
	},
}

// Printer is a reporter which writes each entry as a line of text.
type printer struct {
	out       io.Writer
	precision int
	colour    bool
}

func newPrinter(out io.Writer, precision int, colour bool) *printer {
	return &printer{out, precision, colour}
}

// Report implementation for the engine.Reporter interface.
func (p *printer) Report(entry engine.Entry) {
	log.Debugf("reporting %s at %s", entry.Name, entry.Span)
	//
	if !p.colour {
		fmt.Fprintln(p.out, entry.Format(p.precision))
		return
	}
	//
	var (
		label = termio.NewAnsiEscape().Bold().Wrap(entry.Label())
		value string
	)
	//
	switch {
	case entry.Unreachable:
		value = termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW).Wrap("unreachable")
	case entry.Pending != nil:
		value = termio.NewAnsiEscape().FgColour(termio.TERM_MAGENTA).Wrap(entry.Pending.String() + " (pending)")
	default:
		value = termio.NewAnsiEscape().FgColour(termio.TERM_CYAN).Wrap(entry.Value.Format(p.precision))
	}
	//
	fmt.Fprintf(p.out, "%s: %s\n", label, value)
}

func init() {
	rootCmd.AddCommand(runCmd)
}
