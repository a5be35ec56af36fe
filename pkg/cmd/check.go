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
	"os"

	"github.com/consensys/go-bounds/pkg/dsl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] file1.bds file2.bds ...",
	Short: "Check one or more Bounds programs are well-formed.",
	Long: `Check one or more Bounds programs are syntactically well-formed, without
	analysing them.  Errors are reported for every file given.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadSettings(cmd)
		srcfiles := readSourceFiles(args)
		failed := 0
		//
		for i := range srcfiles {
			srcfile := &srcfiles[i]
			//
			if program, err := dsl.Parse(srcfile, cfg.Inclusive()); err != nil {
				printError(os.Stdout, srcfile, err, cfg.colour)
				failed++
			} else {
				log.Debugf("%s: %d statement(s)", srcfile.Filename(), len(program.Statements))
			}
		}
		//
		if failed != 0 {
			fmt.Printf("%d of %d file(s) failed\n", failed, len(srcfiles))
			os.Exit(4)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
