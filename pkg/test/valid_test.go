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
package test

import (
	"testing"

	"github.com/consensys/go-bounds/pkg/test/util"
)

// ===================================================================
// Arith Tests
// ===================================================================

func Test_Valid_Arith_01(t *testing.T) {
	checkValid(t, "valid/arith_01")
}

func Test_Valid_Arith_02(t *testing.T) {
	checkValid(t, "valid/arith_02")
}

func Test_Valid_Arith_03(t *testing.T) {
	checkValid(t, "valid/arith_03")
}

func Test_Valid_Arith_04(t *testing.T) {
	checkValid(t, "valid/arith_04")
}

func Test_Valid_Arith_05(t *testing.T) {
	checkValid(t, "valid/arith_05")
}

// ===================================================================
// Branch Tests
// ===================================================================

func Test_Valid_Branch_01(t *testing.T) {
	checkValid(t, "valid/branch_01")
}

func Test_Valid_Branch_02(t *testing.T) {
	checkValid(t, "valid/branch_02")
}

func Test_Valid_Branch_03(t *testing.T) {
	checkValid(t, "valid/branch_03")
}

func Test_Valid_Branch_04(t *testing.T) {
	checkValid(t, "valid/branch_04")
}

func Test_Valid_Branch_05(t *testing.T) {
	checkValid(t, "valid/branch_05")
}

func Test_Valid_Branch_06(t *testing.T) {
	checkValid(t, "valid/branch_06")
}

func Test_Valid_Branch_07(t *testing.T) {
	checkValid(t, "valid/branch_07")
}

// ===================================================================
// Dump Tests
// ===================================================================

func Test_Valid_Dump_01(t *testing.T) {
	checkValid(t, "valid/dump_01")
}

// ===================================================================
// Function Tests
// ===================================================================

func Test_Valid_Function_01(t *testing.T) {
	checkValid(t, "valid/function_01")
}

func Test_Valid_Function_02(t *testing.T) {
	checkValid(t, "valid/function_02")
}

func Test_Valid_Function_03(t *testing.T) {
	checkValid(t, "valid/function_03")
}

// ===================================================================
// Literal Tests
// ===================================================================

func Test_Valid_Literal_01(t *testing.T) {
	checkValid(t, "valid/literal_01")
}

// ===================================================================
// Rebind Tests
// ===================================================================

func Test_Valid_Rebind_01(t *testing.T) {
	checkValid(t, "valid/rebind_01")
}

func Test_Valid_Rebind_02(t *testing.T) {
	checkValid(t, "valid/rebind_02")
}

// ===================================================================
// Scenario Tests
// ===================================================================

func Test_Valid_Scenario_01(t *testing.T) {
	checkValid(t, "valid/scenario_01")
}

func Test_Valid_Scenario_02(t *testing.T) {
	checkValid(t, "valid/scenario_02")
}

func Test_Valid_Scenario_03(t *testing.T) {
	checkValid(t, "valid/scenario_03")
}

// ===================================================================
// Unreachable Tests
// ===================================================================

func Test_Valid_Unreachable_01(t *testing.T) {
	checkValid(t, "valid/unreachable_01")
}

func Test_Valid_Unreachable_02(t *testing.T) {
	checkValid(t, "valid/unreachable_02")
}

func checkValid(t *testing.T, test string) {
	util.CheckValid(t, test)
}
