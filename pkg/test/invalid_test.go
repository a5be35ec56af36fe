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
// Arity Tests
// ===================================================================

func Test_Invalid_Arity_01(t *testing.T) {
	checkInvalid(t, "invalid/arity_01")
}

// ===================================================================
// Block Tests
// ===================================================================

func Test_Invalid_Block_01(t *testing.T) {
	checkInvalid(t, "invalid/block_01")
}

func Test_Invalid_Block_02(t *testing.T) {
	checkInvalid(t, "invalid/block_02")
}

// ===================================================================
// Bounds Tests
// ===================================================================

func Test_Invalid_Bounds_01(t *testing.T) {
	checkInvalid(t, "invalid/bounds_01")
}

// ===================================================================
// Condition Tests
// ===================================================================

func Test_Invalid_Condition_01(t *testing.T) {
	checkInvalid(t, "invalid/condition_01")
}

// ===================================================================
// Domain Tests
// ===================================================================

func Test_Invalid_Domain_01(t *testing.T) {
	checkInvalid(t, "invalid/domain_01")
}

func Test_Invalid_Domain_02(t *testing.T) {
	checkInvalid(t, "invalid/domain_02")
}

// ===================================================================
// Function Tests
// ===================================================================

func Test_Invalid_Function_01(t *testing.T) {
	checkInvalid(t, "invalid/function_01")
}

// ===================================================================
// Nested Tests
// ===================================================================

func Test_Invalid_Nested_01(t *testing.T) {
	checkInvalid(t, "invalid/nested_01")
}

// ===================================================================
// Operator Tests
// ===================================================================

func Test_Invalid_Operator_01(t *testing.T) {
	checkInvalid(t, "invalid/operator_01")
}

func Test_Invalid_Operator_02(t *testing.T) {
	checkInvalid(t, "invalid/operator_02")
}

// ===================================================================
// Redeclaration Tests
// ===================================================================

func Test_Invalid_Redeclaration_01(t *testing.T) {
	checkInvalid(t, "invalid/redeclaration_01")
}

func Test_Invalid_Redeclaration_02(t *testing.T) {
	checkInvalid(t, "invalid/redeclaration_02")
}

// ===================================================================
// Undefined Tests
// ===================================================================

func Test_Invalid_Undefined_01(t *testing.T) {
	checkInvalid(t, "invalid/undefined_01")
}

func Test_Invalid_Undefined_02(t *testing.T) {
	checkInvalid(t, "invalid/undefined_02")
}

func Test_Invalid_Undefined_03(t *testing.T) {
	checkInvalid(t, "invalid/undefined_03")
}

func Test_Invalid_Undefined_04(t *testing.T) {
	checkInvalid(t, "invalid/undefined_04")
}

func checkInvalid(t *testing.T, test string) {
	util.CheckInvalid(t, test)
}
