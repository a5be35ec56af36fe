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
package dsl

import (
	"testing"

	"github.com/consensys/go-bounds/pkg/util/assert"
	"github.com/consensys/go-bounds/pkg/util/source"
)

func Test_Condition_01(t *testing.T) {
	checkRestriction(t, GT, 5, "(5, inf)")
}

func Test_Condition_02(t *testing.T) {
	checkRestriction(t, GTEQ, 5, "[5, inf)")
}

func Test_Condition_03(t *testing.T) {
	checkRestriction(t, LT, -1, "(-inf, -1)")
}

func Test_Condition_04(t *testing.T) {
	checkRestriction(t, LTEQ, -1, "(-inf, -1]")
}

func Test_Condition_05(t *testing.T) {
	checkRestriction(t, EQ, 2.5, "[2.5, 2.5]")
}

func Test_Condition_Flip_01(t *testing.T) {
	for _, c := range []Comparison{LT, LTEQ, GT, GTEQ, EQ} {
		assert.Equal(t, c, c.Flip().Flip())
	}
	//
	assert.Equal(t, GT, LT.Flip())
	assert.Equal(t, LTEQ, GTEQ.Flip())
}

func checkRestriction(t *testing.T, op Comparison, value float64, expected string) {
	t.Helper()
	//
	cond := NewCondition("x", op, value, source.NewSpan(0, 0))
	//
	assert.Equal(t, expected, cond.Restriction().String())
}
