// Copyright 2025 go-kactl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mo

import "golang.org/x/exp/constraints"

// Number is the set of element types Sum accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum maintains the sum of the window. For floats, answers can drift from
// the naive sum by rounding since removal does not undo addition exactly.
type Sum[T Number] struct{}

func (Sum[T]) Add(e T, acc *T)    { *acc += e }
func (Sum[T]) Remove(e T, acc *T) { *acc -= e }

// Xor maintains the bitwise xor of the window.
type Xor[T constraints.Integer] struct{}

func (Xor[T]) Add(e T, acc *T)    { *acc ^= e }
func (Xor[T]) Remove(e T, acc *T) { *acc ^= e }

// DistinctState is the accumulator of Distinct: a multiset of the window
// and the number of distinct values in it.
type DistinctState[T comparable] struct {
	Counts map[T]int
	N      int
}

// NewDistinctState returns an empty accumulator for Distinct.
func NewDistinctState[T comparable]() DistinctState[T] {
	return DistinctState[T]{Counts: make(map[T]int)}
}

// DistinctCount is the answer projection for Distinct, for use with
// BatchFunc and ParallelBatch.
func DistinctCount[T comparable](acc *DistinctState[T]) int {
	return acc.N
}

// Distinct counts the distinct values in the window.
type Distinct[T comparable] struct{}

func (Distinct[T]) Add(e T, acc *DistinctState[T]) {
	if acc.Counts == nil {
		acc.Counts = make(map[T]int)
	}
	acc.Counts[e]++
	if acc.Counts[e] == 1 {
		acc.N++
	}
}

func (Distinct[T]) Remove(e T, acc *DistinctState[T]) {
	acc.Counts[e]--
	if acc.Counts[e] == 0 {
		delete(acc.Counts, e)
		acc.N--
	}
}
