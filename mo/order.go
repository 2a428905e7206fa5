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

import (
	"cmp"
	"math"
	"slices"
)

// Query is a closed range [L, R] over the element sequence. ID is the
// position of the query in the caller's batch and selects the slot its
// answer is written to.
type Query struct {
	L, R int
	ID   int
}

// BucketSize returns ceil(sqrt(n)), or 1 when n is 0.
func BucketSize(n int) int {
	if n <= 0 {
		return 1
	}
	b := int(math.Sqrt(float64(n)))
	// Correct float rounding in either direction.
	for b*b < n {
		b++
	}
	for b > 1 && (b-1)*(b-1) >= n {
		b--
	}
	return b
}

// Compare returns the three-way query comparator for bucket size b,
// suitable for slices.SortFunc. Queries are ordered by the bucket of L.
// Inside even buckets R is ascending and inside odd buckets R is
// descending. Queries with the same bucket and R compare equal.
func Compare(b int) func(x, y Query) int {
	return func(x, y Query) int {
		bx, by := x.L/b, y.L/b
		if bx != by {
			return cmp.Compare(bx, by)
		}
		if bx%2 == 1 {
			return cmp.Compare(y.R, x.R)
		}
		return cmp.Compare(x.R, y.R)
	}
}

// Order returns a copy of queries sorted in processing order for an
// element sequence of length n. The input slice is not modified.
func Order(n int, queries []Query) []Query {
	ordered := slices.Clone(queries)
	slices.SortFunc(ordered, Compare(BucketSize(n)))
	return ordered
}

// Cost returns the total window bound movement, |dl| + |dr| summed over
// all queries, that Batch performs for these queries on n elements.
func Cost(n int, queries []Query) int {
	return replayCost(Order(n, queries))
}

// replayCost returns the bound movement of replaying ordered from an empty
// window at 0.
func replayCost(ordered []Query) int {
	total := 0
	l, r := 0, 0
	for _, q := range ordered {
		total += abs(l-q.L) + abs(r-(q.R+1))
		l, r = q.L, q.R+1
	}
	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
