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

// Package mo implements Mo's algorithm for answering a batch of offline
// range queries.
//
// Mo's algorithm applies when the answer for a window [l, r) can be updated
// cheaply as single elements enter or leave it, but recomputing each query
// from scratch would be too slow. The queries are reordered so that the total
// movement of the window bounds is O((n + m) * sqrt(n)), and each answer is
// written back at its original position.
//
// # Algorithm
//
// The index space is cut into buckets of size ceil(sqrt(n)). Queries are
// sorted by the bucket of L, and inside a bucket by R, ascending in even
// buckets and descending in odd ones. The alternating direction lets R sweep
// back and forth instead of rewinding to the start of the array at every new
// bucket.
//
// The window is then slid from one query to the next in four phases: grow
// left, grow right, shrink left, shrink right. Growing never removes an
// element that was not added, so the accumulator always reflects exactly the
// indices in [l, r).
//
// # Applicability
//
// The accumulator must depend only on the set of active indices, not on the
// order in which they were added. Sums, xors, frequency counts and distinct
// counts qualify; a non-commutative fold does not.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-kactl/mo"
//
//	elems := []int{1, 2, 3, 4, 5}
//	queries := []mo.Query{{L: 1, R: 3, ID: 0}, {L: 0, R: 4, ID: 1}, {L: 2, R: 2, ID: 2}}
//	sums := mo.Batch(elems, queries, mo.Sum[int]{}, 0) // [9 15 3]
//
// Custom operations can be passed as closures:
//
//	ops := mo.Funcs[int, int]{
//	    AddFn:    func(e int, acc *int) { *acc += e },
//	    RemoveFn: func(e int, acc *int) { *acc -= e },
//	}
//	sums = mo.Batch(elems, queries, ops, 0)
//
// Input bounds are not checked by Batch. Use BatchChecked or Validate when the
// queries come from an untrusted source.
package mo
