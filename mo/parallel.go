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

import "github.com/ajroetker/go-kactl/contrib/workerpool"

// ParallelBatch is BatchFunc split across the workers of pool.
//
// The ordered queries are cut at bucket boundaries and every bucket is a
// separate work item, taken by the next idle worker. Each bucket is replayed
// with its own accumulator from newAcc, starting from an empty window at the
// L of its first query. Every answer is still taken from a window that
// exactly matches its query, so no merging is needed. ops must be safe to
// call from several goroutines on distinct accumulators, and newAcc must not
// return accumulators that share state.
//
// With a nil pool, or when all queries fall in one bucket, it runs
// sequentially. Results are the same as BatchFunc's.
func ParallelBatch[E, A, V any](pool *workerpool.Pool, elems []E, queries []Query, ops Ops[E, A], newAcc func() A, answer func(acc *A) V) []V {
	if len(elems) == 0 || len(queries) == 0 {
		return make([]V, 0)
	}
	ordered := Order(len(elems), queries)
	result := make([]V, len(queries))

	starts := bucketStarts(ordered, BucketSize(len(elems)))
	if pool == nil || len(starts) == 1 {
		replay(elems, ordered, ops, newAcc(), answer, result, 0)
		return result
	}

	// Bucket costs vary with how far R sweeps, so hand them out one at a
	// time. Each bucket writes only its own queries' IDs.
	pool.ParallelForAtomic(len(starts), func(i int) {
		lo := starts[i]
		hi := len(ordered)
		if i+1 < len(starts) {
			hi = starts[i+1]
		}
		run := ordered[lo:hi]
		replay(elems, run, ops, newAcc(), answer, result, run[0].L)
	})
	return result
}

// ParallelNaive is NaiveFunc with the queries split into contiguous chunks
// across the workers of pool. With a nil pool it runs sequentially.
func ParallelNaive[E, A, V any](pool *workerpool.Pool, elems []E, queries []Query, ops Ops[E, A], newAcc func() A, answer func(acc *A) V) []V {
	if pool == nil {
		return NaiveFunc(elems, queries, ops, newAcc, answer)
	}
	if len(elems) == 0 || len(queries) == 0 {
		return make([]V, 0)
	}
	result := make([]V, len(queries))
	pool.ParallelFor(len(queries), func(start, end int) {
		naive(elems, queries[start:end], ops, newAcc, answer, result)
	})
	return result
}

// bucketStarts returns the index in ordered of the first query of every
// non-empty bucket.
func bucketStarts(ordered []Query, b int) []int {
	starts := make([]int, 0, len(ordered))
	for i, q := range ordered {
		if i == 0 || q.L/b != ordered[i-1].L/b {
			starts = append(starts, i)
		}
	}
	return starts
}
