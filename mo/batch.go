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

// Ops is the incremental pair that maintains an accumulator of type A over
// elements of type E.
//
// Remove must undo Add, and the accumulator must depend only on the set of
// elements currently added. Remove is never called for an element that is
// not in the window.
type Ops[E, A any] interface {
	Add(e E, acc *A)
	Remove(e E, acc *A)
}

// Funcs adapts a pair of functions to Ops.
type Funcs[E, A any] struct {
	AddFn    func(e E, acc *A)
	RemoveFn func(e E, acc *A)
}

func (f Funcs[E, A]) Add(e E, acc *A)    { f.AddFn(e, acc) }
func (f Funcs[E, A]) Remove(e E, acc *A) { f.RemoveFn(e, acc) }

// Batch answers every query over elems and returns the answers indexed by
// Query.ID.
//
// The accumulator starts at identity and is copied by value into the
// result after each query, so identity must be a plain value. Accumulators
// holding maps or slices need a fresh instance per call: use BatchFunc with
// a constructor and an answer projection.
//
// Bounds are not validated: every query must satisfy 0 <= L <= R < len(elems)
// and IDs must be a permutation of [0, len(queries)). Empty elems or empty
// queries yield an empty result.
func Batch[E, A any](elems []E, queries []Query, ops Ops[E, A], identity A) []A {
	return BatchFunc(elems, queries, ops, func() A { return identity }, func(acc *A) A { return *acc })
}

// BatchFunc is like Batch but starts from the accumulator returned by newAcc
// and stores answer(acc) for each query instead of a copy of the
// accumulator. newAcc is called once per call to BatchFunc.
func BatchFunc[E, A, V any](elems []E, queries []Query, ops Ops[E, A], newAcc func() A, answer func(acc *A) V) []V {
	if len(elems) == 0 || len(queries) == 0 {
		return make([]V, 0)
	}
	result := make([]V, len(queries))
	replay(elems, Order(len(elems), queries), ops, newAcc(), answer, result, 0)
	return result
}

// BatchChecked validates the queries and then runs Batch.
func BatchChecked[E, A any](elems []E, queries []Query, ops Ops[E, A], identity A) ([]A, error) {
	if err := Validate(len(elems), queries); err != nil {
		return nil, err
	}
	return Batch(elems, queries, ops, identity), nil
}

// replay slides the window [l, r), starting empty at [start, start),
// through each query of ordered and writes answer(&acc) to result[q.ID].
func replay[E, A, V any](elems []E, ordered []Query, ops Ops[E, A], acc A, answer func(acc *A) V, result []V, start int) {
	l, r := start, start
	for _, q := range ordered {
		// Grow first: l/r only cross the target after both sides cover it.
		for l > q.L {
			l--
			ops.Add(elems[l], &acc)
		}
		for r <= q.R {
			ops.Add(elems[r], &acc)
			r++
		}
		for l < q.L {
			ops.Remove(elems[l], &acc)
			l++
		}
		for r > q.R+1 {
			r--
			ops.Remove(elems[r], &acc)
		}
		result[q.ID] = answer(&acc)
	}
}

// Naive answers each query independently by adding every element of
// [L, R] to a fresh identity accumulator. It runs in O(n * m) and serves
// as the reference for Batch.
func Naive[E, A any](elems []E, queries []Query, ops Ops[E, A], identity A) []A {
	return NaiveFunc(elems, queries, ops, func() A { return identity }, func(acc *A) A { return *acc })
}

// NaiveFunc is Naive with a fresh accumulator from newAcc per query and a
// projected answer.
func NaiveFunc[E, A, V any](elems []E, queries []Query, ops Ops[E, A], newAcc func() A, answer func(acc *A) V) []V {
	if len(elems) == 0 || len(queries) == 0 {
		return make([]V, 0)
	}
	result := make([]V, len(queries))
	naive(elems, queries, ops, newAcc, answer, result)
	return result
}

func naive[E, A, V any](elems []E, queries []Query, ops Ops[E, A], newAcc func() A, answer func(acc *A) V, result []V) {
	for _, q := range queries {
		acc := newAcc()
		for i := q.L; i <= q.R; i++ {
			ops.Add(elems[i], &acc)
		}
		result[q.ID] = answer(&acc)
	}
}
