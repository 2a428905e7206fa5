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
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is reported for a query with L > R or bounds outside
	// the element sequence.
	ErrInvalidRange = errors.New("mo: invalid query range")

	// ErrInvalidID is reported for a query whose ID is out of range or
	// repeated.
	ErrInvalidID = errors.New("mo: invalid query id")
)

// RangeError describes a query whose bounds do not fit n elements.
type RangeError struct {
	Index int // position in the batch
	Query Query
	N     int
}

func (e *RangeError) Error() string {
	q := e.Query
	if q.L > q.R && q.L >= 0 && q.R < e.N {
		return fmt.Sprintf("mo: query %d has L %d > R %d", e.Index, q.L, q.R)
	}
	return fmt.Sprintf("mo: query %d [%d, %d] outside [0, %d)", e.Index, q.L, q.R, e.N)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// IDError describes a query whose ID can not index the result.
type IDError struct {
	Index int // position in the batch
	Query Query
	M     int
	Dup   bool
}

func (e *IDError) Error() string {
	if e.Dup {
		return fmt.Sprintf("mo: query %d repeats id %d", e.Index, e.Query.ID)
	}
	return fmt.Sprintf("mo: query %d id %d outside [0, %d)", e.Index, e.Query.ID, e.M)
}

func (e *IDError) Unwrap() error { return ErrInvalidID }

// Validate checks that every query satisfies 0 <= L <= R < n and that the
// IDs are a permutation of [0, len(queries)). It returns the error for the
// first offending query, or nil.
func Validate(n int, queries []Query) error {
	m := len(queries)
	seen := make([]bool, m)
	for i, q := range queries {
		if q.L < 0 || q.L > q.R || q.R >= n {
			return &RangeError{Index: i, Query: q, N: n}
		}
		if q.ID < 0 || q.ID >= m {
			return &IDError{Index: i, Query: q, M: m}
		}
		if seen[q.ID] {
			return &IDError{Index: i, Query: q, M: m, Dup: true}
		}
		seen[q.ID] = true
	}
	return nil
}
