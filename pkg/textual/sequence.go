// Copyright 2026 Benoit Pereira da Silva
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

package textual

import (
	"errors"
	"fmt"
	"reflect"
)

// UTF8String is a symbolic alias used throughout the package.
//
// A Builder stores runes, but everything that enters or leaves it as a flat
// string is UTF‑8.
type UTF8String = string

// ErrOutOfRange is returned (wrapped) by every Builder operation that receives
// an index or a range outside the logical content.
var ErrOutOfRange = errors.New("textual: index out of range")

// Sequence is the read-only contract of an indexable run of runes.
//
// Builder implements it, and so can any caller type: Builder.AppendSequence
// and Builder.Equal accept any Sequence.
type Sequence interface {
	Len() int
	RuneAt(index int) (rune, error)
}

// RuneSource is the fast-path capability of a sequence that can expose its
// content as a rune slice.
//
// Runes must return the logical content only. The returned slice is borrowed:
// consumers copy it and never modify it.
type RuneSource interface {
	Runes() []rune
}

func outOfRange(index int) error {
	return fmt.Errorf("%w: %d", ErrOutOfRange, index)
}

// runesOf converts any supported value into runes.
//
// ok is false when v is absent: untyped nil, or a nil pointer, map, slice,
// channel, func or interface.
func runesOf(v any) (rs []rune, ok bool) {
	if isNil(v) {
		return nil, false
	}
	switch s := v.(type) {
	case *Builder:
		return s.Runes(), true
	case Builder:
		return s.Runes(), true
	case RuneSource:
		return s.Runes(), true
	case string:
		return []rune(s), true
	case []rune:
		return s, true
	case Sequence:
		return sequenceRunes(s), true
	case fmt.Stringer:
		return []rune(s.String()), true
	default:
		return []rune(fmt.Sprint(v)), true
	}
}

func sequenceRunes(seq Sequence) []rune {
	n := seq.Len()
	rs := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		r, err := seq.RuneAt(i)
		if err != nil {
			// The sequence shrank while being read.
			break
		}
		rs = append(rs, r)
	}
	return rs
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
