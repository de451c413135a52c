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

// Package strutil holds string helpers that the standard strings package does
// not provide: trimming of multi-character delimiters, bounded suffix checks,
// nil-aware equality and first-letter case mapping.
package strutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange is returned (wrapped) when a length does not fit the string.
var ErrOutOfRange = errors.New("strutil: length out of range")

// Trim removes every leading and trailing repetition of delim from s.
//
// Unlike strings.Trim, delim is matched as a whole string, not as a set of
// characters. An empty delim returns s unchanged.
//
//	Trim("xxhelloxx", "x")     // "hello"
//	Trim("--a--b----", "--")   // "a--b"
func Trim(s, delim string) string {
	return TrimN(s, delim, -1)
}

// TrimN removes at most n repetitions of delim from each end of s.
// A negative n removes as many as match.
//
// Leading repetitions are removed first; trailing ones are searched in what
// remains, so a repetition is never removed twice.
//
//	TrimN("xxhelloxx", "x", 1) // "xhellox"
func TrimN(s, delim string, n int) string {
	size := len(delim)
	if size == 0 {
		return s
	}
	unbounded := n < 0

	start := 0
	for i := 0; (unbounded || i < n) && strings.HasPrefix(s[start:], delim); i++ {
		start += size
	}

	end := len(s)
	if end > start {
		for i := 0; (unbounded || i < n) && strings.HasSuffix(s[start:end], delim); i++ {
			end -= size
		}
	}
	return s[start:end]
}

// HasSuffixAt reports whether the first length bytes of s end with suffix,
// that is strings.HasSuffix(s[:length], suffix).
//
// It returns an error wrapping ErrOutOfRange when length is negative or larger
// than len(s).
func HasSuffixAt(s, suffix string, length int) (bool, error) {
	if length < 0 || length > len(s) {
		return false, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, length, len(s))
	}
	return strings.HasSuffix(s[:length], suffix), nil
}

// Equal reports whether a and b hold the same string. A nil pointer stands for
// an absent string.
//
// Two absent strings are always equal. When nilEqualsEmpty is true an absent
// string also equals "", otherwise it equals nothing but another absent
// string.
func Equal(a, b *string, nilEqualsEmpty bool) bool {
	if a == nil || b == nil {
		if a == b {
			return true
		}
		if !nilEqualsEmpty {
			return false
		}
		if a != nil {
			return *a == ""
		}
		return *b == ""
	}
	return *a == *b
}
