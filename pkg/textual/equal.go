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

import "slices"

// Equal reports whether other holds exactly the runes of b.
//
// other may be a *Builder, any RuneSource or Sequence, a string or a []rune.
// Any other value, including nil, is never equal.
func (b *Builder) Equal(other any) bool {
	switch o := other.(type) {
	case *Builder:
		if o == b {
			return true
		}
		if o == nil {
			return false
		}
		return slices.Equal(b.Runes(), o.Runes())
	case RuneSource:
		return slices.Equal(b.Runes(), o.Runes())
	case string:
		i := 0
		for _, r := range o {
			if i >= b.n || b.buf[i] != r {
				return false
			}
			i++
		}
		return i == b.n
	case []rune:
		return slices.Equal(b.Runes(), o)
	case Sequence:
		if o.Len() != b.n {
			return false
		}
		for i := 0; i < b.n; i++ {
			r, err := o.RuneAt(i)
			if err != nil || r != b.buf[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Hash returns the polynomial hash of the content:
// h = 31*h + r over every rune, wrapping on int32 overflow.
//
// Builders that are Equal have the same Hash.
func (b *Builder) Hash() int32 {
	var h int32
	for _, r := range b.buf[:b.n] {
		h = 31*h + r
	}
	return h
}
