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

// Option is a functional option for configuring a Builder.
type Option func(*Builder)

// WithCapacity sets the initial capacity, in runes, of the builder.
// Negative values are ignored.
func WithCapacity(capacity int) Option {
	return func(b *Builder) {
		if capacity >= 0 && b.n == 0 {
			b.buf = make([]rune, capacity)
		}
	}
}

// WithIndentUnit sets the text pushed by each IncrementIndent.
// An empty unit is ignored.
func WithIndentUnit(unit string) Option {
	return func(b *Builder) {
		if unit != "" {
			b.indent = newIndentStack([]rune(unit))
		}
	}
}
