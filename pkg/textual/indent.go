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

const (
	// DefaultIndent is the unit pushed by IncrementIndent unless WithIndentUnit
	// says otherwise.
	DefaultIndent = '\t'

	defaultIndentCapacity = 4
)

// indentStack holds the current indentation: the unit repeated depth times.
//
// It only ever grows or shrinks by one whole unit.
type indentStack struct {
	unit  []rune
	runes []rune
}

func newIndentStack(unit []rune) indentStack {
	if len(unit) == 0 {
		unit = []rune{DefaultIndent}
	}
	return indentStack{
		unit:  unit,
		runes: make([]rune, 0, defaultIndentCapacity*len(unit)),
	}
}

func (s *indentStack) push() {
	if len(s.unit) == 0 {
		s.unit = []rune{DefaultIndent}
	}
	s.runes = append(s.runes, s.unit...)
}

func (s *indentStack) pop() {
	if len(s.runes) == 0 {
		return
	}
	s.runes = s.runes[:len(s.runes)-len(s.unit)]
}

func (s *indentStack) len() int {
	return len(s.runes)
}

func (s *indentStack) depth() int {
	if len(s.unit) == 0 {
		return 0
	}
	return len(s.runes) / len(s.unit)
}
