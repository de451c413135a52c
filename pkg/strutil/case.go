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

package strutil

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToUpperFirst upper-cases the first rune of s using the casing rules of tag
// (language.Und when omitted). The rest of s is returned unchanged.
//
//	ToUpperFirst("istanbul", language.Turkish) // "İstanbul"
func ToUpperFirst(s string, tag ...language.Tag) string {
	return mapFirst(s, cases.Upper(pickTag(tag)))
}

// ToLowerFirst lower-cases the first rune of s using the casing rules of tag
// (language.Und when omitted). The rest of s is returned unchanged.
func ToLowerFirst(s string, tag ...language.Tag) string {
	return mapFirst(s, cases.Lower(pickTag(tag)))
}

func mapFirst(s string, c cases.Caser) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return c.String(s[:size]) + s[size:]
}

func pickTag(tag []language.Tag) language.Tag {
	if len(tag) == 0 {
		return language.Und
	}
	return tag[0]
}
