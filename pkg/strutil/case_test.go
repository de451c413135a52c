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
	"testing"

	"golang.org/x/text/language"
)

func TestToUpperFirst(t *testing.T) {
	tests := []struct {
		in   string
		tag  []language.Tag
		want string
	}{
		{"hello", nil, "Hello"},
		{"Hello", nil, "Hello"},
		{"", nil, ""},
		{"1abc", nil, "1abc"},
		{"élan", nil, "Élan"},
		{"istanbul", []language.Tag{language.Turkish}, "İstanbul"},
	}
	for _, tt := range tests {
		if got := ToUpperFirst(tt.in, tt.tag...); got != tt.want {
			t.Fatalf("ToUpperFirst(%q): got %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestToLowerFirst(t *testing.T) {
	tests := []struct {
		in   string
		tag  []language.Tag
		want string
	}{
		{"HELLO", nil, "hELLO"},
		{"hello", nil, "hello"},
		{"", nil, ""},
		{"Écrire", nil, "écrire"},
		{"IRMAK", []language.Tag{language.Turkish}, "ıRMAK"},
	}
	for _, tt := range tests {
		if got := ToLowerFirst(tt.in, tt.tag...); got != tt.want {
			t.Fatalf("ToLowerFirst(%q): got %q want %q", tt.in, got, tt.want)
		}
	}
}
