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

// Package textual provides Builder, a growable rune sequence with automatic
// line indentation.
//
// A unit of the sequence is one rune: there is no grapheme-cluster handling.
//
// Indentation model:
//
//   - IncrementIndent / DecrementIndent push or pop one indent unit (a tab by
//     default, see WithIndentUnit).
//   - Append, AppendRunes, AppendRune, AppendSequence, AppendValue and the
//     io.Writer methods prefix every line they start with the current
//     indentation. Content beginning with "\n" or "\r\n" does not indent the
//     empty line it terminates, and a trailing "\n" does not indent the line
//     it opens: the next append does.
//   - NewLine and WhiteLine write bare line feeds.
//   - Insert and Delete work on raw positions.
//
// Index-based operations return an error wrapping ErrOutOfRange when given a
// position outside the logical content; a failed call leaves the builder
// unchanged.
//
// Builder is not safe for concurrent use.
package textual
