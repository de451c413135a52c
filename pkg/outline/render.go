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

package outline

import (
	"log/slog"

	"golang.org/x/text/language"

	"github.com/benoit-pereira-da-silva/textkit/pkg/strutil"
	"github.com/benoit-pereira-da-silva/textkit/pkg/textual"
)

// Option configures Render.
type Option func(*renderer)

// WithLogger sets the logger receiving debug traces. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *renderer) {
		if l != nil {
			r.log = l
		}
	}
}

type renderer struct {
	doc *Document
	tag language.Tag
	log *slog.Logger
}

// Render validates doc and renders it:
//
//   - the document title followed by a blank line,
//   - each top-level section separated from the previous one by a blank line,
//   - section titles at the depth of the section, their lines and subsections
//     one level deeper.
func Render(doc *Document, opts ...Option) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}
	r := &renderer{doc: doc, tag: doc.tag(), log: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	b := textual.New(textual.WithIndentUnit(doc.Indent))
	if title := r.title(doc.Title); title != "" {
		b.Append(title).WhiteLine()
	}
	for i, s := range doc.Sections {
		if i > 0 {
			b.WhiteLine()
		}
		r.section(b, s)
	}
	r.log.Debug("outline rendered", "sections", len(doc.Sections), "runes", b.Len())
	return b.String(), nil
}

func (r *renderer) section(b *textual.Builder, s Section) {
	b.Append(r.title(s.Title)).NewLine()
	b.IncrementIndent()
	for _, line := range s.Lines {
		b.Append(line).NewLine()
	}
	for _, sub := range s.Sections {
		r.section(b, sub)
	}
	b.DecrementIndent()
	r.log.Debug("section rendered", "title", s.Title, "lines", len(s.Lines), "depth", b.IndentDepth())
}

func (r *renderer) title(s string) string {
	s = strutil.Trim(s, r.doc.Trim)
	if r.doc.Capitalize {
		s = strutil.ToUpperFirst(s, r.tag)
	}
	return s
}
