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

// Package outline renders nested TOML outlines as indented plain text.
//
// A document looks like:
//
//	title = "Release notes"
//	indent = "  "
//	trim = "*"
//	capitalize = true
//
//	[[section]]
//	title = "*fixes*"
//	lines = ["parser no longer loops on empty input"]
//
//	  [[section.section]]
//	  title = "internals"
//	  lines = ["grow by 75%"]
//
// Each section title is cleaned with strutil.Trim (and optionally
// strutil.ToUpperFirst) and written through a textual.Builder, one indent
// level per nesting depth.
package outline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/benoit-pereira-da-silva/textkit/pkg/strutil"
)

// ErrEmptyTitle is returned (wrapped) by Validate for a section whose title is
// empty once trimmed.
var ErrEmptyTitle = errors.New("outline: empty section title")

// ErrNilDocument is returned by Validate and Render when given no document.
var ErrNilDocument = errors.New("outline: nil document")

// Document is the root of an outline.
type Document struct {
	Title string `toml:"title"`
	// Indent is the text of one indentation level. Defaults to a tab.
	Indent string `toml:"indent"`
	// Trim is a delimiter removed from both ends of every title.
	Trim string `toml:"trim"`
	// Capitalize upper-cases the first letter of every title.
	Capitalize bool `toml:"capitalize"`
	// Language is a BCP 47 tag selecting the casing rules used by Capitalize.
	Language string    `toml:"language"`
	Sections []Section `toml:"section"`
}

// Section is a titled list of lines with optional subsections.
type Section struct {
	Title    string    `toml:"title"`
	Lines    []string  `toml:"lines"`
	Sections []Section `toml:"section"`
}

// ParseError describes a document that could not be decoded.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("outline: %s:%d:%d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("outline: %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load decodes a document from r. Unknown keys are rejected.
func Load(r io.Reader) (*Document, error) {
	return load("<reader>", r)
}

// LoadFile decodes the document stored at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening outline %s: %w", path, err)
	}
	defer f.Close()
	return load(path, f)
}

func load(source string, r io.Reader) (*Document, error) {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		pe := &ParseError{Path: source, Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		return nil, pe
	}
	return &doc, nil
}

// Validate checks every title and the language tag. All problems are
// reported at once.
func (d *Document) Validate() error {
	if d == nil {
		return ErrNilDocument
	}
	var errs []error
	if d.Language != "" {
		if _, err := language.Parse(d.Language); err != nil {
			errs = append(errs, fmt.Errorf("outline: language %q: %w", d.Language, err))
		}
	}
	for i, s := range d.Sections {
		errs = append(errs, d.validateSection(s, fmt.Sprintf("section[%d]", i))...)
	}
	return errors.Join(errs...)
}

func (d *Document) validateSection(s Section, path string) []error {
	var errs []error
	if strings.TrimSpace(strutil.Trim(s.Title, d.Trim)) == "" {
		errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyTitle, path))
	}
	for i, sub := range s.Sections {
		errs = append(errs, d.validateSection(sub, fmt.Sprintf("%s.section[%d]", path, i))...)
	}
	return errs
}

// tag returns the language used for casing, language.Und when unset or
// invalid.
func (d *Document) tag() language.Tag {
	if d.Language == "" {
		return language.Und
	}
	t, err := language.Parse(d.Language)
	if err != nil {
		return language.Und
	}
	return t
}
