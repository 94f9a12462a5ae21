// Copyright (c) 2025, the gpustat authors.  All rights reserved.
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

package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gpustat/gpustat/pkg/errors"
)

// Options for configuring the Parser.
type Option func(*Parser)

// Parser reads single-value kernel pseudo-files with customizable settings.
type Parser struct {
	maxSize int
}

// WithMaxSize sets the maximum size (in bytes) of the file to be read.
// Default is 64KB, far above anything sysfs emits for a single value.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// NewParser creates a new pseudo-file parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxSize: 64 << 10,
	}

	// Apply options
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetValue reads the file at the given path and returns its content with
// surrounding whitespace trimmed. An error with code IO_ERROR is returned
// if the file cannot be read, exceeds the maximum size, or is not valid UTF-8.
func (p *Parser) GetValue(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrCodeIO, "file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, fmt.Sprintf("failed to read file %q", path), err)
	}

	if !utf8.Valid(b) {
		return "", errors.New(errors.ErrCodeIO, fmt.Sprintf("content of file %q is not valid UTF-8", path))
	}

	if len(b) > p.maxSize {
		return "", errors.New(errors.ErrCodeIO,
			fmt.Sprintf("file %q exceeds maximum size of %d bytes", path, p.maxSize))
	}

	return strings.TrimSpace(string(b)), nil
}

// Number constrains the on-disk representations a metric file may use.
type Number interface {
	~int64 | ~float64
}

// ReadNumber reads the file at base/rel, parses the trimmed content as T,
// and applies transform to produce a value in natural units. Read failures
// carry code IO_ERROR; content that does not parse as T carries PARSE_ERROR.
func ReadNumber[T Number](p *Parser, base, rel string, transform func(T) float64) (float64, error) {
	path := filepath.Join(base, rel)

	raw, err := p.GetValue(path)
	if err != nil {
		return 0, err
	}

	v, err := parseNumber[T](raw)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeParse,
			fmt.Sprintf("invalid value %q in file %q", raw, path), err)
	}

	return transform(v), nil
}

func parseNumber[T Number](s string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	default:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return zero, err
		}
		return T(f), nil
	}
}
