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
	"os"
	"path/filepath"
	"testing"

	"github.com/gpustat/gpustat/pkg/errors"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestNewParser(t *testing.T) {
	tests := []struct {
		name            string
		opts            []Option
		expectedMaxSize int
	}{
		{
			name:            "default options",
			opts:            nil,
			expectedMaxSize: 64 << 10,
		},
		{
			name:            "custom max size",
			opts:            []Option{WithMaxSize(1024)},
			expectedMaxSize: 1024,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(tt.opts...)
			if p.maxSize != tt.expectedMaxSize {
				t.Errorf("maxSize = %d, want %d", p.maxSize, tt.expectedMaxSize)
			}
		})
	}
}

func TestGetValue(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{name: "plain value", content: "0x1002", expected: "0x1002"},
		{name: "trailing newline", content: "45000\n", expected: "45000"},
		{name: "surrounding whitespace", content: "  1350000000 \n", expected: "1350000000"},
		{name: "empty file", content: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestFile(t, dir, "value", tt.content)
			got, err := NewParser().GetValue(path)
			if err != nil {
				t.Fatalf("GetValue failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("GetValue = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGetValueErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := NewParser().GetValue(filepath.Join(dir, "missing"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if !errors.HasCode(err, errors.ErrCodeIO) {
			t.Errorf("expected IO_ERROR code, got %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := NewParser().GetValue("")
		if err == nil {
			t.Fatal("expected error for empty path")
		}
		if !errors.HasCode(err, errors.ErrCodeIO) {
			t.Errorf("expected IO_ERROR code, got %v", err)
		}
	})

	t.Run("oversized file", func(t *testing.T) {
		path := writeTestFile(t, dir, "big", "123456789\n")
		_, err := NewParser(WithMaxSize(4)).GetValue(path)
		if err == nil {
			t.Fatal("expected error for oversized file")
		}
		if !errors.HasCode(err, errors.ErrCodeIO) {
			t.Errorf("expected IO_ERROR code, got %v", err)
		}
	})

	t.Run("invalid utf8", func(t *testing.T) {
		path := filepath.Join(dir, "binary")
		if err := os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0o644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}
		_, err := NewParser().GetValue(path)
		if err == nil {
			t.Fatal("expected error for invalid UTF-8")
		}
		if !errors.HasCode(err, errors.ErrCodeIO) {
			t.Errorf("expected IO_ERROR code, got %v", err)
		}
	})
}

func TestReadNumberInteger(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "temp1_input", "63400\n")

	got, err := ReadNumber(NewParser(), dir, "temp1_input",
		func(milli int64) float64 { return float64(milli) / 1000 })
	if err != nil {
		t.Fatalf("ReadNumber failed: %v", err)
	}
	if got != 63.4 {
		t.Errorf("ReadNumber = %v, want 63.4", got)
	}
}

func TestReadNumberFloat(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "power1_average", "142000000\n")

	got, err := ReadNumber(NewParser(), dir, "power1_average",
		func(micro float64) float64 { return micro / 1_000_000 })
	if err != nil {
		t.Fatalf("ReadNumber failed: %v", err)
	}
	if got != 142.0 {
		t.Errorf("ReadNumber = %v, want 142.0", got)
	}
}

func TestReadNumberIdentity(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "mem_info_vram_total", "17163091968\n")

	got, err := ReadNumber(NewParser(), dir, "mem_info_vram_total",
		func(b float64) float64 { return b })
	if err != nil {
		t.Fatalf("ReadNumber failed: %v", err)
	}
	if got != 17163091968 {
		t.Errorf("ReadNumber = %v, want 17163091968", got)
	}
}

func TestReadNumberErrors(t *testing.T) {
	dir := t.TempDir()
	identity := func(f float64) float64 { return f }

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadNumber(NewParser(), dir, "missing", identity)
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if !errors.HasCode(err, errors.ErrCodeIO) {
			t.Errorf("expected IO_ERROR code, got %v", err)
		}
	})

	t.Run("non-numeric content", func(t *testing.T) {
		writeTestFile(t, dir, "garbage", "not-a-number\n")
		_, err := ReadNumber(NewParser(), dir, "garbage", identity)
		if err == nil {
			t.Fatal("expected error for non-numeric content")
		}
		if !errors.HasCode(err, errors.ErrCodeParse) {
			t.Errorf("expected PARSE_ERROR code, got %v", err)
		}
	})

	t.Run("float content for integer representation", func(t *testing.T) {
		writeTestFile(t, dir, "fractional", "63.4\n")
		_, err := ReadNumber(NewParser(), dir, "fractional",
			func(v int64) float64 { return float64(v) })
		if err == nil {
			t.Fatal("expected error for fractional integer")
		}
		if !errors.HasCode(err, errors.ErrCodeParse) {
			t.Errorf("expected PARSE_ERROR code, got %v", err)
		}
	})

	t.Run("empty content", func(t *testing.T) {
		writeTestFile(t, dir, "empty", "")
		_, err := ReadNumber(NewParser(), dir, "empty", identity)
		if err == nil {
			t.Fatal("expected error for empty content")
		}
		if !errors.HasCode(err, errors.ErrCodeParse) {
			t.Errorf("expected PARSE_ERROR code, got %v", err)
		}
	})
}
