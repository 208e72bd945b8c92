package validation

import (
	"math"
	"strings"
	"testing"
)

type sample struct {
	Title string  `validate:"required"`
	Step  float64 `validate:"gt=0,finite"`
	Cells int     `validate:"min=1,max=100"`
	Level string  `validate:"oneof=debug info warn error"`
}

func TestStruct(t *testing.T) {
	valid := sample{Title: "Harmonia", Step: 1, Cells: 10, Level: "info"}

	tests := []struct {
		name    string
		mutate  func(*sample)
		wantErr string
	}{
		{"valid", func(*sample) {}, ""},
		{"missing title", func(s *sample) { s.Title = "" }, "field is required"},
		{"zero step", func(s *sample) { s.Step = 0 }, "must be greater than 0"},
		{"infinite step", func(s *sample) { s.Step = math.Inf(1) }, "must be a finite number"},
		{"too few cells", func(s *sample) { s.Cells = 0 }, "must be at least 1"},
		{"too many cells", func(s *sample) { s.Cells = 101 }, "must not exceed 100"},
		{"bad level", func(s *sample) { s.Level = "loud" }, "must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := Struct(&s)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Struct() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestStructNil(t *testing.T) {
	if err := Struct(nil); err == nil {
		t.Error("expected error for nil")
	}
}
