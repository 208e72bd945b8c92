package validation

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestConfigValidator_Required(t *testing.T) {
	if err := NewConfigValidator("TestConfig").Required("Title", "").Validate(); err == nil {
		t.Error("Expected error for empty required field")
	}
	if err := NewConfigValidator("TestConfig").Required("Title", "Harmonia").Validate(); err != nil {
		t.Errorf("Expected no error for non-empty required field: %v", err)
	}
}

func TestConfigValidator_Positive(t *testing.T) {
	tests := []struct {
		value   int
		wantErr bool
	}{
		{1, false},
		{100_000, false},
		{0, true},
		{-1, true},
	}

	for _, tt := range tests {
		err := NewConfigValidator("Grid").Positive("MaxCells", tt.value).Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Positive(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestConfigValidator_PositiveFloat(t *testing.T) {
	tests := []struct {
		value   float64
		wantErr bool
	}{
		{0.002, false},
		{0, true},
		{-1, true},
		{math.Inf(1), true},
		{math.NaN(), true},
	}

	for _, tt := range tests {
		err := NewConfigValidator("Viewport").PositiveFloat("ScrollStep", tt.value).Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("PositiveFloat(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestConfigValidator_LessFloat(t *testing.T) {
	if err := NewConfigValidator("Viewport").LessFloat("MinZoom", 0.1, "MaxZoom", 10).Validate(); err != nil {
		t.Errorf("0.1 < 10 should pass: %v", err)
	}
	err := NewConfigValidator("Viewport").LessFloat("MinZoom", 10, "MaxZoom", 10).Validate()
	if err == nil {
		t.Fatal("equal bounds should fail")
	}
	if !strings.Contains(err.Error(), "Viewport.MinZoom") {
		t.Errorf("error should name the field: %v", err)
	}
}

func TestConfigValidator_RangeFloatAndOneOf(t *testing.T) {
	err := NewConfigValidator("C").
		RangeFloat("Sensitivity", 0.002, 1e-6, 0.1).
		OneOf("Level", "debug", []string{"debug", "info"}).
		Validate()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err = NewConfigValidator("C").
		RangeFloat("Sensitivity", 2, 1e-6, 0.1).
		OneOf("Level", "loud", []string{"debug", "info"}).
		Validate()
	if err == nil || !strings.Contains(err.Error(), "2 errors") {
		t.Errorf("expected 2 errors, got %v", err)
	}

	if err := NewConfigValidator("C").RangeFloat("Sensitivity", math.NaN(), 0, 1).Validate(); err == nil {
		t.Error("NaN should be outside every range")
	}
}

func TestConfigValidator_ValidateCombines(t *testing.T) {
	sentinel := errors.New("boom")
	cv := NewConfigValidator("C").
		Positive("Spacing", 0).
		Custom("Seed", func() error { return sentinel })

	err := cv.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("combined error should wrap custom errors: %v", err)
	}
	if !strings.Contains(err.Error(), "2 errors") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestConfigValidator_SingleErrorIsReturnedAsIs(t *testing.T) {
	sentinel := errors.New("boom")
	err := NewConfigValidator("C").Custom("Seed", func() error { return sentinel }).Validate()
	if !errors.Is(err, sentinel) || strings.Contains(err.Error(), "errors") {
		t.Errorf("Validate() = %v", err)
	}
}
