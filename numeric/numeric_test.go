package numeric

import (
	"math"
	"testing"

	"golang.org/x/text/language"
)

func TestRadToDeg(t *testing.T) {
	tests := []struct {
		rad, deg float64
	}{
		{0, 0},
		{math.Pi, 180},
		{math.Pi / 2, 90},
		{-math.Pi / 4, -45},
	}
	for _, tt := range tests {
		if got := RadToDeg(tt.rad); math.Abs(got-tt.deg) > 1e-12 {
			t.Errorf("RadToDeg(%v) = %v, want %v", tt.rad, got, tt.deg)
		}
		if got := DegToRad(tt.deg); math.Abs(got-tt.rad) > 1e-12 {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.rad)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name   string
		num    float64
		places int
		want   float64
	}{
		{"binary error", 1.005, 2, 1.01},
		{"half up", 2.5, 0, 3},
		{"negative half", -2.5, 0, -2},
		{"down", 12.345, 1, 12.3},
		{"integer", 150, 0, 150},
		{"already rounded", 12.3, 1, 12.3},
		{"zero places", 3.7, 0, 4},
		{"pi", 3.14159, 3, 3.142},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.num, tt.places); got != tt.want {
				t.Errorf("Round(%v, %d) = %v, want %v", tt.num, tt.places, got, tt.want)
			}
		})
	}
}

func TestRound_Idempotent(t *testing.T) {
	for _, v := range []float64{1.005, 12.345, -7.77, 99.95, 0.1, 1e6 + 0.25} {
		for places := 0; places <= 3; places++ {
			once := Round(v, places)
			if twice := Round(once, places); twice != once {
				t.Errorf("Round(Round(%v, %d)) = %v, want %v", v, places, twice, once)
			}
		}
	}
}

func TestFloorCeil(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(float64, int) float64
		num    float64
		places int
		want   float64
	}{
		{"floor", Floor, 2.999, 2, 2.99},
		{"floor negative", Floor, -1.234, 1, -1.3},
		{"floor exact", Floor, 4, 0, 4},
		{"ceil", Ceil, 2.991, 2, 3.0},
		{"ceil negative", Ceil, -1.234, 1, -1.2},
		{"ceil exact", Ceil, 4, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.num, tt.places); got != tt.want {
				t.Errorf("%s(%v, %d) = %v, want %v", tt.name, tt.num, tt.places, got, tt.want)
			}
		})
	}
}

func TestRoundAndFormat(t *testing.T) {
	tests := []struct {
		num    float64
		places int
		want   string
	}{
		{3.14159, 2, "3.14"},
		{2, 3, "2.000"},
		{-0.5, 1, "-0.5"},
		{1234.5678, 0, "1235"},
		{2.5, 0, "3"},
		{0.5, 0, "1"},
		{0.125, 2, "0.13"},
		{-2.5, 0, "-3"},
		{1.005, 2, "1.00"},
		{0.001, 2, "0.00"},
		{0.05, 3, "0.050"},
	}
	for _, tt := range tests {
		if got := RoundAndFormat(tt.num, tt.places); got != tt.want {
			t.Errorf("RoundAndFormat(%v, %d) = %q, want %q", tt.num, tt.places, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{150, 0, 100, 100},
		{-5, 0, 100, 0},
		{50, 0, 100, 50},
		{0, 0, 100, 0},
		{100, 0, 100, 100},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
	if got := Clamp(math.NaN(), 0, 1); !math.IsNaN(got) {
		t.Errorf("Clamp(NaN) = %v, want NaN", got)
	}
}

func TestFormatLocale(t *testing.T) {
	tests := []struct {
		name   string
		tag    language.Tag
		num    float64
		places int
		want   string
	}{
		{"undetermined", language.Und, 3.14159, 2, "3.14"},
		{"english grouping", language.English, 1234.5, 2, "1,234.50"},
		{"german decimal comma", language.German, 3.14159, 2, "3,14"},
		{"rounds first", language.Und, 1.005, 2, "1.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLocale(tt.tag, tt.num, tt.places); got != tt.want {
				t.Errorf("FormatLocale(%v, %v, %d) = %q, want %q", tt.tag, tt.num, tt.places, got, tt.want)
			}
		})
	}
}

func TestParseLocale(t *testing.T) {
	tag, err := ParseLocale("")
	if err != nil || tag != language.Und {
		t.Errorf("ParseLocale(\"\") = %v, %v; want und, nil", tag, err)
	}
	tag, err = ParseLocale("de-DE")
	if err != nil {
		t.Fatalf("ParseLocale(de-DE) error: %v", err)
	}
	if base, _ := tag.Base(); base.String() != "de" {
		t.Errorf("ParseLocale(de-DE) base = %v, want de", base)
	}
	if _, err := ParseLocale("not a tag!"); err == nil {
		t.Error("ParseLocale should reject malformed tags")
	}
}
