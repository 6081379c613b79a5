package sukharik

import (
	"math"
	"sync"
	"testing"
)

func TestAngleFromDeg(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
	}{
		{"zero", 0},
		{"right", 90},
		{"straight", 180},
		{"negative", -45},
		{"fractional", 12.345},
		{"large", 7200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AngleFromDeg(tt.deg)
			wantRad := tt.deg * math.Pi / 180
			if a.Rad() != wantRad {
				t.Errorf("AngleFromDeg(%v).Rad() = %v, want %v", tt.deg, a.Rad(), wantRad)
			}
			if math.Abs(a.Deg()-tt.deg) > 1e-9 {
				t.Errorf("AngleFromDeg(%v).Deg() = %v, want %v", tt.deg, a.Deg(), tt.deg)
			}
		})
	}
}

func TestAngleFromRad_Trig(t *testing.T) {
	for _, r := range []float64{0, 0.5, 1, math.Pi / 3, -2.5, 10} {
		a := AngleFromRad(r)
		if a.Rad() != r {
			t.Errorf("Rad() = %v, want %v", a.Rad(), r)
		}
		if a.Sin() != math.Sin(r) {
			t.Errorf("Sin(%v) = %v, want %v", r, a.Sin(), math.Sin(r))
		}
		if a.Cos() != math.Cos(r) {
			t.Errorf("Cos(%v) = %v, want %v", r, a.Cos(), math.Cos(r))
		}
		if a.Tan() != math.Tan(r) {
			t.Errorf("Tan(%v) = %v, want %v", r, a.Tan(), math.Tan(r))
		}
		if a.Deg() != r*180/math.Pi {
			t.Errorf("Deg(%v) = %v, want %v", r, a.Deg(), r*180/math.Pi)
		}
	}
}

func TestAngle_RepeatedReads(t *testing.T) {
	a := AngleFromRad(1.234)
	first := [4]float64{a.Deg(), a.Sin(), a.Cos(), a.Tan()}
	for i := 0; i < 3; i++ {
		got := [4]float64{a.Deg(), a.Sin(), a.Cos(), a.Tan()}
		if got != first {
			t.Fatalf("read %d = %v, want %v", i, got, first)
		}
	}
}

func TestAngle_NonFinite(t *testing.T) {
	nan := AngleFromRad(math.NaN())
	if !math.IsNaN(nan.Rad()) || !math.IsNaN(nan.Sin()) || !math.IsNaN(nan.Deg()) {
		t.Error("NaN should propagate through every projection")
	}

	inf := AngleFromRad(math.Inf(1))
	if !math.IsInf(inf.Deg(), 1) {
		t.Errorf("Deg(+Inf) = %v, want +Inf", inf.Deg())
	}
	if !math.IsNaN(inf.Cos()) {
		t.Errorf("Cos(+Inf) = %v, want NaN", inf.Cos())
	}
}

func TestAngle_TanRightAngle(t *testing.T) {
	a := AngleFromDeg(90)
	if v := a.Tan(); math.Abs(v) < 1e15 {
		t.Errorf("Tan(90°) = %v, want a very large magnitude", v)
	}
}

func TestAngle_ConcurrentReads(t *testing.T) {
	a := AngleFromDeg(60)
	want := math.Sin(60 * math.Pi / 180)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := a.Sin(); got != want {
				t.Errorf("Sin() = %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestAngle_String(t *testing.T) {
	tests := []struct {
		a    *Angle
		want string
	}{
		{AngleFromDeg(45), "45°"},
		{AngleFromDeg(12.3456), "12.35°"},
		{AngleFromRad(math.Pi), "180°"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
