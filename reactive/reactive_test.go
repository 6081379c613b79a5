package reactive

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestRef_SetNotifiesOnChange(t *testing.T) {
	r := NewRef(1)
	var got [][2]int
	r.Watch(func(n, o int) { got = append(got, [2]int{n, o}) })

	r.Set(2)
	r.Set(2)
	r.Set(5)

	want := [][2]int{{2, 1}, {5, 2}}
	if len(got) != len(want) {
		t.Fatalf("notifications = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d = %v, want %v", i, got[i], want[i])
		}
	}
	if r.Get() != 5 {
		t.Errorf("Get() = %d, want 5", r.Get())
	}
}

func TestRef_StopWatching(t *testing.T) {
	r := NewRef("a")
	calls := 0
	stop := r.Watch(func(string, string) { calls++ })

	r.Set("b")
	stop()
	stop()
	r.Set("c")

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRef_NaNIsSameAsNaN(t *testing.T) {
	r := NewRef(math.NaN())
	calls := 0
	r.Watch(func(float64, float64) { calls++ })

	r.Set(math.NaN())
	if calls != 0 {
		t.Errorf("storing NaN over NaN notified %d times, want 0", calls)
	}
}

func TestRef_ConcurrentSet(t *testing.T) {
	r := NewRef(0)
	var mu sync.Mutex
	calls := 0
	r.Watch(func(int, int) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			r.Set(v)
		}(i)
	}
	wg.Wait()

	if calls == 0 || calls > 50 {
		t.Errorf("calls = %d, want between 1 and 50", calls)
	}
}

func TestBoundedWatch_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		opts BoundedOptions
		set  float64
		want float64
	}{
		{"above max", BoundedOptions{Min: 0, Max: 100}, 150, 100},
		{"below min", BoundedOptions{Min: 0, Max: 100}, -5, 0},
		{"precision", BoundedOptions{Min: 0, Max: 100, Precision: 1}, 12.345, 12.3},
		{"inside", BoundedOptions{Min: 0, Max: 100}, 42, 42},
		{"rounds to whole", BoundedOptions{Min: 0, Max: 100}, 41.6, 42},
		{"skip round", BoundedOptions{Min: 0, Max: 100, SkipRound: true}, 41.6, 41.6},
		{"nan", BoundedOptions{Min: 10, Max: 100}, math.NaN(), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRef(50.0)
			BoundedWatch(r, tt.opts)

			r.Set(tt.set)
			if got := r.Get(); got != tt.want {
				t.Errorf("after Set(%v) value = %v, want %v", tt.set, got, tt.want)
			}
		})
	}
}

func TestBoundedWatch_SettlesInOneStep(t *testing.T) {
	r := NewRef(0.0)
	var seen []float64
	r.Watch(func(n, _ float64) { seen = append(seen, n) })
	BoundedWatch(r, BoundedOptions{Min: 0, Max: 100})

	r.Set(150)

	// One notification for the external write, one for the correction.
	want := []float64{150, 100}
	if len(seen) != len(want) {
		t.Fatalf("notifications = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("notification %d = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestNewBoundedRef_LaterWatcherSeesCorrectedValue(t *testing.T) {
	r, err := NewBoundedRef(50, BoundedOptions{Min: 0, Max: 100})
	if err != nil {
		t.Fatalf("NewBoundedRef() error: %v", err)
	}
	var seen [][2]float64
	r.Watch(func(n, o float64) { seen = append(seen, [2]float64{n, o}) })

	r.Set(150)

	if got := r.Get(); got != 100 {
		t.Fatalf("value = %v, want 100", got)
	}
	want := [][2]float64{{100, 150}}
	if len(seen) != len(want) {
		t.Fatalf("notifications = %v, want %v", seen, want)
	}
	if seen[0] != want[0] {
		t.Errorf("notification = %v, want %v", seen[0], want[0])
	}
}

func TestBoundedWatch_Stop(t *testing.T) {
	r := NewRef(0.0)
	stop := BoundedWatch(r, BoundedOptions{Min: 0, Max: 10})
	stop()

	r.Set(50)
	if got := r.Get(); got != 50 {
		t.Errorf("after stop value = %v, want 50", got)
	}
}

func TestBoundedOptions_CorrectIdempotent(t *testing.T) {
	opts := []BoundedOptions{
		{Min: 0, Max: 100},
		{Min: 0, Max: 100, Precision: 1},
		{Min: -1, Max: 99.96, Precision: 1},
		{Min: 0.5, Max: 2.5, Precision: 2},
	}
	inputs := []float64{-1e9, -5, 0, 0.004, 1.005, 12.345, 99.95, 150, 1e9}

	for _, o := range opts {
		for _, v := range inputs {
			once := o.Correct(v)
			if twice := o.Correct(once); twice != once {
				t.Errorf("%+v: Correct(Correct(%v)) = %v, want %v", o, v, twice, once)
			}
		}
	}
}

func TestBoundedOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    BoundedOptions
		wantErr bool
	}{
		{"ok", BoundedOptions{Min: 0, Max: 1}, false},
		{"point range", BoundedOptions{Min: 3, Max: 3}, false},
		{"inverted", BoundedOptions{Min: 2, Max: 1}, true},
		{"nan", BoundedOptions{Min: math.NaN(), Max: 1}, true},
		{"negative precision", BoundedOptions{Min: 0, Max: 1, Precision: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBounds) {
				t.Errorf("Validate() = %v, want ErrInvalidBounds", err)
			}
		})
	}
}

func TestNewBoundedRef(t *testing.T) {
	r, err := NewBoundedRef(150, BoundedOptions{Min: 0, Max: 100})
	if err != nil {
		t.Fatalf("NewBoundedRef() error: %v", err)
	}
	if got := r.Get(); got != 100 {
		t.Errorf("initial value = %v, want 100", got)
	}

	r.Set(-5)
	if got := r.Get(); got != 0 {
		t.Errorf("after Set(-5) value = %v, want 0", got)
	}

	if _, err := NewBoundedRef(1, BoundedOptions{Min: 1, Max: 0}); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("NewBoundedRef with inverted range error = %v, want ErrInvalidBounds", err)
	}
}
