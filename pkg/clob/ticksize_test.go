package clob

import "testing"

func TestIsTickSizeSmaller(t *testing.T) {
	ticks := []TickSize{TickSize01, TickSize001, TickSize0001, TickSize00001}
	for i, a := range ticks {
		for j, b := range ticks {
			want := i > j // later entries are finer
			if got := IsTickSizeSmaller(a, b); got != want {
				t.Errorf("IsTickSizeSmaller(%s, %s) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestPriceValid(t *testing.T) {
	cases := []struct {
		price float64
		tick  TickSize
		want  bool
	}{
		{0.00001, TickSize00001, false},
		{0.0001, TickSize00001, true},
		{0.001, TickSize00001, true},
		{0.01, TickSize00001, true},
		{0.1, TickSize00001, true},
		{0.9, TickSize00001, true},
		{0.99, TickSize00001, true},
		{0.999, TickSize00001, true},
		{0.9999, TickSize00001, true},
		{0.99999, TickSize00001, false},

		{0.0001, TickSize0001, false},
		{0.001, TickSize0001, true},
		{0.999, TickSize0001, true},
		{0.9999, TickSize0001, false},

		{0.001, TickSize001, false},
		{0.01, TickSize001, true},
		{0.99, TickSize001, true},
		{0.999, TickSize001, false},

		{0.09999, TickSize01, false},
		{0.1, TickSize01, true},
		{0.5, TickSize01, true},
		{0.9, TickSize01, true},
		{0.91, TickSize01, false},
	}
	for _, c := range cases {
		if got := PriceValid(c.price, c.tick); got != c.want {
			t.Errorf("PriceValid(%v, %s) = %v, want %v", c.price, c.tick, got, c.want)
		}
	}
}

func TestPriceValidRejectsUnknownTick(t *testing.T) {
	if PriceValid(0.5, TickSize("0.05")) {
		t.Error("unknown tick size should never validate a price")
	}
}

func TestRoundingConfig(t *testing.T) {
	cases := []struct {
		tick TickSize
		want RoundConfig
	}{
		{TickSize01, RoundConfig{Price: 1, Size: 2, Amount: 3}},
		{TickSize001, RoundConfig{Price: 2, Size: 2, Amount: 4}},
		{TickSize0001, RoundConfig{Price: 3, Size: 2, Amount: 5}},
		{TickSize00001, RoundConfig{Price: 4, Size: 2, Amount: 6}},
	}
	for _, c := range cases {
		rc, err := RoundingConfig(c.tick)
		if err != nil {
			t.Fatalf("RoundingConfig(%s): %v", c.tick, err)
		}
		if rc != c.want {
			t.Errorf("RoundingConfig(%s) = %+v, want %+v", c.tick, rc, c.want)
		}
	}

	if _, err := RoundingConfig(TickSize("0.2")); err == nil {
		t.Error("expected error for unknown tick size")
	}
}
