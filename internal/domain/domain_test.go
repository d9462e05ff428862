package domain

import "testing"

func TestPercentOf(t *testing.T) {
	cases := []struct {
		used, total uint64
		want        float64
	}{
		{0, 0, 0.0},
		{100, 0, 0.0}, // zero total never divides
		{0, 100, 0.0},
		{50, 100, 50.0},
		{100, 100, 100.0},
		{1 << 30, 4 << 30, 25.0},
	}

	for _, c := range cases {
		if got := PercentOf(c.used, c.total); got != c.want {
			t.Errorf("PercentOf(%d, %d) = %v, want %v", c.used, c.total, got, c.want)
		}
	}
}
