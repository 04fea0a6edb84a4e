package sat

import "testing"

func TestLuby(t *testing.T) {
	want := []float64{1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8}
	for x, w := range want {
		if got := luby(2.0, int64(x)); got != w {
			t.Errorf("luby(2.0, %d) = %v, want %v", x, got, w)
		}
	}
}
