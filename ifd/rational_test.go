package ifd

import "testing"

func TestApproxRational(t *testing.T) {
	cases := []struct {
		f        float64
		wantNum  int64
		wantDen  int64
	}{
		{0.5, 1, 2},
		{0.25, 1, 4},
		{-0.5, -1, 2},
	}
	for _, c := range cases {
		num, den := ApproxRational(c.f)
		if num != c.wantNum || den != c.wantDen {
			t.Errorf("ApproxRational(%v) = %d/%d, want %d/%d", c.f, num, den, c.wantNum, c.wantDen)
		}
	}
}

func TestApproxRationalCloseEnough(t *testing.T) {
	num, den := ApproxRational(1.0 / 3.0)
	got := float64(num) / float64(den)
	if d := got - 1.0/3.0; d > 1e-6 || d < -1e-6 {
		t.Errorf("ApproxRational(1/3) = %d/%d = %v, not close enough", num, den, got)
	}
}
