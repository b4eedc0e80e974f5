package ifd

// ApproxRational finds a num/den pair approximating f by the standard
// continued-fraction algorithm, stopping once the denominator would
// exceed maxDenominator or the approximation is within float32 precision
// of f. Used wherever a bare float needs to become a Rational/
// SignedRational value: the YAML parser's scalar coercion (§4.8 step 5)
// and the typed EXIF constructors that take a float but must produce an
// on-wire rational.
func ApproxRational(f float64) (num, den int64) {
	const maxDenominator = 1 << 24

	sign := int64(1)
	if f < 0 {
		sign = -1
		f = -f
	}

	h0, h1 := int64(0), int64(1)
	k0, k1 := int64(1), int64(0)
	x := f

	for i := 0; i < 64; i++ {
		a := int64(x)
		h2 := a*h1 + h0
		k2 := a*k1 + k0
		if k2 > maxDenominator || k2 <= 0 {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2

		if k1 != 0 && rationalCloseEnough(float64(h1)/float64(k1), f) {
			break
		}

		frac := x - float64(a)
		if frac < 1e-12 {
			break
		}
		x = 1 / frac
	}
	if k1 == 0 {
		return sign * h1, 1
	}
	return sign * h1, k1
}

func rationalCloseEnough(a, b float64) bool {
	const epsilon = 1e-7
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < epsilon
}
