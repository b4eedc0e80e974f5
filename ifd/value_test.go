package ifd

import "testing"

func TestScalarConstructorsAndAccessors(t *testing.T) {
	if v := ByteValue(7); v.Kind() != KindByte {
		t.Errorf("ByteValue kind = %v, want KindByte", v.Kind())
	} else if b, ok := v.Byte(); !ok || b != 7 {
		t.Errorf("Byte() = %d, %v, want 7, true", b, ok)
	}

	v := RationalValue(3, 4)
	f, ok := v.AsF64()
	if !ok || f != 0.75 {
		t.Errorf("RationalValue(3,4).AsF64() = %v, %v, want 0.75, true", f, ok)
	}
	r, ok := v.Rational()
	if !ok || r.Num != 3 || r.Den != 4 {
		t.Errorf("Rational() = %+v, %v, want {3 4}, true", r, ok)
	}

	s := AsciiValue("abc")
	if s.Count() != 4 {
		t.Errorf("AsciiValue(\"abc\").Count() = %d, want 4 (len+1)", s.Count())
	}
}

func TestRationalDenZeroIsNotAFloat(t *testing.T) {
	v := RationalValue(1, 0)
	if _, ok := v.AsF64(); ok {
		t.Errorf("a zero-denominator rational must not report a float value")
	}
}

func TestListValueRejectsEmptyAndHeterogeneous(t *testing.T) {
	if _, err := ListValue(nil); err == nil {
		t.Error("ListValue(nil) should fail")
	}
	if _, err := ListValue([]Value{ByteValue(1), ShortValue(2)}); err == nil {
		t.Error("ListValue with mixed primitive types should fail")
	}
	v, err := ListValue([]Value{ByteValue(1), ByteValue(2)})
	if err != nil {
		t.Fatal(err)
	}
	if v.Count() != 2 {
		t.Errorf("Count() = %d, want 2", v.Count())
	}
}

func TestAsListWrapsScalars(t *testing.T) {
	v := ShortValue(5)
	list := v.AsList()
	if len(list) != 1 || list[0].Kind() != KindShort {
		t.Errorf("AsList() on a scalar should return a single-element slice, got %v", list)
	}
}

func TestIfdValueRoundTrip(t *testing.T) {
	sub := New(0)
	v := IfdValue(sub)
	got, ok := v.Ifd()
	if !ok || got != sub {
		t.Errorf("Ifd() round trip failed")
	}
}

func TestPrimitiveTypeCollapsesCompositeKinds(t *testing.T) {
	sub := New(0)
	if pt := IfdValue(sub).PrimitiveType(); pt.String() != "LONG" {
		t.Errorf("IfdValue PrimitiveType = %v, want LONG", pt)
	}
	list := MustListValue([]Value{LongValue(1), LongValue(2)})
	if pt := list.PrimitiveType(); pt.String() != "LONG" {
		t.Errorf("List PrimitiveType = %v, want LONG", pt)
	}
}
