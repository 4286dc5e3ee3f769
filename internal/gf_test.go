// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package internal

import "testing"

func TestMul2KnownValues(t *testing.T) {
	cases := []struct {
		in, want GfElem
	}{
		{0, 0},
		{1, 2},
		{511, 1022},
		{1024, 5},
		{1025, 7},
		{2047, 11 + 16*127},
	}
	for _, c := range cases {
		if got := c.in.mul2(); got != c.want {
			t.Errorf("mul2(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestMul2NeverExceedsField(t *testing.T) {
	for x := GfElem(0); x < GfSize; x++ {
		if got := x.mul2(); got >= GfSize {
			t.Fatalf("mul2(%d) = %d is out of field range", x, got)
		}
	}
}

func TestEncodeThenCheck(t *testing.T) {
	p := &GfPoly{}
	for i := range p.Coeff {
		p.Coeff[i] = GfElem(i * 37 % GfSize)
	}
	p.Coeff[0] = 0
	p.Encode()
	if !p.Check() {
		t.Fatal("polynomial does not check out after Encode")
	}
}

func TestCheckDetectsSingleCoefficientChange(t *testing.T) {
	p := &GfPoly{}
	for i := range p.Coeff {
		p.Coeff[i] = GfElem(i*37 + 1)
	}
	p.Encode()
	if !p.Check() {
		t.Fatal("expected valid checksum before mutation")
	}

	p.Coeff[5] ^= 1
	if p.Check() {
		t.Fatal("expected checksum mismatch after flipping a coefficient bit")
	}
}

func TestDataToPolyToDataRoundtrip(t *testing.T) {
	d := &Data{
		Birthday: 513,
		Features: 7,
	}
	for i := 0; i < SecretSize; i++ {
		d.Secret[i] = byte(i * 13)
	}
	d.Secret[18] &= byte(ClearMask)

	p := &GfPoly{}
	DataToPoly(d, p)

	for _, c := range p.Coeff {
		if c >= GfSize {
			t.Fatalf("coefficient %d out of field range", c)
		}
	}

	out := &Data{}
	PolyToData(p, out)

	if out.Birthday != d.Birthday {
		t.Errorf("birthday mismatch: got %d, want %d", out.Birthday, d.Birthday)
	}
	if out.Features != d.Features {
		t.Errorf("features mismatch: got %d, want %d", out.Features, d.Features)
	}
	if out.Secret != d.Secret {
		t.Errorf("secret mismatch: got %v, want %v", out.Secret, d.Secret)
	}
}

func TestDataToPolyDifferentSecretsDifferentCoeffs(t *testing.T) {
	d1 := &Data{Birthday: 1, Features: 0}
	d2 := &Data{Birthday: 1, Features: 0}
	for i := range d1.Secret {
		d1.Secret[i] = byte(i)
		d2.Secret[i] = byte(i)
	}
	d2.Secret[0] ^= 0x01

	p1, p2 := &GfPoly{}, &GfPoly{}
	DataToPoly(d1, p1)
	DataToPoly(d2, p2)

	if p1.Coeff == p2.Coeff {
		t.Fatal("expected different secrets to produce different coefficient arrays")
	}
}
