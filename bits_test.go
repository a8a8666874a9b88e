package huffcoder

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseBits(t *testing.T) {
	type testRow struct {
		str   string
		bytes []byte
	}

	testData := [...]testRow{
		{str: "", bytes: nil},
		{str: "0", bytes: []byte{0x00}},
		{str: "1", bytes: []byte{0x80}},
		{str: "101", bytes: []byte{0xa0}},
		{str: "11111111", bytes: []byte{0xff}},
		{str: "111111110", bytes: []byte{0xff, 0x00}},
		{str: "0000000011", bytes: []byte{0x00, 0xc0}},
	}
	for _, row := range testData {
		t.Run(row.str, func(t *testing.T) {
			b, err := ParseBits(row.str)
			if err != nil {
				t.Fatalf("ParseBits failed: %v", err)
			}
			if b.Len() != len(row.str) {
				t.Errorf("expected %d bits, got %d", len(row.str), b.Len())
			}
			if actual := b.String(); actual != row.str {
				t.Errorf("expected %q, got %q", row.str, actual)
			}
			if actual := b.Bytes(); !bytes.Equal(actual, row.bytes) {
				t.Errorf("expected bytes %#v, got %#v", row.bytes, actual)
			}
			for index := 0; index < len(row.str); index++ {
				if expect := row.str[index] == '1'; b.At(index) != expect {
					t.Errorf("At(%d): expected %v", index, expect)
				}
			}
		})
	}
}

func TestParseBits_Invalid(t *testing.T) {
	_, err := ParseBits("0120")
	if !errors.Is(err, ErrInvalidBits) {
		t.Errorf("expected ErrInvalidBits, got %v", err)
	}
}

func TestBitsFromBytes(t *testing.T) {
	b, err := BitsFromBytes([]byte{0xff, 0xff}, 10)
	if err != nil {
		t.Fatalf("BitsFromBytes failed: %v", err)
	}
	if b.String() != "1111111111" {
		t.Errorf("expected \"1111111111\", got %q", b.String())
	}
	if !b.Equal(MustParseBits("1111111111")) {
		t.Errorf("padding bits were not cleared: %#v", b.Bytes())
	}

	if _, err := BitsFromBytes([]byte{0xff}, 9); !errors.Is(err, ErrInvalidBits) {
		t.Errorf("expected ErrInvalidBits, got %v", err)
	}
	if _, err := BitsFromBytes(nil, -1); !errors.Is(err, ErrInvalidBits) {
		t.Errorf("expected ErrInvalidBits, got %v", err)
	}
}

func TestBits_HasPrefix(t *testing.T) {
	type testRow struct {
		bits   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{bits: "", prefix: "", expect: true},
		{bits: "0", prefix: "", expect: true},
		{bits: "0", prefix: "0", expect: true},
		{bits: "0", prefix: "1", expect: false},
		{bits: "0", prefix: "00", expect: false},
		{bits: "1011", prefix: "101", expect: true},
		{bits: "1011", prefix: "100", expect: false},
		{bits: "1111111101", prefix: "111111110", expect: true},
		{bits: "1111111101", prefix: "111111111", expect: false},
	}
	for _, row := range testData {
		actual := MustParseBits(row.bits).HasPrefix(MustParseBits(row.prefix))
		if actual != row.expect {
			t.Errorf("%q.HasPrefix(%q): expected %v, got %v", row.bits, row.prefix, row.expect, actual)
		}
	}
}

func TestBits_GoString(t *testing.T) {
	expectGo := "MustParseBits(\"0110\")"
	actualGo := MustParseBits("0110").GoString()
	if expectGo != actualGo {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectGo, actualGo)
	}
}

func TestBitWriter_WriteBits(t *testing.T) {
	w := newBitWriter()
	w.WriteBits(MustParseBits("101"))
	w.WriteBits(MustParseBits("111100001"))
	w.WriteBit(true)
	b := w.Finish()

	if expect := "1011111000011"; b.String() != expect {
		t.Errorf("expected %q, got %q", expect, b.String())
	}
}
