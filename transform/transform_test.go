package transform

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestSwapEncode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a", "a"},
		{"ab", "ab"},
		{"abcd", "cdab"},
		{"abcdef", "efcdab"},
		{"abc", "cab"},
		{"héllo", "ollhé"},
	}
	for _, tt := range tests {
		got, err := Swap().Encode(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSwapRoundTrip(t *testing.T) {
	ins := []string{
		"",
		"x",
		"SomeObject{(SomeElement[SomeValue][69][true])}\n",
		"odd length!",
		"日本語のテキスト。",
	}
	for _, tr := range []Transform{Swap(), Reverse(), Base64()} {
		for _, in := range ins {
			enc, err := tr.Encode(in)
			if err != nil {
				t.Fatalf("%s: %v", tr, err)
			}
			dec, err := tr.Decode(enc)
			if err != nil {
				t.Fatalf("%s: %v", tr, err)
			}
			if dec != in {
				t.Errorf("%s: round trip of %q gave %q", tr, in, dec)
			}
		}
	}
}

func TestInvalidUTF8(t *testing.T) {
	for _, in := range []string{"caf\xe9", "\xff", "ok\xc3"} {
		for _, tr := range []Transform{Swap(), LegacySwap(), Reverse()} {
			if got, err := tr.Encode(in); !errors.Is(err, ErrTransform) {
				t.Errorf("%s: Encode(%q) = %q, %v; want ErrTransform", tr, in, got, err)
			}
			if got, err := tr.Decode(in); !errors.Is(err, ErrTransform) {
				t.Errorf("%s: Decode(%q) = %q, %v; want ErrTransform", tr, in, got, err)
			}
		}
		enc, err := Base64().Encode(in)
		if err != nil {
			t.Fatal(err)
		}
		if dec, err := Base64().Decode(enc); err != nil || dec != in {
			t.Errorf("base64 round trip of %q gave %q, %v", in, dec, err)
		}
	}
}

func TestLegacySwap(t *testing.T) {
	even := "SomeObject{(SomeElement[SomeValue][69][true])}\n"
	if utf8.RuneCountInString(even)%2 != 0 {
		even += "\n"
	}
	enc, err := LegacySwap().Encode(even)
	if err != nil {
		t.Fatal(err)
	}
	fixed, _ := Swap().Encode(even)
	if enc != fixed {
		t.Errorf("legacy and fixed swap differ on even input: %q vs %q", enc, fixed)
	}
	dec, err := LegacySwap().Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if dec != even {
		t.Errorf("round trip gave %q", dec)
	}

	odd := "abcde"
	enc, _ = LegacySwap().Encode(odd)
	if n := utf8.RuneCountInString(enc); n != len(odd)-1 {
		t.Errorf("legacy encode of %d characters gave %d", len(odd), n)
	}
	if enc != "cdab" {
		t.Errorf("legacy encode = %q", enc)
	}
	if _, err := LegacySwap().Decode(odd); !errors.Is(err, ErrTransform) {
		t.Errorf("expected ErrTransform decoding odd input, got %v", err)
	}
}

func TestBase64DecodeError(t *testing.T) {
	if _, err := Base64().Decode("not base64!"); !errors.Is(err, ErrTransform) {
		t.Errorf("expected ErrTransform, got %v", err)
	}
}

func TestPipelineChain(t *testing.T) {
	in := "Config{(Key[value])}\n"
	p := NewPipeline(Swap(), Base64(), Reverse())
	enc, err := p.Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Swap().Encode(in)
	want, _ = Base64().Encode(want)
	want, _ = Reverse().Encode(want)
	if enc != want {
		t.Errorf("chain encode = %q, want %q", enc, want)
	}
	dec, err := p.Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if dec != in {
		t.Errorf("chain decode = %q", dec)
	}
	if got, _ := Apply(in, nil, Encode); got != in {
		t.Errorf("empty pipeline should be the identity, got %q", got)
	}
}

func TestPipelineConcat(t *testing.T) {
	in := "abcd"
	p := NewPipeline(Swap(), Reverse()).WithMode(Concat)
	enc, err := p.Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	if enc != "cdab"+"dcba" {
		t.Errorf("concat encode = %q", enc)
	}
	// decode applies each transform to the same input and keeps the last.
	dec, err := p.Decode("dcba")
	if err != nil {
		t.Fatal(err)
	}
	if dec != "abcd" {
		t.Errorf("concat decode = %q", dec)
	}

	single := NewPipeline(Swap()).WithMode(Concat)
	enc, _ = single.Encode(in)
	if dec, _ := single.Decode(enc); dec != in {
		t.Errorf("single transform concat round trip = %q", dec)
	}
}

func TestPipelineError(t *testing.T) {
	p := NewPipeline(Reverse(), LegacySwap())
	_, err := p.Decode("abc")
	if !errors.Is(err, ErrTransform) {
		t.Fatalf("expected ErrTransform, got %v", err)
	}
	var te *Error
	if !errors.As(err, &te) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if te.Transform != "swap-legacy" || te.Index != 1 || te.Direction != Decode {
		t.Errorf("unexpected error fields %+v", *te)
	}
	if !strings.Contains(err.Error(), "swap-legacy decode (#1)") {
		t.Errorf("error text: %v", err)
	}
}

func TestModeText(t *testing.T) {
	var m Mode
	if err := m.UnmarshalText([]byte("Concat")); err != nil || m != Concat {
		t.Errorf("UnmarshalText(Concat) = %v, %v", m, err)
	}
	if err := m.UnmarshalText([]byte("zip")); err == nil {
		t.Errorf("expected error for unknown mode")
	}
	if d, _ := Chain.MarshalText(); string(d) != "chain" {
		t.Errorf("MarshalText = %q", d)
	}
}

func TestRegistry(t *testing.T) {
	want := []string{"base64", "reverse", "swap", "swap-legacy"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if err := Register(Swap()); !errors.Is(err, ErrTransformExists) {
		t.Errorf("expected ErrTransformExists, got %v", err)
	}
	ts, err := ParseList(" swap , base64,")
	if err != nil {
		t.Fatal(err)
	}
	if got := NewPipeline(ts...).String(); got != "swap,base64" {
		t.Errorf("parsed pipeline = %q", got)
	}
	if _, err := ParseList("swap,rot13"); !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}
	if ts, err := ParseList(""); err != nil || len(ts) != 0 {
		t.Errorf("ParseList(\"\") = %v, %v", ts, err)
	}
}
