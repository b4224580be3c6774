package transform

import (
	"fmt"
	"unicode/utf8"
)

const (
	swapName       = "swap"
	legacySwapName = "swap-legacy"
)

// Swap returns the adjacent pair swap cipher: characters 0 and 1 trade
// places, then 2 and 3, and so on, and the result is reversed.  An unpaired
// final character of odd length input stays in place before the reversal,
// so every valid UTF-8 input round-trips.  Invalid UTF-8 fails with
// ErrTransform.
func Swap() Transform {
	return swap{}
}

// LegacySwap returns the first version of the pair swap cipher.  Encoding odd length
// input drops the final character; decoding odd length input fails with
// ErrTransform since no encoding produces it.
func LegacySwap() Transform {
	return legacySwap{}
}

type swap struct{}

func (swap) String() string { return swapName }

func (swap) Encode(s string) (string, error) {
	rs, err := runesOf(swapName, s)
	if err != nil {
		return "", err
	}
	swapPairs(rs)
	reverseRunes(rs)
	return string(rs), nil
}

func (swap) Decode(s string) (string, error) {
	rs, err := runesOf(swapName, s)
	if err != nil {
		return "", err
	}
	reverseRunes(rs)
	swapPairs(rs)
	return string(rs), nil
}

type legacySwap struct{}

func (legacySwap) String() string { return legacySwapName }

func (legacySwap) Encode(s string) (string, error) {
	rs, err := runesOf(legacySwapName, s)
	if err != nil {
		return "", err
	}
	rs = rs[:len(rs)&^1]
	swapPairs(rs)
	reverseRunes(rs)
	return string(rs), nil
}

func (legacySwap) Decode(s string) (string, error) {
	rs, err := runesOf(legacySwapName, s)
	if err != nil {
		return "", err
	}
	if len(rs)%2 != 0 {
		return "", fmt.Errorf("%w: %s cannot decode odd length input (%d characters)", ErrTransform, legacySwapName, len(rs))
	}
	swapPairs(rs)
	reverseRunes(rs)
	return string(rs), nil
}

// runesOf splits s into runes, refusing input a []rune conversion would
// rewrite to U+FFFD.
func runesOf(name, s string) ([]rune, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: %s: invalid UTF-8 input", ErrTransform, name)
	}
	return []rune(s), nil
}

func swapPairs(rs []rune) {
	for i := 0; i+1 < len(rs); i += 2 {
		rs[i], rs[i+1] = rs[i+1], rs[i]
	}
}

func reverseRunes(rs []rune) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}
