// Package token implements the request-signature algorithm the speech
// upstream expects. The arithmetic must match the upstream's 32-bit
// wraparound and shift semantics byte for byte; do not simplify it.
package token

import (
	"fmt"

	"ttskit/internal/domain"
)

// Mixing programs, interpreted by work in groups of three characters
// (op, shift direction, shift amount).
const (
	byteProgram  = "+-a^+6"
	finalProgram = "+-3^+b+-f"
)

// Generate derives the request signature for text under seed. Pure: the same
// (text, seed) always yields the same signature. Text is hashed as its UTF-8
// byte sequence.
func Generate(text string, seed domain.Seed) string {
	a := seed.First
	for _, b := range []byte(text) {
		a += int64(b)
		a = work(a, byteProgram)
	}
	a = work(a, finalProgram)

	a ^= seed.Second
	if a < 0 {
		a = (a & 0x7FFFFFFF) + 0x80000000
	}
	a %= 1_000_000

	return fmt.Sprintf("%d.%d", a, a^seed.First)
}

// work runs a three-character-group program over the accumulator. Each group
// is (op, dir, shift): dir '+' is a logical 32-bit right shift, anything else
// a plain left shift; op '+' adds and wraps to 32 bits, anything else xors.
func work(a int64, program string) int64 {
	for i := 0; i+2 < len(program); i += 3 {
		c := program[i+2]
		var d int64
		if c >= 'a' {
			d = int64(c) - 87
		} else {
			d = int64(c - '0')
		}

		if program[i+1] == '+' {
			d = rshift(a, uint(d))
		} else {
			d = a << uint(d)
		}

		if program[i] == '+' {
			a = (a + d) & 0xFFFFFFFF
		} else {
			a = a ^ d
		}
	}
	return a
}

// rshift shifts right treating a as unsigned 32-bit: a conceptually negative
// value is first folded into the unsigned range.
func rshift(a int64, n uint) int64 {
	if a < 0 {
		a += 1 << 32
	}
	return a >> n
}
