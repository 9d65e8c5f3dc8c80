package flagutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// WindowBitsFlag parses a decompression window exponent: 8..15 for
// zlib-wrapped streams, or -15..-8 for raw DEFLATE streams. This type
// implements the flag.Value interface.
type WindowBitsFlag struct {
	val int
}

func (f *WindowBitsFlag) Bits() int {
	return f.val
}

func (f *WindowBitsFlag) Set(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.New("not an integer")
	}
	abs := n
	if abs < 0 {
		abs = -abs
	}
	if abs < 8 || abs > 15 {
		return errors.New("window bits must be in 8..15 or -15..-8")
	}
	f.val = n
	return nil
}

func (f *WindowBitsFlag) String() string {
	return strconv.Itoa(f.val)
}

// SizeFlag parses a byte count with an optional K, M or G suffix
// (binary multiples). This type implements the flag.Value interface.
type SizeFlag struct {
	val int64
}

func (f *SizeFlag) Bytes() int64 {
	return f.val
}

func (f *SizeFlag) Set(v string) error {
	mult := int64(1)
	switch {
	case strings.HasSuffix(v, "K"):
		mult = 1 << 10
		v = strings.TrimSuffix(v, "K")
	case strings.HasSuffix(v, "M"):
		mult = 1 << 20
		v = strings.TrimSuffix(v, "M")
	case strings.HasSuffix(v, "G"):
		mult = 1 << 30
		v = strings.TrimSuffix(v, "G")
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fmt.Errorf("not a positive byte count: %q", v)
	}
	f.val = n * mult
	return nil
}

func (f *SizeFlag) String() string {
	return strconv.FormatInt(f.val, 10)
}
