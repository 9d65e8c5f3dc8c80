package flagutil

import "testing"

func TestWindowBitsFlagSetInvalidArgument(t *testing.T) {
	tests := []string{
		"",
		"foo",
		"7",
		"16",
		"-7",
		"-16",
		"0",
	}

	for i, tt := range tests {
		var f WindowBitsFlag
		if err := f.Set(tt); err == nil {
			t.Errorf("case %d: expected non-nil error", i)
		}
	}
}

func TestWindowBitsFlagSetValidArgument(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"8", 8},
		{"15", 15},
		{"-15", -15},
		{"-8", -8},
	}

	for i, tt := range tests {
		var f WindowBitsFlag
		if err := f.Set(tt.in); err != nil {
			t.Errorf("case %d: err=%v", i, err)
		}
		if f.Bits() != tt.want {
			t.Errorf("case %d: got %d, want %d", i, f.Bits(), tt.want)
		}
	}
}

func TestSizeFlagSet(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1", 1, true},
		{"64K", 64 << 10, true},
		{"2M", 2 << 20, true},
		{"1G", 1 << 30, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"K", 0, false},
		{"big", 0, false},
	}

	for i, tt := range tests {
		var f SizeFlag
		err := f.Set(tt.in)
		if tt.ok && err != nil {
			t.Errorf("case %d: err=%v", i, err)
			continue
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("case %d: expected non-nil error", i)
			}
			continue
		}
		if f.Bytes() != tt.want {
			t.Errorf("case %d: got %d, want %d", i, f.Bytes(), tt.want)
		}
	}
}
