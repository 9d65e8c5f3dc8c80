package inflate

import "testing"

func TestFixedTables(t *testing.T) {
	var d decoderState
	fixedTables(&d)

	if d.lenbits != 9 || d.distbits != 5 {
		t.Fatalf("root widths = %d/%d, want 9/5", d.lenbits, d.distbits)
	}
	if len(lenfix) != 512 {
		t.Errorf("literal/length table has %d entries, want 512", len(lenfix))
	}
	if len(distfix) != 32 {
		t.Errorf("distance table has %d entries, want 32", len(distfix))
	}

	// Index 0 is the all-zeros bit pattern: the 7-bit end-of-block
	// code for lengths, the 5-bit code for distance symbol 0.
	if got := lenfix[0]; got != (code{op: 96, bits: 7, val: 0}) {
		t.Errorf("lenfix[0] = %+v", got)
	}
	if got := distfix[0]; got != (code{op: 16, bits: 5, val: 1}) {
		t.Errorf("distfix[0] = %+v", got)
	}

	// Every entry must be a literal, a base, end-of-block, or
	// invalid; the fixed tables have no sub-tables.
	for i, e := range lenfix {
		if e.op != 0 && e.op&0xf0 == 0 {
			t.Fatalf("lenfix[%d] = %+v is a sub-table link", i, e)
		}
	}
}

func TestInflateTableOverSubscribed(t *testing.T) {
	var d decoderState
	lens := make([]uint16, 19)
	lens[0], lens[1], lens[2] = 1, 1, 1
	d.lenbits = 7
	if ret := inflateTable(codeCodes, lens, &d); ret == 0 {
		t.Errorf("over-subscribed set built a table")
	}
}

func TestInflateTableIncomplete(t *testing.T) {
	// One one-bit code: acceptable for length/distance alphabets,
	// rejected for the code length meta-code.
	lens := make([]uint16, 19)
	lens[0] = 1

	var d decoderState
	d.lenbits = 7
	if ret := inflateTable(codeCodes, lens, &d); ret == 0 {
		t.Errorf("incomplete meta-code built a table")
	}

	var d2 decoderState
	d2.distbits = 6
	if ret := inflateTable(codeDists, lens[:2], &d2); ret != 0 {
		t.Errorf("degenerate distance code rejected: %d", ret)
	}
	// The unused half of the one-bit table must reject.
	if d2.codes[1].op&64 == 0 {
		t.Errorf("unused code point not marked invalid: %+v", d2.codes[1])
	}
}

func TestInflateTableEmpty(t *testing.T) {
	var d decoderState
	d.lenbits = 7
	lens := make([]uint16, 19)
	if ret := inflateTable(codeCodes, lens, &d); ret != 0 {
		t.Fatalf("empty set: %d", ret)
	}
	if d.next != 2 {
		t.Errorf("next = %d, want 2", d.next)
	}
	for i := 0; i < 2; i++ {
		if d.codes[i].op&64 == 0 {
			t.Errorf("codes[%d] = %+v, want invalid marker", i, d.codes[i])
		}
	}
}

func TestInflateTableSubTables(t *testing.T) {
	// A complete set with codes longer than the 9-bit root: 255
	// literals of length 8 plus 4 symbols of length 10
	// (255/256 + 4/1024 = 1), so the ten-bit codes must hang off
	// sub-table links.
	lens := make([]uint16, 259)
	for i := 0; i < 255; i++ {
		lens[i] = 8
	}
	for i := 255; i < 259; i++ {
		lens[i] = 10
	}

	var d decoderState
	d.lenbits = 9
	if ret := inflateTable(codeLens, lens, &d); ret != 0 {
		t.Fatalf("build: %d", ret)
	}
	if d.lenbits != 9 {
		t.Errorf("root width = %d, want 9", d.lenbits)
	}

	links := 0
	for i := 0; i < 1<<9; i++ {
		e := d.codes[i]
		if e.op != 0 && e.op&0xf0 == 0 {
			links++
			if e.bits != 9 {
				t.Errorf("link entry consumes %d bits, want 9", e.bits)
			}
			if e.op != 1 {
				t.Errorf("link entry indexes %d extra bits, want 1", e.op)
			}
		}
	}
	if links != 2 {
		t.Errorf("root table has %d sub-table links, want 2", links)
	}
	if d.next != 1<<9+4 {
		t.Errorf("arena used %d entries, want %d", d.next, 1<<9+4)
	}
}
