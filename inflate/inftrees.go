package inflate

// Huffman decoding tables are a root table indexed by the low root
// bits of the accumulator, with linked sub-tables for codes longer
// than the root. Each entry packs what the decoder needs into
// {op, bits, val}:
//
//	op == 0                 literal, val is the byte
//	op & 16                 length/distance base, op&15 extra bits
//	op & 32                 end of block
//	op & 64                 invalid code
//	otherwise (op&0xf0==0)  sub-table link: val is the sub-table base
//	                        within the root table's slice, op the
//	                        number of index bits it consumes
//
// bits is how many accumulator bits the entry consumes (for a link
// entry, the root width).
type code struct {
	op   uint8
	bits uint8
	val  uint16
}

type codeType int

const (
	codeCodes codeType = iota // the code length meta-code
	codeLens                  // literal/length codes
	codeDists                 // distance codes
)

const (
	maxCodeBits  = 15  // longest Huffman code the format permits
	maxDistTable = 592 // worst-case space a distance table can need
)

// The order in which code length code lengths appear in the stream.
var codeOrder = [19]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// Length code bases and extra-bit counts for symbols 257..287. The
// two trailing entries mark the reserved symbols invalid (op bit 64).
var lbase = [31]uint16{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258, 0, 0,
}
var lext = [31]uint8{
	16, 16, 16, 16, 16, 16, 16, 16, 17, 17, 17, 17, 18, 18, 18, 18,
	19, 19, 19, 19, 20, 20, 20, 20, 21, 21, 21, 21, 16, 201, 196,
}

// Distance code bases and extra-bit counts for symbols 0..31.
var dbase = [32]uint16{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289,
	16385, 24577, 0, 0,
}
var dext = [32]uint8{
	16, 16, 16, 16, 17, 17, 18, 18, 19, 19, 20, 20, 21, 21, 22, 22,
	23, 23, 24, 24, 25, 25, 26, 26, 27, 27, 28, 28, 29, 29, 64, 64,
}

// inflateTable builds the decoding table for the given code lengths
// into d.codes starting at d.next, advancing d.next past the space
// used. The requested root width is read from d.lenbits (codes and
// literal/length tables) or d.distbits (distance tables) and written
// back with the width actually used, which is never larger.
//
// The result is 0 on success, -1 if the set of lengths is
// over-subscribed or unusably incomplete, and 1 if a valid table
// would not fit in the arena. An empty set of lengths yields a
// one-bit table of invalid markers so that decoding reports the
// error, matching the treatment of incomplete codes.
func inflateTable(typ codeType, lens []uint16, d *decoderState) int {
	// Count codes of each length.
	var count [maxCodeBits + 1]int
	nsyms := len(lens)
	for sym := 0; sym < nsyms; sym++ {
		count[lens[sym]]++
	}

	root := d.lenbits
	if typ == codeDists {
		root = d.distbits
	}
	max := maxCodeBits
	for max >= 1 && count[max] == 0 {
		max--
	}
	if root > max {
		root = max
	}
	if max == 0 { // no symbols at all
		invalid := code{op: 64, bits: 1}
		d.codes[d.next] = invalid
		d.codes[d.next+1] = invalid
		d.next += 2
		if typ == codeDists {
			d.distbits = 1
		} else {
			d.lenbits = 1
		}
		return 0
	}
	min := 1
	for min < maxCodeBits && count[min] == 0 {
		min++
	}
	if root < min {
		root = min
	}

	// Kraft check: over-subscribed sets are never usable; incomplete
	// sets only as the degenerate one-symbol distance/length case.
	left := 1
	for l := 1; l <= maxCodeBits; l++ {
		left <<= 1
		left -= count[l]
		if left < 0 {
			return -1
		}
	}
	if left > 0 && (typ == codeCodes || max != 1) {
		return -1
	}

	// Sort symbols into work by code length, symbol order within.
	var offs [maxCodeBits + 1]int
	for l := 1; l < maxCodeBits; l++ {
		offs[l+1] = offs[l] + count[l]
	}
	for sym := 0; sym < nsyms; sym++ {
		if lens[sym] != 0 {
			d.work[offs[lens[sym]]] = uint16(sym)
			offs[lens[sym]]++
		}
	}

	// Symbols at or past end carry base/extra data; below it they are
	// literals; end itself is the end-of-block symbol.
	end := 19
	switch typ {
	case codeLens:
		end = 256
	case codeDists:
		end = -1
	}

	huff := 0        // code value being filled in, bit-reversed
	sym := 0         // index into work
	length := min    // current code length
	tbl := d.next    // root table base in the arena
	next := d.next   // current (sub-)table base
	curr := root     // current table index width
	drop := 0        // root bits dropped when indexing a sub-table
	low := -1        // root index of the sub-table being filled
	used := 1 << uint(root)
	mask := used - 1
	fill := 0

	if typ == codeLens && used >= enough-maxDistTable {
		return 1
	}

	for {
		var here code
		here.bits = uint8(length - drop)
		w := int(d.work[sym])
		switch {
		case w < end:
			here.val = d.work[sym]
		case w > end:
			if typ == codeDists {
				here.op = dext[w]
				here.val = dbase[w]
			} else {
				here.op = lext[w-257]
				here.val = lbase[w-257]
			}
		default:
			here.op = 32 + 64 // end of block
		}

		// Replicate the entry over every index whose low bits match.
		incr := 1 << uint(length-drop)
		fill = 1 << uint(curr)
		sizeCurr := fill
		for {
			fill -= incr
			d.codes[next+(huff>>uint(drop))+fill] = here
			if fill == 0 {
				break
			}
		}

		// Backwards-increment the bit-reversed code.
		incr = 1 << uint(length-1)
		for huff&incr != 0 {
			incr >>= 1
		}
		if incr != 0 {
			huff = huff&(incr-1) + incr
		} else {
			huff = 0
		}

		sym++
		count[length]--
		if count[length] == 0 {
			if length == max {
				break
			}
			length = int(lens[d.work[sym]])
		}

		// Start a new sub-table when the next code is longer than the
		// root and indexes a root slot we have not linked yet.
		if length > root && huff&mask != low {
			if drop == 0 {
				drop = root
			}
			next += sizeCurr

			// Size the sub-table to the longest code it must hold.
			curr = length - drop
			left := 1 << uint(curr)
			for curr+drop < max {
				left -= count[curr+drop]
				if left <= 0 {
					break
				}
				curr++
				left <<= 1
			}

			used += 1 << uint(curr)
			if typ == codeLens && used >= enough-maxDistTable {
				return 1
			}

			low = huff & mask
			d.codes[tbl+low] = code{
				op:   uint8(curr),
				bits: uint8(root),
				val:  uint16(next - tbl),
			}
		}
	}

	// An incomplete (single-code) set leaves unreachable indices;
	// mark them invalid so stray bit patterns are rejected.
	here := code{op: 64, bits: uint8(length - drop)}
	for huff != 0 {
		if drop != 0 && huff&mask != low {
			drop = 0
			length = root
			next = tbl
			here.bits = uint8(length)
		}
		d.codes[next+huff>>uint(drop)] = here
		incr := 1 << uint(length-1)
		for huff&incr != 0 {
			incr >>= 1
		}
		if incr != 0 {
			huff = huff&(incr-1) + incr
		} else {
			huff = 0
		}
	}

	d.next += used
	if typ == codeDists {
		d.distbits = root
	} else {
		d.lenbits = root
	}
	return 0
}
