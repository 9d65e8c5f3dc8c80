package inflate

// inflateFast decodes literal and match symbols with the bounds
// checks hoisted out of the symbol loop. The caller guarantees at
// least 6 input bytes and 258 output bytes, enough for one worst-case
// length/distance pair, and the loop keeps running while both margins
// hold. State is picked up from and committed back to d, so the slow
// path resumes seamlessly; on exit mode is still modeLen, or modeType
// at end of block, or modeBad with s.Msg set.
//
// in and out are the whole buffers of the current Inflate call; ip
// and op the cursors into them. Bytes of out before op are this
// call's output and remain a valid match source.
func inflateFast(s *Stream, d *decoderState, in, out []byte, ip, op int) (int, int) {
	lastIn := len(in) - 5    // stay 5 bytes short: two refills per pair
	endOut := len(out) - 257 // stay 257 short: one max-length match

	wsize, whave, write, window := d.wsize, d.whave, d.write, d.window
	hold, bts := d.hold, d.bits
	lcode, dcode := d.lencode, d.distcode
	lmask := uint64(1<<uint(d.lenbits) - 1)
	dmask := uint64(1<<uint(d.distbits) - 1)

	var here code
	var oc, length, dist, c, si int
	var src []byte

	for {
		if bts < 15 {
			hold += uint64(in[ip]) << bts
			ip++
			bts += 8
			hold += uint64(in[ip]) << bts
			ip++
			bts += 8
		}
		here = lcode[hold&lmask]
	dolen:
		hold >>= uint(here.bits)
		bts -= uint(here.bits)
		oc = int(here.op)
		if oc == 0 { // literal
			out[op] = byte(here.val)
			op++
		} else if oc&16 != 0 { // length base
			length = int(here.val)
			oc &= 15
			if oc != 0 {
				if bts < uint(oc) {
					hold += uint64(in[ip]) << bts
					ip++
					bts += 8
				}
				length += int(hold & (1<<uint(oc) - 1))
				hold >>= uint(oc)
				bts -= uint(oc)
			}
			if bts < 15 {
				hold += uint64(in[ip]) << bts
				ip++
				bts += 8
				hold += uint64(in[ip]) << bts
				ip++
				bts += 8
			}
			here = dcode[hold&dmask]
		dodist:
			hold >>= uint(here.bits)
			bts -= uint(here.bits)
			oc = int(here.op)
			if oc&16 != 0 { // distance base
				dist = int(here.val)
				oc &= 15
				if bts < uint(oc) {
					hold += uint64(in[ip]) << bts
					ip++
					bts += 8
					if bts < uint(oc) {
						hold += uint64(in[ip]) << bts
						ip++
						bts += 8
					}
				}
				dist += int(hold & (1<<uint(oc) - 1))
				hold >>= uint(oc)
				bts -= uint(oc)

				if dist > op { // source reaches back into the window
					c = dist - op
					if c > whave {
						s.Msg = "invalid distance too far back"
						d.mode = modeBad
						break
					}
					src = window
					if write == 0 { // window not yet wrapped
						si = wsize - c
						if c < length { // finish from this call's output
							length -= c
							for ; c > 0; c-- {
								out[op] = src[si]
								op++
								si++
							}
							src, si = out, op-dist
						}
					} else if write < c { // match wraps around the window
						si = wsize + write - c
						c -= write
						if c < length { // tail of the window
							length -= c
							for ; c > 0; c-- {
								out[op] = src[si]
								op++
								si++
							}
							si = 0
							if write < length { // head of the window
								c = write
								length -= c
								for ; c > 0; c-- {
									out[op] = src[si]
									op++
									si++
								}
								src, si = out, op-dist
							}
						}
					} else { // contiguous in the window
						si = write - c
						if c < length {
							length -= c
							for ; c > 0; c-- {
								out[op] = src[si]
								op++
								si++
							}
							src, si = out, op-dist
						}
					}
					for length > 2 {
						out[op] = src[si]
						out[op+1] = src[si+1]
						out[op+2] = src[si+2]
						op += 3
						si += 3
						length -= 3
					}
					if length > 0 {
						out[op] = src[si]
						op++
						si++
						if length > 1 {
							out[op] = src[si]
							op++
						}
					}
				} else {
					// Copy directly from this call's output. Byte
					// steps so close distances replicate; minimum
					// match length is three.
					si = op - dist
					for {
						out[op] = out[si]
						out[op+1] = out[si+1]
						out[op+2] = out[si+2]
						op += 3
						si += 3
						length -= 3
						if length <= 2 {
							break
						}
					}
					if length > 0 {
						out[op] = out[si]
						op++
						si++
						if length > 1 {
							out[op] = out[si]
							op++
						}
					}
				}
			} else if oc&64 == 0 { // sub-table link
				here = dcode[int(here.val)+int(hold&(1<<uint(oc)-1))]
				goto dodist
			} else {
				s.Msg = "invalid distance code"
				d.mode = modeBad
				break
			}
		} else if oc&64 == 0 { // sub-table link
			here = lcode[int(here.val)+int(hold&(1<<uint(oc)-1))]
			goto dolen
		} else if oc&32 != 0 { // end of block
			d.mode = modeType
			break
		} else {
			s.Msg = "invalid literal/length code"
			d.mode = modeBad
			break
		}
		if ip >= lastIn || op >= endOut {
			break
		}
	}

	// Return unused whole bytes to the input so the slow path sees a
	// byte-accurate cursor.
	n := int(bts) >> 3
	ip -= n
	bts -= uint(n) << 3
	hold &= 1<<bts - 1

	d.hold, d.bits = hold, bts
	return ip, op
}
