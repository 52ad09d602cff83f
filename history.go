package microrl

import (
	"fmt"
	"strings"
)

// ring is a fixed-size history ring buffer. Each saved line is framed as
// [len][payload]; the byte after a payload is the next record's length
// byte, or the 0x00 sentinel at end. Records are found by walking forward
// from begin by length bytes, with no separate index structure. A 0x00
// length byte marks "no record here"; HistCap is capped at 256 by the
// one-byte length prefix (see config.go's init guard).
type ring struct {
	buf   [HistCap]byte
	begin int
	end   int
	cur   int
}

// eraseOlder discards the oldest record by advancing begin past it.
func (r *ring) eraseOlder() {
	newPos := r.begin + int(r.buf[r.begin]) + 1
	if newPos >= HistCap {
		newPos -= HistCap
	}
	r.begin = newPos
}

// hasSpaceFor reports whether a record of the given length fits in the
// buffer without evicting anything, accounting for wraparound.
func (r *ring) hasSpaceFor(length int) bool {
	if r.buf[r.begin] == 0 {
		return true
	}
	if r.end >= r.begin {
		return HistCap-r.end+r.begin-1 > length
	}
	return r.begin-r.end-1 > length
}

// save appends line to the ring, evicting the oldest records as needed to
// make room. It reports false without mutating the buffer if line alone
// is too large to ever fit (len(line) > HistCap-2). line is stored
// verbatim, including any 0x00 token separators — the tokenizer and the
// repaint path already know how to turn those back into spaces.
func (r *ring) save(line []byte) bool {
	length := len(line)
	if length > HistCap-2 {
		return false
	}

	for !r.hasSpaceFor(length) {
		r.eraseOlder()
	}

	if r.buf[r.begin] == 0 {
		r.buf[r.begin] = byte(length)
	}

	if length < HistCap-r.end-1 {
		copy(r.buf[r.end+1:], line)
	} else {
		partLen := HistCap - r.end - 1
		copy(r.buf[r.end+1:], line[:partLen])
		copy(r.buf[:], line[partLen:length])
	}

	r.buf[r.end] = byte(length)
	r.end += length + 1
	if r.end >= HistCap {
		r.end -= HistCap
	}
	r.buf[r.end] = 0
	r.cur = 0
	return true
}

// restore copies the record at the current navigation offset into out and
// returns its length. Direction HistUp walks toward older records and
// advances cur, returning -1 once there is nothing older left. HistDown
// walks toward newer records and returns 0, not an error, once cur
// reaches the bottom of the stack — there is no record zero steps above
// "nothing typed yet".
func (r *ring) restore(out []byte, dir Direction) int {
	cnt := 0
	header := r.begin
	for r.buf[header] != 0 {
		header += int(r.buf[header]) + 1
		if header >= HistCap {
			header -= HistCap
		}
		cnt++
	}

	if dir == HistUp {
		if cnt < r.cur {
			return -1
		}
		header := r.begin
		j := 0
		for r.buf[header] != 0 && cnt-j-1 != r.cur {
			header += int(r.buf[header]) + 1
			if header >= HistCap {
				header -= HistCap
			}
			j++
		}
		if r.buf[header] == 0 {
			return -1
		}
		r.cur++
		length := int(r.buf[header])
		for i := range out {
			out[i] = 0
		}
		r.copyRecord(out, header, length)
		return length
	}

	if r.cur <= 0 {
		return 0
	}
	r.cur--
	header = r.begin
	j := 0
	for r.buf[header] != 0 && cnt-j != r.cur {
		header += int(r.buf[header]) + 1
		if header >= HistCap {
			header -= HistCap
		}
		j++
	}
	length := int(r.buf[header])
	r.copyRecord(out, header, length)
	return length
}

// copyRecord copies the length-byte payload starting at header+1 into
// out, splitting the copy across the wraparound point when the record
// straddles the end of buf.
func (r *ring) copyRecord(out []byte, header, length int) {
	if header+length < HistCap {
		copy(out, r.buf[header+1:header+1+length])
		return
	}
	part0 := HistCap - header - 1
	copy(out[:part0], r.buf[header+1:])
	copy(out[part0:length], r.buf[:length-part0])
}

// debugString renders the ring's raw contents and end marker on two
// lines, for use under debugPrintf. It stands in for the original
// debug dump, which referenced fields that no longer exist in this
// layout and could run past the end of the buffer (see §9).
func (r *ring) debugString() string {
	var b strings.Builder
	for i := 0; i < HistCap; i++ {
		c := r.buf[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%d", c)
		}
	}
	b.WriteByte('\n')
	for i := 0; i < HistCap; i++ {
		if i == r.end {
			b.WriteByte('e')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
