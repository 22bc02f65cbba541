// Package ifsource reads digitized IF samples in the §6 file layout —
// signed bytes for I-sampling, interleaved signed bytes for
// IQ-sampling — from a plain file or a serial-attached front-end, and
// pushes them into a buff.Buff. This is deliberately outside the
// correlation core (spec.md §1 treats "file I/O details beyond the raw
// sample layout" as an external collaborator); it never sends a
// tuning, gain, or enable command to a device, so it is not the
// RF-frontend *control* spec.md's non-goals exclude.
package ifsource

import (
	"fmt"
	"io"
	"os"

	"github.com/pavelyazev/PocketSDR/buff"
	"github.com/pavelyazev/PocketSDR/cpx"
)

// ReadFile loads exactly n samples (or the rest of the file, if n <= 0)
// from path starting at a byte offset of toff*fs*iq bytes, in the §6
// file layout for the given iq mode (buff.ModeI or buff.ModeIQ). With
// n > 0 it returns an error if fewer than n samples follow the offset.
func ReadFile(path string, fs float64, iq int, n int, toff float64) (*buff.Buff, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ifsource: open %s: %w", path, err)
	}
	defer f.Close()

	off := int64(fs * toff * float64(iq))
	if _, err := f.Seek(off, io.SeekStart); err != nil {
		return nil, fmt.Errorf("ifsource: seek %s: %w", path, err)
	}

	var byteCount int
	if n > 0 {
		byteCount = n * iq
	} else {
		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("ifsource: stat %s: %w", path, err)
		}
		byteCount = int(info.Size() - off)
	}
	if byteCount <= 0 {
		return nil, fmt.Errorf("ifsource: %s has no data at offset %d", path, off)
	}

	raw := make([]byte, byteCount)
	if _, err := io.ReadFull(f, raw); err != nil {
		return nil, fmt.Errorf("ifsource: read %s: %w", path, err)
	}

	return decode(raw, iq), nil
}

// decode packs raw IF bytes into a Buff. The §6 file layout carries
// full signed 8-bit samples (I-only: one byte per sample; IQ:
// interleaved I,Q byte pairs), but §3's Cpx8 only has room for signed
// 4-bit fields, matching the low-bit-depth ADCs typical GNSS front
// ends digitize to. Converting between the two is explicitly out of
// the core's scope ("bit packing helpers", spec.md §1); this quantizes
// by an arithmetic shift, which is the simplest such converter.
func decode(raw []byte, iq int) *buff.Buff {
	count := len(raw) / iq
	b := buff.New(count, iq)
	if iq == buff.ModeI {
		for i := 0; i < count; i++ {
			b.Set(i, cpx.NewCpx8(quantizeNibble(raw[i]), 0))
		}
	} else {
		for i := 0; i < count; i++ {
			b.Set(i, cpx.NewCpx8(quantizeNibble(raw[i*2]), quantizeNibble(raw[i*2+1])))
		}
	}
	return b
}

// quantizeNibble maps a full-range signed byte to the signed 4-bit
// range [-8, 7] by arithmetic shift, which an int8 already lands in
// exactly (-128 >> 4 == -8, 127 >> 4 == 7).
func quantizeNibble(raw byte) int8 {
	return int8(raw) >> 4
}
