/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// hasher feeds the semantic content of a value into xxhash. Every field is
// terminated so that adjacent fields cannot run together.
type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newHasher(t Type) *hasher {
	h := &hasher{d: xxhash.New()}
	return h.int(int64(t))
}

func (h *hasher) str(s string) *hasher {
	_, _ = h.d.WriteString(s)
	_, _ = h.d.Write([]byte{0})
	return h
}

func (h *hasher) int(n int64) *hasher {
	binary.LittleEndian.PutUint64(h.buf[:], uint64(n))
	_, _ = h.d.Write(h.buf[:])
	return h
}

func (h *hasher) float(f float64) *hasher {
	if f == 0 {
		f = 0 // fold -0
	}
	binary.LittleEndian.PutUint64(h.buf[:], math.Float64bits(f))
	_, _ = h.d.Write(h.buf[:])
	return h
}

func (h *hasher) value(v Value) *hasher {
	if v == nil {
		return h.int(-1)
	}
	binary.LittleEndian.PutUint64(h.buf[:], v.Hash())
	_, _ = h.d.Write(h.buf[:])
	return h
}

func (h *hasher) sum() uint64 {
	return h.d.Sum64()
}
