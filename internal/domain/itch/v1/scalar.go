package itchv1

import (
	"encoding/binary"
	"strings"
	"time"
)

// Timestamp is nanoseconds since midnight, carried on the wire as a 48-bit big-endian integer.
type Timestamp uint64

// Duration converts the timestamp to an offset from midnight.
func (t Timestamp) Duration() time.Duration {
	return time.Duration(t)
}

// On returns the instant on the given trading day.
func (t Timestamp) On(day time.Time) time.Time {
	return day.Add(t.Duration())
}

// Stock is an 8 byte, right space-padded symbol, lowercased on decode.
type Stock [8]byte

func (s Stock) String() string {
	return strings.TrimRight(string(s[:]), " \x00")
}

// MPID is a 4 byte participant identifier, lowercased on decode.
type MPID [4]byte

func (m MPID) String() string {
	return strings.TrimRight(string(m[:]), " \x00")
}

const (
	price4Scale = 1e4
	price8Scale = 1e8
)

// wire reads fixed-layout big-endian fields from a record that has already
// been length checked.
type wire struct {
	b   []byte
	off int
}

func (w *wire) u8() byte {
	v := w.b[w.off]
	w.off++
	return v
}

func (w *wire) u16() uint16 {
	v := binary.BigEndian.Uint16(w.b[w.off:])
	w.off += 2
	return v
}

func (w *wire) u32() uint32 {
	v := binary.BigEndian.Uint32(w.b[w.off:])
	w.off += 4
	return v
}

func (w *wire) u48() uint64 {
	b := w.b[w.off : w.off+6]
	w.off += 6
	return uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
}

func (w *wire) u64() uint64 {
	v := binary.BigEndian.Uint64(w.b[w.off:])
	w.off += 8
	return v
}

func (w *wire) price4() float64 {
	return float64(w.u32()) / price4Scale
}

func (w *wire) price8() float64 {
	return float64(w.u64()) / price8Scale
}

func (w *wire) lower(dst []byte) {
	n := copy(dst, w.b[w.off:])
	for i := 0; i < n; i++ {
		if c := dst[i]; c >= 'A' && c <= 'Z' {
			dst[i] = c + ('a' - 'A')
		}
	}
	w.off += n
}

func (w *wire) stock() (s Stock) {
	w.lower(s[:])
	return s
}

func (w *wire) mpid() (m MPID) {
	w.lower(m[:])
	return m
}

func (w *wire) header() Header {
	w.off = 1 // type byte
	return Header{
		StockLocate:    w.u16(),
		TrackingNumber: w.u16(),
		Timestamp:      Timestamp(w.u48()),
	}
}

// DecodePrice4 converts a raw 4 decimal fixed-point price.
func DecodePrice4(raw uint32) float64 {
	return float64(raw) / price4Scale
}
