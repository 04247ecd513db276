// Package itchtest builds framed ITCH records for tests.
package itchtest

import (
	"encoding/binary"

	itchv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/itch/v1"
)

// Record appends big-endian fields after a message header.
type Record struct {
	b []byte
}

// NewRecord starts a record with the common header. ts is nanoseconds since midnight.
func NewRecord(code byte, locate, tracking uint16, ts uint64) *Record {
	r := &Record{b: []byte{code}}
	r.b = binary.BigEndian.AppendUint16(r.b, locate)
	r.b = binary.BigEndian.AppendUint16(r.b, tracking)
	for shift := 40; shift >= 0; shift -= 8 {
		r.b = append(r.b, byte(ts>>uint(shift)))
	}
	return r
}

func (r *Record) U8(v byte) *Record {
	r.b = append(r.b, v)
	return r
}

func (r *Record) U16(v uint16) *Record {
	r.b = binary.BigEndian.AppendUint16(r.b, v)
	return r
}

func (r *Record) U32(v uint32) *Record {
	r.b = binary.BigEndian.AppendUint32(r.b, v)
	return r
}

func (r *Record) U64(v uint64) *Record {
	r.b = binary.BigEndian.AppendUint64(r.b, v)
	return r
}

// Str appends s space-padded to width.
func (r *Record) Str(s string, width int) *Record {
	field := make([]byte, width)
	for i := range field {
		field[i] = ' '
	}
	copy(field, s)
	r.b = append(r.b, field...)
	return r
}

func (r *Record) Bytes() []byte {
	return r.b
}

// Frame length-prefixes each record and concatenates them.
func Frame(records ...[]byte) []byte {
	var out []byte
	for _, r := range records {
		out = binary.BigEndian.AppendUint16(out, uint16(len(r)))
		out = append(out, r...)
	}
	return out
}

// Directory is a stock directory record mapping locate to stock.
func Directory(locate uint16, stock string) []byte {
	return NewRecord(itchv1.CodeStockDirectory, locate, 0, 0).
		Str(stock, 8).U8('Q').U8('N').U32(100).U8('N').U8('C').U8('Z').U8(' ').
		U8('P').U8('N').U8(' ').U8('1').U8('N').U32(0).U8('N').Bytes()
}

// AddOrder is an 'A' record; price is the wire value with four implied decimals.
func AddOrder(locate uint16, ts, ref uint64, side byte, shares uint32, stock string, price uint32) []byte {
	return NewRecord(itchv1.CodeAddOrder, locate, 0, ts).
		U64(ref).U8(side).U32(shares).Str(stock, 8).U32(price).Bytes()
}

// Executed is an 'E' record.
func Executed(locate uint16, ts, ref uint64, shares uint32) []byte {
	return NewRecord(itchv1.CodeOrderExecuted, locate, 0, ts).U64(ref).U32(shares).U64(ts).Bytes()
}

// Cancel is an 'X' record.
func Cancel(locate uint16, ts, ref uint64, shares uint32) []byte {
	return NewRecord(itchv1.CodeOrderCancel, locate, 0, ts).U64(ref).U32(shares).Bytes()
}

// Delete is a 'D' record.
func Delete(locate uint16, ts, ref uint64) []byte {
	return NewRecord(itchv1.CodeOrderDelete, locate, 0, ts).U64(ref).Bytes()
}

// Replace is a 'U' record.
func Replace(locate uint16, ts, ref, newRef uint64, shares uint32, price uint32) []byte {
	return NewRecord(itchv1.CodeOrderReplace, locate, 0, ts).U64(ref).U64(newRef).U32(shares).U32(price).Bytes()
}

// SystemEvent is an 'S' record.
func SystemEvent(ts uint64, event byte) []byte {
	return NewRecord(itchv1.CodeSystemEvent, 0, 0, ts).U8(event).Bytes()
}
