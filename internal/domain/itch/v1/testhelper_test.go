package itchv1

import "encoding/binary"

type recordBuilder struct {
	b []byte
}

func newRecord(code byte, locate, tracking uint16, ts uint64) *recordBuilder {
	rb := &recordBuilder{b: []byte{code}}
	rb.b = binary.BigEndian.AppendUint16(rb.b, locate)
	rb.b = binary.BigEndian.AppendUint16(rb.b, tracking)
	for shift := 40; shift >= 0; shift -= 8 {
		rb.b = append(rb.b, byte(ts>>uint(shift)))
	}
	return rb
}

func (rb *recordBuilder) u8(v byte) *recordBuilder {
	rb.b = append(rb.b, v)
	return rb
}

func (rb *recordBuilder) u32(v uint32) *recordBuilder {
	rb.b = binary.BigEndian.AppendUint32(rb.b, v)
	return rb
}

func (rb *recordBuilder) u64(v uint64) *recordBuilder {
	rb.b = binary.BigEndian.AppendUint64(rb.b, v)
	return rb
}

func (rb *recordBuilder) str(s string, width int) *recordBuilder {
	field := make([]byte, width)
	for i := range field {
		field[i] = ' '
	}
	copy(field, s)
	rb.b = append(rb.b, field...)
	return rb
}

func (rb *recordBuilder) bytes() []byte {
	return rb.b
}

func frame(records ...[]byte) []byte {
	var out []byte
	for _, r := range records {
		out = binary.BigEndian.AppendUint16(out, uint16(len(r)))
		out = append(out, r...)
	}
	return out
}

func addOrderRecord(ref uint64, side byte, shares uint32, stock string, price uint32) []byte {
	return newRecord(CodeAddOrder, 1, 0, 1000).
		u64(ref).u8(side).u32(shares).str(stock, 8).u32(price).bytes()
}

func executedRecord(ref uint64, shares uint32) []byte {
	return newRecord(CodeOrderExecuted, 1, 0, 2000).u64(ref).u32(shares).u64(99).bytes()
}

func directoryRecord(locate uint16, stock string) []byte {
	return newRecord(CodeStockDirectory, locate, 0, 0).
		str(stock, 8).u8('Q').u8('N').u32(100).u8('N').u8('C').u8('Z').u8(' ').
		u8('P').u8('N').u8(' ').u8('1').u8('N').u32(0).u8('N').bytes()
}

func systemEventRecord(code byte) []byte {
	return newRecord(CodeSystemEvent, 0, 0, 0).u8(code).bytes()
}
