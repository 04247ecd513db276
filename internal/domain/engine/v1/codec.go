package enginev1

import "encoding/binary"

const (
	countSize = 8
	entrySize = 8 + 4 + 4
)

// SerializeState encodes the buy side then the sell side, each as a
// little-endian count followed by (reference, price, shares) triplets.
func (e *Engine) SerializeState() []byte {
	buf := make([]byte, 0, 2*countSize+entrySize*(len(e.buy)+len(e.sell)))
	buf = appendSide(buf, e.buy)
	buf = appendSide(buf, e.sell)
	return buf
}

func appendSide(buf []byte, side OrderMap) []byte {
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(side)))
	for ref, o := range side {
		buf = binary.LittleEndian.AppendUint64(buf, ref)
		buf = binary.LittleEndian.AppendUint32(buf, o.Price)
		buf = binary.LittleEndian.AppendUint32(buf, o.Shares)
	}
	return buf
}

// DeserializeState replaces the engine's state with the encoded one. On a
// short buffer it returns false with the state partially loaded; discard the
// engine in that case.
func (e *Engine) DeserializeState(b []byte) bool {
	e.Reset()

	rest, ok := readSide(b, e.buy)
	if !ok {
		return false
	}
	_, ok = readSide(rest, e.sell)
	return ok
}

func readSide(b []byte, side OrderMap) ([]byte, bool) {
	if len(b) < countSize {
		return b, false
	}
	count := binary.LittleEndian.Uint64(b)
	b = b[countSize:]

	for i := uint64(0); i < count; i++ {
		if len(b) < entrySize {
			return b, false
		}
		side[binary.LittleEndian.Uint64(b)] = Order{
			Price:  binary.LittleEndian.Uint32(b[8:]),
			Shares: binary.LittleEndian.Uint32(b[12:]),
		}
		b = b[entrySize:]
	}
	return b, true
}
