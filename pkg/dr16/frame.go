package dr16

import "encoding/binary"

// FrameSize is the exact size of one receiver frame on the wire.
const FrameSize = 18

// Channel value bounds defined by the receiver protocol.
const (
	ChValueMin uint16 = 364
	ChValueMid uint16 = 1024
	ChValueMax uint16 = 1684
)

// Data is one decoded receiver frame.
type Data struct {
	ChRX uint16 // right stick, horizontal, 11-bit
	ChRY uint16 // right stick, vertical, 11-bit
	ChLX uint16 // left stick, horizontal, 11-bit
	ChLY uint16 // left stick, vertical, 11-bit

	SwR uint8 // right switch, 2-bit, 0 means no signal
	SwL uint8 // left switch, 2-bit, 0 means no signal

	X int16 // mouse delta x
	Y int16 // mouse delta y
	Z int16 // mouse delta z

	PressL uint8 // left mouse button flag byte
	PressR uint8 // right mouse button flag byte

	Key uint16 // keyboard bitmask, one bit per key
	Res uint16 // reserved, passed through unvalidated
}

// Unmarshal fills d from an 18-byte wire block.
// The four channels occupy bits 0-43 LSB-first, followed by the two
// 2-bit switches; the remaining fields are little-endian.
// Decoding is total: any 18-byte block produces a Data.
func (d *Data) Unmarshal(b []byte) {
	_ = b[FrameSize-1]
	d.ChRX = uint16(b[0]) | uint16(b[1]&0x07)<<8
	d.ChRY = uint16(b[1]>>3) | uint16(b[2]&0x3f)<<5
	d.ChLX = uint16(b[2]>>6) | uint16(b[3])<<2 | uint16(b[4]&0x01)<<10
	d.ChLY = uint16(b[4]>>1) | uint16(b[5]&0x0f)<<7
	d.SwR = (b[5] >> 4) & 0x03
	d.SwL = b[5] >> 6
	d.X = int16(binary.LittleEndian.Uint16(b[6:]))
	d.Y = int16(binary.LittleEndian.Uint16(b[8:]))
	d.Z = int16(binary.LittleEndian.Uint16(b[10:]))
	d.PressL = b[12]
	d.PressR = b[13]
	d.Key = binary.LittleEndian.Uint16(b[14:])
	d.Res = binary.LittleEndian.Uint16(b[16:])
}

// AppendTo appends the wire encoding of d to b.
// Channel values are truncated to 11 bits and switches to 2 bits.
func (d *Data) AppendTo(b []byte) []byte {
	rx, ry := d.ChRX&0x7ff, d.ChRY&0x7ff
	lx, ly := d.ChLX&0x7ff, d.ChLY&0x7ff
	b = append(b,
		byte(rx),
		byte(rx>>8)|byte(ry&0x1f)<<3,
		byte(ry>>5)|byte(lx&0x03)<<6,
		byte(lx>>2),
		byte(lx>>10)|byte(ly&0x7f)<<1,
		byte(ly>>7)|(d.SwR&0x03)<<4|(d.SwL&0x03)<<6)
	b = binary.LittleEndian.AppendUint16(b, uint16(d.X))
	b = binary.LittleEndian.AppendUint16(b, uint16(d.Y))
	b = binary.LittleEndian.AppendUint16(b, uint16(d.Z))
	b = append(b, d.PressL, d.PressR)
	b = binary.LittleEndian.AppendUint16(b, d.Key)
	b = binary.LittleEndian.AppendUint16(b, d.Res)
	return b
}

// Marshal returns the 18-byte wire encoding of d.
func (d *Data) Marshal() []byte {
	return d.AppendTo(make([]byte, 0, FrameSize))
}
