package dr16

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// wire layout pinned against a hand-packed block
func TestUnmarshalLayout(t *testing.T) {
	block := []byte{
		0x00, 0x64, 0x0b, 0xa5, 0x01, 0xd8, // channels + switches
		0xfd, 0xff, // x = -3
		0x07, 0x00, // y = 7
		0x00, 0x80, // z = -32768
		0x01, 0x00, // press l/r
		0x21, 0x80, // key bitmask
		0xef, 0xbe, // reserved
	}
	require.Len(t, block, FrameSize)

	var d Data
	d.Unmarshal(block)
	require.Equal(t, Data{
		ChRX:   1024,
		ChRY:   364,
		ChLX:   1684,
		ChLY:   1024,
		SwR:    1,
		SwL:    3,
		X:      -3,
		Y:      7,
		Z:      -32768,
		PressL: 1,
		PressR: 0,
		Key:    0x8021,
		Res:    0xbeef,
	}, d)

	require.Equal(t, block, d.Marshal())
}

func TestMarshalRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data Data
	}{
		{"zero", Data{}},
		{"neutral", Data{ChRX: 1024, ChRY: 1024, ChLX: 1024, ChLY: 1024, SwR: 1, SwL: 1}},
		{"channel extremes", Data{ChRX: 0x7ff, ChRY: 0, ChLX: 0x7ff, ChLY: 0, SwR: 3, SwL: 2}},
		{"motion extremes", Data{X: -32768, Y: 32767, Z: -1, PressL: 0xff, PressR: 0xff}},
		{"all keys", Data{Key: 0xffff, Res: 0xffff}},
		{"mixed", Data{
			ChRX: 364, ChRY: 1684, ChLX: 700, ChLY: 1300,
			SwR: 2, SwL: 3,
			X: 120, Y: -77, Z: 3000,
			PressL: 1, PressR: 1,
			Key: 0x0421, Res: 0x1234,
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			block := tc.data.Marshal()
			require.Len(t, block, FrameSize)
			var decoded Data
			decoded.Unmarshal(block)
			require.Equal(t, tc.data, decoded)
		})
	}
}

// every channel bit position survives a round trip
func TestRoundTripChannelSweep(t *testing.T) {
	for v := uint16(0); v <= 0x7ff; v += 11 {
		d := Data{ChRX: v, ChRY: 0x7ff - v, ChLX: v ^ 0x2aa, ChLY: v, SwR: uint8(v % 4), SwL: uint8((v + 1) % 4)}
		var decoded Data
		decoded.Unmarshal(d.Marshal())
		require.Equal(t, d, decoded, "v=%d", v)
	}
	// boundary values exactly
	for _, v := range []uint16{0, 1, 363, 364, 1024, 1684, 1685, 0x7ff} {
		d := Data{ChRX: v, ChRY: v, ChLX: v, ChLY: v, SwR: 1, SwL: 3}
		var decoded Data
		decoded.Unmarshal(d.Marshal())
		require.Equal(t, d, decoded, "v=%d", v)
	}
}

func TestAppendToReusesBuffer(t *testing.T) {
	d := Data{ChRX: 1024, ChRY: 1024, ChLX: 1024, ChLY: 1024, SwR: 1, SwL: 1}
	buf := make([]byte, 0, FrameSize)
	first := d.AppendTo(buf)
	second := d.AppendTo(first[:0])
	require.Equal(t, first, second)
	require.Equal(t, FrameSize, len(second))
}
