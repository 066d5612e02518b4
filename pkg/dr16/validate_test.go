package dr16

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validData() Data {
	return Data{ChRX: 1024, ChRY: 1024, ChLX: 1024, ChLY: 1024, SwR: 1, SwL: 1}
}

func TestCorruptedChannelBounds(t *testing.T) {
	channels := []struct {
		name string
		set  func(*Data, uint16)
	}{
		{"ChRX", func(d *Data, v uint16) { d.ChRX = v }},
		{"ChRY", func(d *Data, v uint16) { d.ChRY = v }},
		{"ChLX", func(d *Data, v uint16) { d.ChLX = v }},
		{"ChLY", func(d *Data, v uint16) { d.ChLY = v }},
	}
	values := []struct {
		v         uint16
		corrupted bool
	}{
		{0, true},
		{363, true},
		{364, false},
		{1024, false},
		{1684, false},
		{1685, true},
		{0x7ff, true},
	}

	for _, ch := range channels {
		t.Run(ch.name, func(t *testing.T) {
			for _, val := range values {
				d := validData()
				ch.set(&d, val.v)
				require.Equal(t, val.corrupted, d.Corrupted(), "value %d", val.v)
			}
		})
	}
}

func TestCorruptedSwitches(t *testing.T) {
	for s := uint8(0); s <= 3; s++ {
		d := validData()
		d.SwL = s
		require.Equal(t, s == 0, d.Corrupted(), "SwL=%d", s)

		d = validData()
		d.SwR = s
		require.Equal(t, s == 0, d.Corrupted(), "SwR=%d", s)
	}
}

// mouse, button and key fields never affect validity
func TestCorruptedIgnoresUnconstrainedFields(t *testing.T) {
	d := validData()
	d.X, d.Y, d.Z = -32768, 32767, -1
	d.PressL, d.PressR = 0xff, 0xff
	d.Key, d.Res = 0xffff, 0xffff
	require.False(t, d.Corrupted())
}
