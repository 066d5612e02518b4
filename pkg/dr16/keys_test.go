package dr16

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyEnumeration(t *testing.T) {
	require.Equal(t, SwitchPos(6), SwPosNum)
	require.Equal(t, Key(6), KeyW)
	require.Equal(t, Key(21), KeyB)
	require.Equal(t, Key(25), KeyRRelease)
	require.Equal(t, Key(26), KeyNum)
	require.Equal(t, 16, KeyCount)
}

func TestCombinationCodes(t *testing.T) {
	n := uint32(KeyNum)
	for key := KeyW; key < KeyNum; key++ {
		require.Equal(t, uint32(key)+n, ShiftWith(key))
		require.Equal(t, uint32(key)+2*n, CtrlWith(key))
		require.Equal(t, uint32(key)+3*n, ShiftCtrlWith(key))
	}
	// distinct code spaces never overlap
	require.Less(t, uint32(KeyRRelease), ShiftWith(KeyW))
	require.Less(t, ShiftWith(KeyRRelease), CtrlWith(KeyW))
	require.Less(t, CtrlWith(KeyRRelease), ShiftCtrlWith(KeyW))
}

func TestSwitchPosMapping(t *testing.T) {
	testCases := []struct {
		v     uint8
		left  SwitchPos
		right SwitchPos
		ok    bool
	}{
		{0, 0, 0, false},
		{1, SwLPosTop, SwRPosTop, true},
		{2, SwLPosBot, SwRPosBot, true},
		{3, SwLPosMid, SwRPosMid, true},
	}
	for _, tc := range testCases {
		pos, ok := LeftSwitchPos(tc.v)
		require.Equal(t, tc.ok, ok, "left %d", tc.v)
		if ok {
			require.Equal(t, tc.left, pos)
		}
		pos, ok = RightSwitchPos(tc.v)
		require.Equal(t, tc.ok, ok, "right %d", tc.v)
		if ok {
			require.Equal(t, tc.right, pos)
		}
	}
}

func TestKeyDown(t *testing.T) {
	var d Data
	d.Key = 1 | 1<<15 // W and B
	require.True(t, d.KeyDown(KeyW))
	require.True(t, d.KeyDown(KeyB))
	require.False(t, d.KeyDown(KeyS))
	require.False(t, d.KeyDown(KeyLPress))
	require.False(t, d.KeyDown(Key(0)))
}

func TestKeyCodes(t *testing.T) {
	keyBit := func(keys ...Key) (mask uint16) {
		for _, k := range keys {
			mask |= 1 << uint(k-KeyW)
		}
		return
	}

	testCases := []struct {
		name   string
		mask   uint16
		expect []uint32
	}{
		{"none", 0, nil},
		{"plain", keyBit(KeyW, KeyQ), []uint32{uint32(KeyW), uint32(KeyQ)}},
		{"shifted", keyBit(KeyW, KeyShift), []uint32{ShiftWith(KeyW)}},
		{"ctrled", keyBit(KeyW, KeyCtrl), []uint32{CtrlWith(KeyW)}},
		{"shift-ctrl", keyBit(KeyW, KeyShift, KeyCtrl), []uint32{ShiftCtrlWith(KeyW)}},
		{"shift alone", keyBit(KeyShift), []uint32{uint32(KeyShift)}},
		{"modifiers alone", keyBit(KeyShift, KeyCtrl), []uint32{uint32(KeyShift), uint32(KeyCtrl)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := Data{Key: tc.mask}
			require.Equal(t, tc.expect, d.KeyCodes())
		})
	}
}

func TestKeyString(t *testing.T) {
	require.Equal(t, "W", KeyW.String())
	require.Equal(t, "RRelease", KeyRRelease.String())
	require.Equal(t, "Key(42)", Key(42).String())
}
