package dr16

import "strconv"

// SwitchPos identifies one position of the two 3-position switches.
// The enumeration is per side so consumers can treat every position
// as a distinct event code.
type SwitchPos uint8

// Switch positions, left then right.
const (
	SwLPosTop SwitchPos = iota
	SwLPosBot
	SwLPosMid
	SwRPosTop
	SwRPosBot
	SwRPosMid
	SwPosNum
)

// Switch wire values. 0 is never a legitimate position.
const (
	swWireTop uint8 = 1
	swWireBot uint8 = 2
	swWireMid uint8 = 3
)

// LeftSwitchPos maps the left switch wire value (1..3) to a position.
// ok is false for 0 or any out-of-domain value.
func LeftSwitchPos(v uint8) (pos SwitchPos, ok bool) {
	switch v {
	case swWireTop:
		return SwLPosTop, true
	case swWireBot:
		return SwLPosBot, true
	case swWireMid:
		return SwLPosMid, true
	}
	return 0, false
}

// RightSwitchPos maps the right switch wire value (1..3) to a position.
func RightSwitchPos(v uint8) (pos SwitchPos, ok bool) {
	switch v {
	case swWireTop:
		return SwRPosTop, true
	case swWireBot:
		return SwRPosBot, true
	case swWireMid:
		return SwRPosMid, true
	}
	return 0, false
}

// Key identifies one keyboard key or mouse button edge event.
// The code space continues after the switch positions so that switch
// positions, keys and button events share one event enumeration.
type Key uint8

// Keys and button events. The bitmask bit of a keyboard key is
// Key - KeyW.
const (
	KeyW Key = Key(SwPosNum) + iota
	KeyS
	KeyA
	KeyD
	KeyShift
	KeyCtrl
	KeyQ
	KeyE
	KeyR
	KeyF
	KeyG
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyLPress
	KeyRPress
	KeyLRelease
	KeyRRelease
	KeyNum
)

// KeyCount is the number of keyboard bitmask bits.
const KeyCount = int(KeyB-KeyW) + 1

// ShiftWith returns the event code of key pressed together with Shift.
func ShiftWith(key Key) uint32 {
	return uint32(key) + 1*uint32(KeyNum)
}

// CtrlWith returns the event code of key pressed together with Ctrl.
func CtrlWith(key Key) uint32 {
	return uint32(key) + 2*uint32(KeyNum)
}

// ShiftCtrlWith returns the event code of key pressed together with
// both Shift and Ctrl.
func ShiftCtrlWith(key Key) uint32 {
	return uint32(key) + 3*uint32(KeyNum)
}

// KeyDown reports whether the keyboard key is held in this frame.
// It is false for any Key outside the keyboard bitmask range.
func (d *Data) KeyDown(key Key) bool {
	if key < KeyW || key > KeyB {
		return false
	}
	return d.Key&(1<<uint(key-KeyW)) != 0
}

// KeyCodes returns the event codes of all held keyboard keys, folding
// held Shift/Ctrl modifiers into combination codes. The modifier keys
// act as modifiers while any other key is held and are reported plain
// only when held alone.
func (d *Data) KeyCodes() []uint32 {
	shift, ctrl := d.KeyDown(KeyShift), d.KeyDown(KeyCtrl)
	var codes []uint32
	for key := KeyW; key <= KeyB; key++ {
		if !d.KeyDown(key) || key == KeyShift || key == KeyCtrl {
			continue
		}
		switch {
		case shift && ctrl:
			codes = append(codes, ShiftCtrlWith(key))
		case shift:
			codes = append(codes, ShiftWith(key))
		case ctrl:
			codes = append(codes, CtrlWith(key))
		default:
			codes = append(codes, uint32(key))
		}
	}
	if len(codes) == 0 {
		if shift {
			codes = append(codes, uint32(KeyShift))
		}
		if ctrl {
			codes = append(codes, uint32(KeyCtrl))
		}
	}
	return codes
}

var keyNames = map[Key]string{
	KeyW: "W", KeyS: "S", KeyA: "A", KeyD: "D",
	KeyShift: "Shift", KeyCtrl: "Ctrl",
	KeyQ: "Q", KeyE: "E", KeyR: "R", KeyF: "F", KeyG: "G",
	KeyZ: "Z", KeyX: "X", KeyC: "C", KeyV: "V", KeyB: "B",
	KeyLPress: "LPress", KeyRPress: "RPress",
	KeyLRelease: "LRelease", KeyRRelease: "RRelease",
}

// String implements fmt.Stringer.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}
