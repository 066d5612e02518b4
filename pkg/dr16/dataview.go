package dr16

import (
	"fmt"
	"strings"
)

// String formats the frame for inspection. Not used on the hot path.
func (d *Data) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ch[%d %d %d %d] sw[L:%d R:%d]",
		d.ChRX, d.ChRY, d.ChLX, d.ChLY, d.SwL, d.SwR)
	fmt.Fprintf(&sb, " mouse[%d %d %d L:%d R:%d]",
		d.X, d.Y, d.Z, d.PressL, d.PressR)
	if d.Key != 0 {
		sb.WriteString(" keys[")
		sep := ""
		for key := KeyW; key <= KeyB; key++ {
			if d.KeyDown(key) {
				sb.WriteString(sep)
				sb.WriteString(key.String())
				sep = " "
			}
		}
		sb.WriteString("]")
	}
	return sb.String()
}
