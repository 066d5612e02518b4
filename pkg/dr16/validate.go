package dr16

// Corrupted reports whether the decoded frame cannot be a legitimate
// receiver state: any channel outside [ChValueMin, ChValueMax] or
// either switch at 0 (no signal). Mouse, button and key fields have no
// corrupt signature and are never checked.
func (d *Data) Corrupted() bool {
	if d.ChRX < ChValueMin || d.ChRX > ChValueMax {
		return true
	}
	if d.ChRY < ChValueMin || d.ChRY > ChValueMax {
		return true
	}
	if d.ChLX < ChValueMin || d.ChLX > ChValueMax {
		return true
	}
	if d.ChLY < ChValueMin || d.ChLY > ChValueMax {
		return true
	}
	if d.SwL == 0 {
		return true
	}
	if d.SwR == 0 {
		return true
	}
	return false
}
