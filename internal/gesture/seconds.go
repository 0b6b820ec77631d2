package gesture

// TimeMode selects how a raw held duration in milliseconds is reported
// as a whole-second value in HOLD_<n>S action names. The four flag
// combinations are independent presentation policies over the same raw
// duration; existing configuration files key on the exact values each
// policy produces, so the formulas must not be "simplified".
type TimeMode struct {
	// Full reports every whole second instead of odd seconds only.
	Full bool
	// Offset shifts the bucket boundaries by half a second.
	Offset bool
}

// Seconds converts a held duration in milliseconds to the reported
// seconds value for this mode.
//
//	Full Offset  buckets
//	 no   no     odd seconds, 3-second buckets centered on them
//	 no   yes    odd seconds, boundaries at even whole seconds
//	 yes  no     every second, truncated
//	 yes  yes    every second, rounded to nearest
func (m TimeMode) Seconds(ms int) int {
	switch {
	case m.Full && m.Offset:
		return (ms + 500) / 1000
	case m.Full:
		return ms / 1000
	case m.Offset:
		s := ms / 1000
		return s + (s+1)%2
	default:
		return 1 + ((ms-1000)/2000)*2
	}
}
