package parameter

import "github.com/ashenfell/brawlarc/vmath"

// Collision resolution
var (
	// PenetrationSlop is ignored overlap; avoids jitter on resting contact
	PenetrationSlop = vmath.FromFloat(0.01)

	// CorrectionPercent is the share of penetration corrected per step
	CorrectionPercent = vmath.FromFloat(0.8)
)
