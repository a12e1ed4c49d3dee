package vcf2seq

import (
	"github.com/cznic/mathutil"
)

// clampInterval bounds [start, end) by the chromosome [0, length).
func clampInterval(start, end, length int) (int, int) {
	return mathutil.Max(start, 0), mathutil.Min(end, length)
}
