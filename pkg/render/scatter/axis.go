package scatter

import (
	"math"
	"strconv"
)

// axis is a data range rounded outwards to whole tick steps.
type axis struct {
	min, max, step float64
}

// newAxis picks a "nice" range covering [lo, hi] with roughly n ticks.
// An empty range (lo > hi) falls back to [0, 1]. The result is invalid when
// the padded range does not fit in a float64.
func newAxis(lo, hi float64, n int) axis {
	if lo > hi {
		lo, hi = 0, 1
	}
	if lo == hi {
		d := max(1, math.Abs(lo)*0.1)
		lo, hi = lo-d, hi+d
	}
	pad := (hi - lo) * 0.05
	lo, hi = lo-pad, hi+pad

	span := niceNum(hi-lo, false)
	step := niceNum(span/float64(max(n-1, 1)), true)
	return axis{
		min:  math.Floor(lo/step) * step,
		max:  math.Ceil(hi/step) * step,
		step: step,
	}
}

func (a axis) valid() bool {
	return finite(a.min) && finite(a.max) && finite(a.step) && a.step > 0 && finite(a.max-a.min)
}

func niceNum(x float64, round bool) float64 {
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)

	var nf float64
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 3:
			nf = 2
		case f < 7:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2:
			nf = 2
		case f <= 5:
			nf = 5
		default:
			nf = 10
		}
	}
	return nf * math.Pow(10, exp)
}

func (a axis) ticks() []float64 {
	n := int(math.Round((a.max - a.min) / a.step))
	out := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		v := a.min + float64(i)*a.step
		if math.Abs(v) < a.step*1e-9 {
			v = 0
		}
		out = append(out, v)
	}
	return out
}

// scale maps v from the axis range onto [from, to].
func (a axis) scale(v, from, to float64) float64 {
	return from + (v-a.min)/(a.max-a.min)*(to-from)
}

func (a axis) format(v float64) string {
	decimals := 0
	if a.step < 1 {
		decimals = int(math.Ceil(-math.Log10(a.step) - 1e-9))
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
