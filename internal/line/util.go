package line

// valuePlot meets the Plotter interface.
// We only want one value per step so we keep the first Set for each x
// (steep "lines" visit the same x more than once).
type valuePlot struct {
	values []int
	seen   []bool
}

// Set records the value y at step x
func (v *valuePlot) Set(x, y int) {
	if x < 0 || x >= len(v.values) || v.seen[x] {
		return
	}
	v.values[x] = y
	v.seen[x] = true
}

// Values returns `steps` integer values running from a to b (inclusive)
// using bresenham's error term to spread the remainder evenly.
// Ie. Values(0, 10, 5) steps 0 -> 10 in 5 hops without float rounding
// drift & with the same spacing every call.
func Values(a, b, steps int) []int {
	if steps <= 0 {
		return []int{}
	}
	if steps == 1 {
		return []int{a}
	}
	vp := &valuePlot{values: make([]int, steps), seen: make([]bool, steps)}
	bresenham(vp, 0, a, steps-1, b)
	vp.values[0] = a
	vp.values[steps-1] = b // quantisation can nudge the ends, pin them
	return vp.values
}
