package encoding

// PackRGBA merges four 8 bit channels into a single RGBA8888 uint32
func PackRGBA(r, g, b, a uint8) uint32 {
	return Merge16(Merge8(r, g), Merge8(b, a))
}

// UnpackRGBA splits an RGBA8888 uint32 back into four 8 bit channels
func UnpackRGBA(in uint32) (uint8, uint8, uint8, uint8) {
	rg, ba := Split32(in)
	r, g := Split16(rg)
	b, a := Split16(ba)
	return r, g, b, a
}

// PackABGR merges four 8 bit channels into a uint32 with alpha highest
// & red lowest. This is the channel order for packed float colors; the
// alpha byte lands on the float's sign & exponent bits so callers drop
// its lowest bit to avoid NaN patterns.
func PackABGR(r, g, b, a uint8) uint32 {
	return Merge16(Merge8(a, b), Merge8(g, r))
}

// UnpackABGR is the inversion of PackABGR
func UnpackABGR(in uint32) (uint8, uint8, uint8, uint8) {
	ab, gr := Split32(in)
	a, b := Split16(ab)
	g, r := Split16(gr)
	return r, g, b, a
}

// Split32 uint32 to two uint16
func Split32(in uint32) (uint16, uint16) {
	return uint16(in >> 16), uint16(in)
}

// Merge16 two uint16 to uint32
func Merge16(a, b uint16) uint32 {
	return (uint32(a) << 16) + uint32(b)
}

// Split16 uint16 to two uint8
func Split16(in uint16) (uint8, uint8) {
	return uint8(in >> 8), uint8(in)
}

// Merge8 two uint8 to uint16
func Merge8(a, b uint8) uint16 {
	return (uint16(a) << 8) + uint16(b)
}
