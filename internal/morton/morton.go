package morton

// Lane masks over a 32-bit interleaved word.
const (
	// EvenMask selects the x lane (bit 0 = x LSB).
	EvenMask uint32 = 0x55555555
	// OddMask selects the y lane (bit 1 = y LSB).
	OddMask uint32 = 0xAAAAAAAA
)

// MaxBits is the widest lane supported.
const MaxBits = 16

// Spread moves the 16 bits of v to the even bit positions of the result.
func Spread(v uint16) uint32 {
	x := uint32(v)
	x = (x | x<<8) & 0x00FF00FF
	x = (x | x<<4) & 0x0F0F0F0F
	x = (x | x<<2) & 0x33333333
	x = (x | x<<1) & 0x55555555
	return x
}

// Compact gathers the even bits of z into a 16-bit value. It is the inverse
// of Spread; odd bits of z are ignored.
func Compact(z uint32) uint16 {
	x := z & EvenMask
	x = (x | x>>1) & 0x33333333
	x = (x | x>>2) & 0x0F0F0F0F
	x = (x | x>>4) & 0x00FF00FF
	x = (x | x>>8) & 0x0000FFFF
	return uint16(x)
}

// Interleave packs x into the even lane and y into the odd lane.
func Interleave(x, y uint16) uint32 {
	return Spread(x) | Spread(y)<<1
}

// Deinterleave splits z into its even (x) and odd (y) lanes.
func Deinterleave(z uint32) (x, y uint16) {
	return Compact(z), Compact(z >> 1)
}

// X returns the even lane of z.
func X(z uint32) uint16 { return Compact(z) }

// Y returns the odd lane of z.
func Y(z uint32) uint16 { return Compact(z >> 1) }

// WithX replaces the even lane of z.
func WithX(z uint32, x uint16) uint32 {
	return z&OddMask | Spread(x)
}

// WithY replaces the odd lane of z.
func WithY(z uint32, y uint16) uint32 {
	return z&EvenMask | Spread(y)<<1
}

// CodeMask returns the mask covering an interleaved word built from two
// lanes of the given width. Widths above MaxBits are treated as MaxBits.
func CodeMask(bits uint) uint32 {
	if bits >= MaxBits {
		return 0xFFFFFFFF
	}
	return uint32(1)<<(2*bits) - 1
}

// LaneMask returns the mask for a single lane value of the given width.
func LaneMask(bits uint) uint32 {
	if bits >= MaxBits {
		return 0xFFFF
	}
	return uint32(1)<<bits - 1
}
