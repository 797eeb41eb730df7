package hand

// Picker supplies uniform choices among n items. *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// FixedPicker always picks the same index, clamped to the available range.
// It makes discards predictable in tests.
type FixedPicker int

func (f FixedPicker) Intn(n int) int {
	i := int(f)
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
