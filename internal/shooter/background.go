package shooter

// backgroundLayers is the number of parallax star layers.
const backgroundLayers = 4

// backgroundMaxSpeed is the scroll speed of the nearest layer.
const backgroundMaxSpeed = WorldHeight / 2

// Background holds one scroll offset per layer. Layer i scrolls at
// backgroundMaxSpeed / 2^(3-i), so the farthest layer is eight times slower
// than the nearest.
type Background struct {
	Offsets [backgroundLayers]float64
}

// Advance scrolls every layer and wraps any offset that passes the world height.
func (b *Background) Advance(dt float64) {
	divisor := 8.0
	for i := range b.Offsets {
		b.Offsets[i] += dt * backgroundMaxSpeed / divisor
		if b.Offsets[i] > WorldHeight {
			b.Offsets[i] = 0
		}
		divisor /= 2
	}
}
