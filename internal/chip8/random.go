package chip8

import (
	"math/rand"
	"time"
)

// RandomSource produces uniform random bytes for the RND opcode. Kept as
// an interface, per spec, so tests can inject a deterministic stream
// instead of the default math/rand-backed one.
type RandomSource interface {
	Byte() Byte
}

// mathRandSource is the default RandomSource, backed by the standard
// library's math/rand, matching the teacher's use of rand.Float32() in its
// 0xC000 handler.
type mathRandSource struct {
	r *rand.Rand
}

// NewRandomSource returns the default RandomSource, seeded from wall time.
func NewRandomSource() RandomSource {
	return &mathRandSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (m *mathRandSource) Byte() Byte {
	return Byte(m.r.Intn(256))
}
