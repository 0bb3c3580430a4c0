package world

// chunkRNG is a small deterministic LCG. Each chunk gets its own stream so
// generation order never changes the result.
type chunkRNG struct {
	state int64
}

func newChunkRNG(seed int64, offX, offZ int, salt int64) *chunkRNG {
	s := seed ^ (int64(offX)*341873128712 + int64(offZ)*132897987541 + salt)
	return &chunkRNG{state: s}
}

func (r *chunkRNG) next() int64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// intN returns a value in [0, n).
func (r *chunkRNG) intN(n int) int {
	v := int(r.next()>>33) % n
	if v < 0 {
		v = -v
	}
	return v
}

// float64 returns a value in [0, 1).
func (r *chunkRNG) float64() float64 {
	return float64(uint64(r.next())>>11) / (1 << 53)
}
