package main

import "time"

// 32 bit Mersenne Twister (MT19937) with the reference init_genrand
// seeding, so a seed produces the same stream as any other conforming
// implementation.
const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

type mt19937 struct {
	state [mtN]uint32
	index int
}

func (mt *mt19937) seed(s uint32) {
	mt.state[0] = s
	for i := 1; i < mtN; i++ {
		prev := mt.state[i-1]
		mt.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	mt.index = mtN
}

func (mt *mt19937) twist() {
	for i := 0; i < mtN; i++ {
		y := (mt.state[i] & mtUpperMask) | (mt.state[(i+1)%mtN] & mtLowerMask)
		v := mt.state[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			v ^= mtMatrixA
		}
		mt.state[i] = v
	}
	mt.index = 0
}

func (mt *mt19937) Uint32() uint32 {
	if mt.index >= mtN {
		mt.twist()
	}
	y := mt.state[mt.index]
	mt.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Random is the stream every random decision is drawn from. Searches take
// one explicitly so a fixed seed reproduces a run exactly.
type Random struct {
	mt mt19937
}

func NewRandom(seed uint32) *Random {
	r := &Random{}
	r.Seed(seed)
	return r
}

// NewTimeSeededRandom seeds from the clock and returns the seed used.
func NewTimeSeededRandom() (*Random, uint32) {
	seed := uint32(time.Now().Unix())
	return NewRandom(seed), seed
}

func (r *Random) Seed(seed uint32) {
	r.mt.seed(seed)
}

// RandInt returns next % (max+1), a value in [0, max] inclusive. Seeded
// runs depend on this exact reduction, modulo bias included.
func (r *Random) RandInt(max int) int {
	return int(r.mt.Uint32() % uint32(max+1))
}

// GenRandomSubstCipher returns a random permutation of the alphabet.
func GenRandomSubstCipher(r *Random) Key {
	k := identityKey()
	for i := len(k) - 1; i >= 1; i-- {
		j := r.RandInt(i - 1)
		k.swap(i, j)
	}
	return k
}
