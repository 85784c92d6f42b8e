package engine

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource - единственный источник случайности движка.
// В проде используется криптографический источник, в тестах и симуляциях - с сидом
type RandomSource interface {
	// IntN равномерное целое в [0, n). Паникует при n <= 0
	IntN(n int) int
	// Float64 равномерное число в [0, 1)
	Float64() float64
}

type cryptoRNG struct{}

func (cryptoRNG) uint64() uint64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Uint64()
	}
	return binary.BigEndian.Uint64(buf[:])
}

func (c cryptoRNG) IntN(n int) int {
	if n <= 0 {
		panic("engine: IntN called with n <= 0")
	}
	// Отбрасываем хвост, чтобы не было смещения по модулю
	bound := uint64(n)
	limit := ^uint64(0) - (^uint64(0) % bound)
	for {
		v := c.uint64()
		if v < limit {
			return int(v % bound)
		}
	}
}

func (c cryptoRNG) Float64() float64 {
	// 53 бита мантиссы => [0, 1)
	return float64(c.uint64()>>11) / (1 << 53)
}

// DefaultRNG криптографический источник по умолчанию
func DefaultRNG() RandomSource { return cryptoRNG{} }

type seededRNG struct{ r *rand.Rand }

// NewSeededRNG воспроизводимый источник (тесты, симуляции RTP)
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) IntN(n int) int { return s.r.IntN(n) }

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

// shuffle - Фишер-Йетс поверх любого RandomSource
func shuffle(rng RandomSource, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		swap(i, j)
	}
}
