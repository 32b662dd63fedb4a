package bot

import (
	"math/rand/v2"
	"sync"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// Random is the source of every random choice the bot makes.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
	Float64() float64
}

// lockedRandom serialises draws from a shared source.
type lockedRandom struct {
	mu  sync.Mutex
	rnd Random
}

// NewLockedRandom - wraps rnd so one source can feed concurrent selectors.
func NewLockedRandom(rnd Random) Random {
	return &lockedRandom{rnd: rnd}
}

func (that *lockedRandom) IntN(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.IntN(n)
}

func (that *lockedRandom) Float64() float64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Float64()
}

const pcgStream = 0x9e3779b97f4a7c15

// NewRandom - returns a PCG source for seed, a zero seed picks one at random.
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64() //nolint: gosec // game randomness
	}

	return rand.New(rand.NewPCG(seed, seed^pcgStream)) //nolint: gosec // game randomness
}

// randomCell - picks uniformly among cells, NoMove when there are none.
func randomCell(cells []int, rnd Random) int {
	if len(cells) == 0 {
		return NoMove
	}

	return cells[rnd.IntN(len(cells))]
}

func emptyOf(board entity.Board, cells []int) []int {
	free := make([]int, 0, len(cells))

	for _, cell := range cells {
		if board.IsEmpty(cell) {
			free = append(free, cell)
		}
	}

	return free
}
