package transmission

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]int{
		0: 0, -3: 0, 0.49: 0, 0.5: 1, 1.5: 2, 2.5: 3, 14.99: 15, 15: 15,
	}
	for in, want := range cases {
		assert.Equal(t, want, RoundHalfUp(in), "RoundHalfUp(%g)", in)
	}
	assert.Zero(t, RoundHalfUp(math.NaN()))

	for _, huge := range []float64{float64(math.MaxInt), 1e19, 1e300, math.Inf(1)} {
		assert.Equal(t, math.MaxInt, RoundHalfUp(huge), "RoundHalfUp(%g) saturates", huge)
	}
}

// TestPoissonMean checks the sample mean of both sampling regimes.
func TestPoissonMean(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, lambda := range []float64{0.5, 3, 12, 50} {
		const n = 20000
		sum := 0
		for i := 0; i < n; i++ {
			k := poisson(rng, lambda)
			require.GreaterOrEqual(t, k, 0)
			sum += k
		}
		mean := float64(sum) / n
		assert.InEpsilon(t, lambda, mean, 0.05, "lambda=%g", lambda)
	}
	assert.Zero(t, poisson(rng, 0))
}

// TestConfigDefaults verifies deterministic defaults and option order.
func TestConfigDefaults(t *testing.T) {
	cfg := newConfig()
	assert.Equal(t, DefaultSeedCount, cfg.seed)
	assert.Equal(t, DefaultMaxNodes, cfg.maxNodes)
	assert.Equal(t, DefaultMaxGenerations, cfg.maxGenerations)
	assert.Nil(t, cfg.rng)
	assert.False(t, cfg.custom)
	assert.Equal(t, "7", cfg.idFn(7, 1, 2))

	cfg = newConfig(WithSeedCount(2), WithSeedCount(5), WithRand(nil))
	assert.Equal(t, 5, cfg.seed)
	assert.Nil(t, cfg.rng)

	cfg = newConfig(WithPoissonOffspring(), WithOffspring(RoundedOffspring))
	assert.False(t, cfg.stochastic, "a later deterministic rule replaces Poisson")
	assert.True(t, cfg.custom)

	a := newConfig(WithSeed(9))
	b := newConfig(WithSeed(9))
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())
}
