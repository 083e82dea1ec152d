package scheduling

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavesplit/internal/domain"
)

func suites(runtimes ...float64) []*domain.SuiteRecord {
	out := make([]*domain.SuiteRecord, len(runtimes))
	for i, r := range runtimes {
		out[i] = &domain.SuiteRecord{Name: string(rune('A' + i)), Tests: "1", Runtime: r}
	}
	return out
}

func labels(records []*domain.SuiteRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Wave
	}
	return out
}

func TestBalance_TieBreak(t *testing.T) {
	t.Run("one wave", func(t *testing.T) {
		records := Balance(suites(10, 10), 1)
		assert.Equal(t, []string{"wave 1", "wave 1"}, labels(records))
	})

	t.Run("two waves", func(t *testing.T) {
		records := Balance(suites(10, 10), 2)
		assert.Equal(t, []string{"wave 1", "wave 2"}, labels(records))
	})

	t.Run("equal runtimes keep pool order", func(t *testing.T) {
		records := Balance(suites(5, 5, 5, 5), 3)
		assert.Equal(t, []string{"wave 1", "wave 2", "wave 3", "wave 1"}, labels(records))
	})
}

func TestBalance_LongestFirst(t *testing.T) {
	// Sorted: 8(C) 7(D) 6(B) 5(E) 4(A)
	// C->w1(8) D->w2(7) B->w2(13) E->w1(13) A->w1(17)
	records := Balance(suites(4, 6, 8, 7, 5), 2)

	assert.Equal(t, []string{"wave 1", "wave 2", "wave 1", "wave 2", "wave 1"}, labels(records))
	assert.Equal(t, "A", records[0].Name, "pool order is unchanged")
}

func TestBalance_InvalidWaveCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		records := Balance(suites(3, 2, 1), n)
		for _, r := range records {
			assert.False(t, r.Assigned())
		}
	}
}

func TestBalance_Empty(t *testing.T) {
	assert.Empty(t, Balance(nil, 3))

	waves := NewLPTScheduler().Schedule(nil, 3)
	require.Len(t, waves, 3)
	for _, w := range waves {
		assert.Zero(t, w.Runtime)
	}
}

func TestBalance_MutatesCallerRecords(t *testing.T) {
	pool := suites(1, 2, 3)
	returned := Balance(pool, 2)

	require.Len(t, returned, len(pool))
	for i := range pool {
		assert.Same(t, pool[i], returned[i])
		assert.True(t, pool[i].Assigned())
	}
}

func TestLPTScheduler_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	scheduler := NewLPTScheduler()

	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(40)
		waveCount := 1 + rng.Intn(8)

		runtimes := make([]float64, n)
		var sum, longest float64
		for i := range runtimes {
			runtimes[i] = float64(rng.Intn(10000)) / 100
			sum += runtimes[i]
			if runtimes[i] > longest {
				longest = runtimes[i]
			}
		}

		records := suites(runtimes...)
		waves := scheduler.Schedule(records, waveCount)
		require.Len(t, waves, waveCount)

		// Conservation: every suite lands in exactly one wave.
		var assigned int
		var total float64
		for _, w := range waves {
			assigned += len(w.Suites)
			total += w.Runtime
			for _, s := range w.Suites {
				assert.Equal(t, w.Label(), s.Wave)
			}
		}
		assert.Equal(t, n, assigned)
		assert.InDelta(t, sum, total, 1e-6)

		// Classical LPT bound.
		bound := sum/float64(waveCount) + longest
		assert.LessOrEqual(t, Makespan(waves), bound+1e-9)

		// Determinism.
		again := suites(runtimes...)
		scheduler.Schedule(again, waveCount)
		assert.Equal(t, labels(records), labels(again))
	}
}

func TestRoundRobinScheduler_Schedule(t *testing.T) {
	records := suites(1, 2, 3, 4, 5)
	waves := NewRoundRobinScheduler().Schedule(records, 2)

	require.Len(t, waves, 2)
	assert.Equal(t, []string{"wave 1", "wave 2", "wave 1", "wave 2", "wave 1"}, labels(records))
	assert.Equal(t, 9.0, waves[0].Runtime)
	assert.Equal(t, 6.0, waves[1].Runtime)

	assert.Nil(t, NewRoundRobinScheduler().Schedule(records, 0))
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "", want: StrategyLPT},
		{name: "lpt", want: StrategyLPT},
		{name: "round-robin", want: StrategyRoundRobin},
		{name: "random", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStrategy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Name())
		})
	}
}
