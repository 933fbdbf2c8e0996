package telemetry

import (
	"context"
	"math/rand"
	"time"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/logger"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/storage"
)

// Simulator stands in for real vehicle trackers during development. It
// produces plausible random deltas for every taxi and pushes them through
// the same Apply path the broker consumer uses.
type Simulator struct {
	store    storage.Store
	interval time.Duration
	log      *logger.Logger
	rng      *rand.Rand
}

func NewSimulator(store storage.Store, interval time.Duration, log *logger.Logger) *Simulator {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Simulator{
		store:    store,
		interval: interval,
		log:      log,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run ticks until ctx ends.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info(logger.Entry{
		Action:  "telemetry_simulator_started",
		Message: "generating simulated telemetry",
		Additional: map[string]any{
			"interval_sec": s.interval.Seconds(),
		},
	})

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Simulator) tick(ctx context.Context) {
	all, err := s.store.GetAllTaxiStats(ctx)
	if err != nil {
		s.log.Error(logger.Entry{
			Action:  "telemetry_simulator_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		return
	}

	for _, st := range all {
		report := Report{
			TaxiID:          st.TaxiID,
			PassengersDelta: s.rng.Intn(4),
			DistanceDelta:   s.rng.Float64() * 5,
			EfficiencyDelta: s.rng.Float64()*4 - 2,
			FuelDelta:       s.rng.Float64() * 2,
			EarningsDelta:   s.rng.Float64() * 500,
		}
		if _, err := Apply(ctx, s.store, report); err != nil {
			s.log.Warn(logger.Entry{
				Action:  "telemetry_simulator_apply_failed",
				Message: err.Error(),
				TaxiID:  st.TaxiID,
			})
		}
	}
}
