package service

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/apell0/managerspelet/internal/config"
	"github.com/apell0/managerspelet/internal/contract"
	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/rng"
	"github.com/apell0/managerspelet/internal/store"
	"github.com/apell0/managerspelet/internal/world"
)

// Service is the transactional boundary every CLI command calls through
// (spec §4.7): it owns the CareerManager, the feature-flag configuration,
// and the single RNG discipline mock-mode careers are seeded with.
type Service struct {
	Manager *store.CareerManager
	Config  *config.Config

	cachingProjector *contract.CachingProjector
}

// New builds a Service from a wired CareerManager and loaded configuration.
// When the manager's cache client has a live Redis connection, contract
// dumps are memoized by (career_id, world_version).
func New(manager *store.CareerManager, cfg *config.Config) *Service {
	svc := &Service{Manager: manager, Config: cfg}
	if manager != nil && manager.Cache != nil {
		svc.cachingProjector = contract.NewCachingProjector(manager.Cache, 30*time.Second)
	}
	return svc
}

// loadWorld resolves a career id to a GameState, honoring mock_mode: a
// mock career is read from mock_data_path if present, else generated fresh
// from mock_seed, and is never the on-disk save (spec §4.7).
func (s *Service) loadWorld(ctx context.Context, careerID string) (*world.GameState, error) {
	if s.Config.Features.MockMode {
		return s.loadMockWorld(careerID)
	}
	return s.Manager.Store.Load(ctx, careerID)
}

func (s *Service) loadMockWorld(careerID string) (*world.GameState, error) {
	if path := s.Config.Features.MockDataPath; path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			var w world.GameState
			if err := json.Unmarshal(data, &w); err == nil {
				w.EnsureContainers()
				return &w, nil
			}
		}
	}

	w, err := world.NewCareer(world.CareerOptions{
		CareerID: careerID, Structure: core.FormatFlat,
		Levels: 1, TeamsPerDivision: 8, DoubleRound: true,
		PromoteCount: 0, RelegateCount: 0,
		UserTeamName: "Mock FC", Seed: s.Config.Features.MockSeed,
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// persistAllowed reports whether a transaction that asked to persist is
// actually allowed to write, honoring disable_persist and mock_mode's
// "no file written unless persist_changes is explicitly enabled" rule
// (spec §4.7).
func (s *Service) persistAllowed(requested bool) bool {
	if !requested {
		return false
	}
	if s.Config.Features.DisablePersist {
		return false
	}
	if s.Config.Features.MockMode && !s.Config.Features.PersistChanges {
		return false
	}
	return true
}

// WithWorld implements the scoped `with_world(persist)` transaction (spec
// §4.7/§9): it loads the named career, yields it to fn, and persists the
// (possibly mutated) world back only when fn succeeds and persist is
// actually allowed. The advisory Redis lock, when configured, serializes
// concurrent transactional calls against the same career id.
func (s *Service) WithWorld(ctx context.Context, careerID string, persist bool, fn func(*world.GameState) (any, error)) Result {
	log := opLogger("with_world", careerID)

	var token string
	if s.Manager.Lock != nil && persist {
		t, err := s.Manager.Lock.Acquire(ctx, careerID)
		if err != nil {
			log.Warn("failed to acquire career lock", "err", err)
			return Fail(err)
		}
		token = t
		defer func() {
			if releaseErr := s.Manager.Lock.Release(ctx, careerID, token); releaseErr != nil {
				log.Warn("failed to release career lock", "err", releaseErr)
			}
		}()
	}

	w, err := s.loadWorld(ctx, careerID)
	if err != nil {
		log.Warn("failed to load world", "err", err, "code", core.Code(err))
		return Fail(err)
	}

	data, err := fn(w)
	if err != nil {
		log.Warn("operation failed", "err", err, "code", core.Code(err))
		return Fail(err)
	}

	if s.persistAllowed(persist) {
		w.Meta.Version++
		if err := s.Manager.Save(ctx, careerID, w); err != nil {
			log.Error("failed to persist world", "err", err)
			return Fail(err)
		}
	}

	log.Debug("operation succeeded")
	return Ok(data)
}

// transactionRNG derives a fresh RNG for one mutating transaction from the
// career's fixed seed and its about-to-be-written version counter, so
// repeated calls against the same career never replay an identical draw
// sequence while the whole run stays reproducible from the original seed.
func transactionRNG(w *world.GameState) *rng.Source {
	return rng.New(w.Meta.RNGSeed ^ uint64(w.Meta.Version+1))
}
