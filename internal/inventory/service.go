package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cornerstore/invtrack/internal/observability"
)

// Service orchestrates the load/edit/commit cycle over a Repository.
type Service struct {
	repo     Repository
	logger   *slog.Logger
	validate *validator.Validate
	metrics  *observability.Metrics
}

// NewService constructs Service.
func NewService(repo Repository, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		repo:     repo,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		metrics:  metrics,
	}
}

// Load reads a fresh baseline snapshot. It never caches, so the grid and the
// charts always reflect the latest committed state. An uninitialised store
// reads as an empty snapshot, not an error.
func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	snap, err := s.repo.FetchAll(ctx)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			return Snapshot{}, nil
		}
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	return snap, nil
}

// Commit reconciles the edit session against the baseline it was computed
// from and applies the resulting mutations in one transaction. An empty edit
// set is a no-op that never touches storage. On failure nothing is applied
// and the caller's edit set stays valid for a retry.
func (s *Service) Commit(ctx context.Context, edits EditSet, baseline Snapshot) error {
	if edits.Empty() {
		return nil
	}

	commitID := uuid.NewString()

	if err := s.validateEdits(edits); err != nil {
		s.metrics.ObserveCommit(observability.CommitOutcomeRejected, 0)
		s.logger.Warn("commit rejected",
			slog.String("commit_id", commitID),
			slog.Any("error", err))
		return err
	}

	muts, err := Plan(baseline, edits)
	if err != nil {
		s.metrics.ObserveCommit(observability.CommitOutcomeRejected, 0)
		s.logger.Warn("commit rejected",
			slog.String("commit_id", commitID),
			slog.Any("error", err))
		return err
	}

	if err := s.repo.ApplyMutations(ctx, muts); err != nil {
		s.metrics.ObserveCommit(observability.CommitOutcomeFailed, 0)
		s.logger.Error("commit failed",
			slog.String("commit_id", commitID),
			slog.Int("mutations", len(muts)),
			slog.Any("error", err))
		return err
	}

	s.metrics.ObserveCommit(observability.CommitOutcomeApplied, len(muts))
	s.logger.Info("commit applied",
		slog.String("commit_id", commitID),
		slog.Int("updates", len(edits.Updated)),
		slog.Int("inserts", len(edits.Added)),
		slog.Int("deletes", len(edits.Removed)))
	return nil
}

// validateEdits rejects values the schema would refuse (negative amounts and
// counts) before any mutation is planned.
func (s *Service) validateEdits(edits EditSet) error {
	for idx, patch := range edits.Updated {
		if err := s.validate.Struct(patch); err != nil {
			return fmt.Errorf("%w: updated row %d: %v", ErrValidation, idx, err)
		}
	}
	for i, draft := range edits.Added {
		if err := s.validate.Struct(draft); err != nil {
			return fmt.Errorf("%w: added row %d: %v", ErrValidation, i, err)
		}
	}
	return nil
}
