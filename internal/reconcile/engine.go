package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"hearthplan/internal/contract"
	"hearthplan/internal/db"
	"hearthplan/internal/domain"
	"hearthplan/internal/generator"
	"hearthplan/internal/repository"
	"hearthplan/internal/timeutil"
)

// Engine runs full schedule regeneration for one week: it loads current
// state, materializes commitments, asks the generator for placements,
// resolves conflicts, and atomically replaces all non-manual blocks.
type Engine struct {
	schedules   repository.ScheduleRepo
	blocks      repository.BlockRepo
	members     repository.MemberRepo
	goals       repository.GoalRepo
	commitments repository.CommitmentRepo
	gen         generator.Generator
	uow         db.UnitOfWork
	logger      *slog.Logger
	locks       *keyedMutex
}

// NewEngine wires a reconciliation engine. logger may be nil.
func NewEngine(
	schedules repository.ScheduleRepo,
	blocks repository.BlockRepo,
	members repository.MemberRepo,
	goals repository.GoalRepo,
	commitments repository.CommitmentRepo,
	gen generator.Generator,
	uow db.UnitOfWork,
	logger *slog.Logger,
) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		schedules:   schedules,
		blocks:      blocks,
		members:     members,
		goals:       goals,
		commitments: commitments,
		gen:         gen,
		uow:         uow,
		logger:      logger,
		locks:       newKeyedMutex(),
	}
}

// GenerateWeek regenerates the schedule for (req.OwnerID, req.WeekStart).
// Manual blocks always survive untouched; prior fixed and AI blocks are
// discarded and recomputed. If the generator fails, nothing is written.
func (e *Engine) GenerateWeek(ctx context.Context, req contract.GenerateScheduleRequest) (*contract.GenerateScheduleResponse, error) {
	if !timeutil.IsMonday(req.WeekStart) {
		return nil, fmt.Errorf("%w: week start %s is not a Monday",
			domain.ErrInvalidInput, req.WeekStart.Format("2006-01-02"))
	}
	weekStart := timeutil.StartOfDay(req.WeekStart)

	unlock := e.locks.Lock(req.OwnerID + "|" + weekStart.Format("2006-01-02"))
	defer unlock()

	schedule, err := e.ensureSchedule(ctx, req.OwnerID, weekStart)
	if err != nil {
		return nil, err
	}

	existing, err := e.blocks.ListBySchedule(ctx, schedule.ID)
	if err != nil {
		return nil, err
	}
	manual, stale := Partition(existing)

	members, err := e.members.List(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := e.goals.List(ctx)
	if err != nil {
		return nil, err
	}
	commitments, err := e.commitments.List(ctx)
	if err != nil {
		return nil, err
	}

	materialized, err := MaterializeCommitments(commitments, weekStart)
	if err != nil {
		return nil, err
	}
	fixed, conflicts := FilterBlocks(materialized, manual, contract.ConflictFixedOverlapsManual)
	for _, ev := range conflicts {
		e.logger.Warn("fixed commitment suppressed by manual block",
			"title", ev.Title, "owner", ev.OwnerID, "day", ev.Day)
	}

	// The generator sees occupied time so it can plan around it. Its
	// failure aborts generation before any write; existing blocks stay
	// intact.
	proposals, err := e.gen.Propose(ctx, generator.Input{
		WeekStart:    weekStart,
		Strategy:     req.Strategy,
		Preferences:  req.Preferences,
		Members:      members,
		Goals:        goals,
		FixedBlocks:  fixed,
		ManualBlocks: manual,
	})
	if err != nil {
		return nil, err
	}

	var candidates []domain.TimeBlock
	for _, p := range proposals {
		placement, err := generator.ValidateProposal(p, members, goals)
		if err != nil {
			e.logger.Warn("placement proposal rejected", "title", p.Title, "reason", err)
			conflicts = append(conflicts, contract.ConflictEvent{
				Title:   p.Title,
				OwnerID: p.OwnerID,
				Day:     p.Day,
				Reason:  contract.ConflictPlacementInvalid,
				Detail:  err.Error(),
			})
			continue
		}
		candidates = append(candidates, PlacementBlock(placement, weekStart))
	}

	placed := make([]domain.TimeBlock, 0, len(manual)+len(fixed))
	placed = append(placed, manual...)
	placed = append(placed, fixed...)
	accepted, placementConflicts := FilterBlocks(candidates, placed, contract.ConflictPlacementOverlaps)
	for _, ev := range placementConflicts {
		e.logger.Info("placement suppressed by existing block",
			"title", ev.Title, "owner", ev.OwnerID, "day", ev.Day, "detail", ev.Detail)
	}
	conflicts = append(conflicts, placementConflicts...)

	inserts := e.bindBlocks(schedule.ID, fixed, accepted)
	staleIDs := make([]string, len(stale))
	for i := range stale {
		staleIDs[i] = stale[i].ID
	}

	// Atomic swap: a reader never observes a schedule missing its fixed
	// or AI blocks mid-update. Manual blocks are not part of the delete set.
	err = e.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBlocks := repository.NewSQLiteBlockRepo(tx)
		if err := txBlocks.SoftDeleteMany(ctx, staleIDs); err != nil {
			return err
		}
		if err := txBlocks.CreateMany(ctx, inserts); err != nil {
			return err
		}
		return repository.NewSQLiteScheduleRepo(tx).Touch(ctx, schedule.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("persisting regenerated schedule: %w", err)
	}

	final := make([]domain.TimeBlock, 0, len(manual)+len(inserts))
	final = append(final, manual...)
	for _, b := range inserts {
		final = append(final, *b)
	}
	sort.Slice(final, func(i, j int) bool { return final[i].Start.Before(final[j].Start) })

	e.logger.Info("schedule regenerated",
		"owner", req.OwnerID, "week", weekStart.Format("2006-01-02"),
		"blocks", len(final), "conflicts", len(conflicts))

	return &contract.GenerateScheduleResponse{
		ScheduleID: schedule.ID,
		Summary:    Summarize(final, goals, conflicts),
		Blocks:     final,
		Conflicts:  conflicts,
	}, nil
}

func (e *Engine) ensureSchedule(ctx context.Context, ownerID string, weekStart time.Time) (*domain.Schedule, error) {
	schedule, err := e.schedules.GetByOwnerWeek(ctx, ownerID, weekStart)
	if err == nil {
		return schedule, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	schedule = &domain.Schedule{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		WeekStart: weekStart,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := e.schedules.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// bindBlocks assigns identity, schedule membership, and timestamps to the
// freshly computed fixed and AI blocks.
func (e *Engine) bindBlocks(scheduleID string, fixed, accepted []domain.TimeBlock) []*domain.TimeBlock {
	now := time.Now().UTC()
	out := make([]*domain.TimeBlock, 0, len(fixed)+len(accepted))
	for _, group := range [][]domain.TimeBlock{fixed, accepted} {
		for _, b := range group {
			b.ID = uuid.New().String()
			b.ScheduleID = scheduleID
			b.CreatedAt = now
			b.UpdatedAt = now
			out = append(out, &b)
		}
	}
	return out
}
