package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"household-calendar/internal/model"
)

// mirrorBatch pushes a batch to the external calendar. A batch stored in
// full with a rule becomes one recurring entry; anything else is mirrored
// occurrence by occurrence.
func (uc *implUseCase) mirrorBatch(ctx context.Context, created []model.Event, requested int, rrule string) {
	if uc.mirror == nil || len(created) == 0 {
		return
	}
	if rrule != "" && len(created) == requested {
		uc.mirrorAll(ctx, created[:1])
		return
	}

	singles := make([]model.Event, len(created))
	for i, ev := range created {
		ev.RRule = ""
		singles[i] = ev
	}
	uc.mirrorAll(ctx, singles)
}

// mirrorAll never fails the caller; errors are logged.
func (uc *implUseCase) mirrorAll(ctx context.Context, events []model.Event) {
	if uc.mirror == nil || len(events) == 0 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.mirrorConcurrency)
	for _, ev := range events {
		g.Go(func() error {
			if err := uc.mirror.Mirror(gctx, ev); err != nil {
				uc.l.Warnf(ctx, "event.usecase.mirror: id=%s: %v", ev.ID, err)
			}
			return nil
		})
	}
	_ = g.Wait()
}
