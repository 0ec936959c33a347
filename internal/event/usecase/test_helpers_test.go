package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"household-calendar/internal/event/repository"
	"household-calendar/internal/model"
	"household-calendar/pkg/log"
)

var errInsert = errors.New("insert failed")

type fakeRepo struct {
	mu       sync.Mutex
	seq      int
	events   map[string]model.Event
	failFrom int // CreateEvent fails once seq reaches failFrom (0 = never)
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{events: map[string]model.Event{}}
}

func (r *fakeRepo) CreateEvent(_ context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if r.failFrom > 0 && r.seq >= r.failFrom {
		return model.Event{}, errInsert
	}
	ev := model.Event{
		ID:           fmt.Sprintf("ev-%d", r.seq),
		WorkspaceID:  opt.WorkspaceID,
		CreatedBy:    opt.CreatedBy,
		Title:        opt.Title,
		Start:        opt.Start,
		End:          opt.End,
		Location:     opt.Location,
		Description:  opt.Description,
		Attendees:    opt.Attendees,
		MemberIDs:    opt.MemberIDs,
		RecurrenceID: opt.RecurrenceID,
		RRule:        opt.RRule,
	}
	r.events[ev.ID] = ev
	return ev, nil
}

func (r *fakeRepo) GetOneEvent(_ context.Context, opt repository.GetOneEventOptions) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[opt.ID]
	if !ok || (opt.WorkspaceID != "" && ev.WorkspaceID != opt.WorkspaceID) {
		return model.Event{}, nil
	}
	return ev, nil
}

func (r *fakeRepo) ListEvents(_ context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Event
	for _, ev := range r.events {
		if ev.WorkspaceID != opt.WorkspaceID {
			continue
		}
		if !opt.To.IsZero() && !ev.Start.Before(opt.To) {
			continue
		}
		if !opt.From.IsZero() && !ev.End.After(opt.From) {
			continue
		}
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (r *fakeRepo) DeleteEvent(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.events, id)
	return nil
}

func (r *fakeRepo) DeleteEventsByRecurrence(_ context.Context, opt repository.DeleteByRecurrenceOptions) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, ev := range r.events {
		if ev.WorkspaceID == opt.WorkspaceID && ev.RecurrenceID == opt.RecurrenceID && !ev.Start.Before(opt.From) {
			delete(r.events, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) Close() error { return nil }

type fakeMirror struct {
	mu     sync.Mutex
	events []model.Event
	err    error
}

func (m *fakeMirror) Mirror(_ context.Context, ev model.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return m.err
}

func (m *fakeMirror) mirrored() []model.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]model.Event(nil), m.events...)
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

var (
	scope  = model.Scope{UserID: "u1", WorkspaceID: "w1"}
	monday = time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)
)

func newTestUseCase(repo *fakeRepo, mirror *fakeMirror) *implUseCase {
	uc := &implUseCase{
		l:                 log.NewNop(),
		repo:              repo,
		mirrorConcurrency: 2,
		now:               func() time.Time { return monday },
	}
	if mirror != nil {
		uc.mirror = mirror
	}
	return uc
}

func proposal(title string, start time.Time, d time.Duration) model.EventProposal {
	return model.EventProposal{Title: title, Start: start, End: start.Add(d)}
}
