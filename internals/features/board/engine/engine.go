// Package engine turns board gestures (select a template, pick a slot, remove an
// instance) into REST calls against the lesson backend.
package engine

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"collegeschedule_backend/internals/constants"
	"collegeschedule_backend/internals/features/board/catalog"
	"collegeschedule_backend/internals/features/board/model"
	"collegeschedule_backend/internals/features/board/pool"
	"collegeschedule_backend/internals/features/board/registry"
	"collegeschedule_backend/internals/helpers/dbtime"
	"collegeschedule_backend/internals/helpers/flash"
)

// Backend is the REST collaborator the board reads from and writes to.
type Backend interface {
	Groups(ctx context.Context) ([]model.Group, error)
	Teachers(ctx context.Context) ([]model.Teacher, error)
	Subjects(ctx context.Context) ([]model.Subject, error)
	ActiveTimeSlots(ctx context.Context) ([]model.TimeSlot, error)
	Lessons(ctx context.Context, q model.LessonQuery) ([]model.LessonRecord, error)
	AvailableLessons(ctx context.Context) ([]model.LessonRecord, error)
	CreateLesson(ctx context.Context, in model.LessonInput) (model.LessonRecord, error)
	UpdateLesson(ctx context.Context, id string, p model.LessonPatch) (model.LessonRecord, error)
	DeleteLesson(ctx context.Context, id string) error
}

// Notifier raises a transient message for the board's owner.
type Notifier interface {
	Notify(ctx context.Context, level flash.Level, message string)
}

type State string

const (
	Idle      State = "idle"
	Selecting State = "selecting"
)

type Board struct {
	backend Backend
	notify  Notifier
	now     func() time.Time

	mu       sync.Mutex
	weekday  int
	shift    int
	catalog  *catalog.Catalog
	slots    *registry.Registry
	pool     *pool.Pool
	selected *model.Template
	banner   string
	loaded   bool

	inflight singleflight.Group
}

func New(backend Backend, notify Notifier) *Board {
	now := dbtime.NowInCollege
	wd := dbtime.ISOWeekday(now())
	if wd > constants.Friday {
		wd = constants.Monday
	}
	return &Board{
		backend: backend,
		notify:  notify,
		now:     now,
		weekday: wd,
		shift:   constants.FirstShift,
		catalog: catalog.Empty(),
		slots:   registry.New(nil),
		pool:    pool.New(),
	}
}

// WithClock swaps the time source; tests only.
func (b *Board) WithClock(now func() time.Time) *Board {
	b.now = now
	return b
}

/* =========================================================
   Date math
   ========================================================= */

// ComputeTargetDate places weekday inside ref's Monday-start week.
func ComputeTargetDate(weekday int, ref time.Time) string {
	return dbtime.WeekStart(ref).AddDate(0, 0, weekday-1).Format(constants.DateLayout)
}

// IsDuplicate reports whether view already holds t's triple in slot.
func IsDuplicate(view pool.View, slot model.TimeSlot, t model.Template) bool {
	want := t.Triple()
	for _, inst := range view.InSlot(slot) {
		if inst.Triple() == want {
			return true
		}
	}
	return false
}

/* =========================================================
   Loading
   ========================================================= */

// Load fetches reference data, slots and lessons. A failure leaves the previous
// snapshot in place and sets the banner.
func (b *Board) Load(ctx context.Context) error {
	var (
		groups    []model.Group
		teachers  []model.Teacher
		subjects  []model.Subject
		slots     []model.TimeSlot
		available []model.LessonRecord
		lessons   []model.LessonRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { groups, err = b.backend.Groups(gctx); return })
	g.Go(func() (err error) { teachers, err = b.backend.Teachers(gctx); return })
	g.Go(func() (err error) { subjects, err = b.backend.Subjects(gctx); return })
	g.Go(func() (err error) { slots, err = b.backend.ActiveTimeSlots(gctx); return })
	g.Go(func() (err error) { available, err = b.backend.AvailableLessons(gctx); return })
	g.Go(func() (err error) { lessons, err = b.backend.Lessons(gctx, model.LessonQuery{}); return })

	err := g.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.banner = "Failed to load data: " + Describe(err)
		log.Printf("[WARN] board load: %v", err)
		return err
	}
	b.catalog = catalog.New(groups, teachers, subjects)
	b.slots = registry.New(slots)
	b.pool.Replace(available, lessons)
	b.banner = ""
	b.loaded = true
	b.reselectLocked()
	return nil
}

// EnsureLoaded loads once; later calls are no-ops until Load is called again.
func (b *Board) EnsureLoaded(ctx context.Context) error {
	b.mu.Lock()
	loaded := b.loaded
	b.mu.Unlock()
	if loaded {
		return nil
	}
	return b.Load(ctx)
}

// Refresh re-reads lessons, loading everything first if nothing is loaded yet.
func (b *Board) Refresh(ctx context.Context) error {
	b.mu.Lock()
	loaded := b.loaded
	b.mu.Unlock()
	if !loaded {
		return b.Load(ctx)
	}
	return b.refreshLessons(ctx)
}

// reselectLocked swaps the held template for its fresh copy, or drops it.
func (b *Board) reselectLocked() {
	if b.selected == nil {
		return
	}
	if t, ok := b.pool.Template(b.selected.ID); ok {
		b.selected = &t
		return
	}
	b.selected = nil
}

// refreshLessons re-reads templates and instances after a mutation or view change.
func (b *Board) refreshLessons(ctx context.Context) error {
	var available, lessons []model.LessonRecord
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { available, err = b.backend.AvailableLessons(gctx); return })
	g.Go(func() (err error) { lessons, err = b.backend.Lessons(gctx, model.LessonQuery{}); return })
	err := g.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.banner = "Failed to refresh lessons: " + Describe(err)
		log.Printf("[WARN] board refresh: %v", err)
		return err
	}
	b.pool.Replace(available, lessons)
	b.banner = ""
	b.reselectLocked()
	return nil
}

/* =========================================================
   View + selection
   ========================================================= */

// SetView switches the column. A loaded board re-reads lessons when the column changes.
func (b *Board) SetView(ctx context.Context, weekday, shift int) error {
	if !constants.IsValidWeekday(weekday) || !constants.IsValidShift(shift) {
		return ErrBadView
	}
	b.mu.Lock()
	changed := b.weekday != weekday || b.shift != shift
	b.weekday, b.shift = weekday, shift
	loaded := b.loaded
	b.mu.Unlock()
	if !changed || !loaded {
		return nil
	}
	return b.refreshLessons(ctx)
}

// Open switches the column and always re-reads lessons, as a page load does.
func (b *Board) Open(ctx context.Context, weekday, shift int) error {
	if !constants.IsValidWeekday(weekday) || !constants.IsValidShift(shift) {
		return ErrBadView
	}
	b.mu.Lock()
	b.weekday, b.shift = weekday, shift
	b.mu.Unlock()
	return b.Refresh(ctx)
}

func (b *Board) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stateLocked()
}

func (b *Board) stateLocked() State {
	if b.selected != nil {
		return Selecting
	}
	return Idle
}

// Select holds a template. While another selection is held, any select goes back to Idle.
func (b *Board) Select(templateID string) (State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.selected != nil {
		b.selected = nil
		return Idle, nil
	}
	t, ok := b.pool.Template(templateID)
	if !ok {
		return Idle, ErrUnknownLesson
	}
	b.selected = &t
	return Selecting, nil
}

func (b *Board) Cancel() {
	b.mu.Lock()
	b.selected = nil
	b.mu.Unlock()
}

/* =========================================================
   Assign / unassign
   ========================================================= */

// Assign copies the selected template into slotID on the current weekday and shift.
// The board is back in Idle whatever the outcome.
func (b *Board) Assign(ctx context.Context, slotID string) error {
	b.mu.Lock()
	if b.selected == nil {
		b.mu.Unlock()
		return ErrNoSelection
	}
	tpl := *b.selected
	b.selected = nil

	slot, ok := b.slots.Find(b.shift, slotID)
	if !ok {
		b.mu.Unlock()
		b.notify.Notify(ctx, flash.LevelError, Describe(ErrSlotNotInShift))
		return ErrSlotNotInShift
	}
	weekday, shift := b.weekday, b.shift
	dup := IsDuplicate(b.pool.ListInstancesFor(weekday, shift), slot, tpl)
	b.mu.Unlock()

	if dup {
		b.notify.Notify(ctx, flash.LevelWarning, constants.MsgDuplicateInSlot)
		return ErrDuplicate
	}

	in := model.InstanceFrom(tpl, ComputeTargetDate(weekday, b.now()), slot, shift)
	if _, err := b.backend.CreateLesson(ctx, in); err != nil {
		log.Printf("[WARN] board assign %s -> %s: %v", tpl.ID, slot.ID, err)
		b.notify.Notify(ctx, flash.LevelError, "Failed to add lesson: "+Describe(err))
		return err
	}
	_ = b.refreshLessons(ctx)
	b.notify.Notify(ctx, flash.LevelSuccess, constants.MsgLessonAssigned)
	return nil
}

// Unassign deletes an instance. Concurrent calls for one id share a single delete.
// Templates and ids the board does not hold are refused without a backend call.
func (b *Board) Unassign(ctx context.Context, instanceID string) error {
	b.mu.Lock()
	_, ok := b.pool.Instance(instanceID)
	b.mu.Unlock()
	if !ok {
		b.notify.Notify(ctx, flash.LevelError, "Failed to remove lesson: "+Describe(ErrUnknownLesson))
		return ErrUnknownLesson
	}

	_, err, _ := b.inflight.Do(instanceID, func() (any, error) {
		if err := b.backend.DeleteLesson(ctx, instanceID); err != nil {
			log.Printf("[WARN] board unassign %s: %v", instanceID, err)
			b.notify.Notify(ctx, flash.LevelError, "Failed to remove lesson: "+Describe(err))
			return nil, err
		}
		_ = b.refreshLessons(ctx)
		b.notify.Notify(ctx, flash.LevelSuccess, constants.MsgLessonUnassigned)
		return nil, nil
	})
	return err
}

// CreateTemplate stores a new date-less lesson.
func (b *Board) CreateTemplate(ctx context.Context, in model.LessonInput) error {
	if in.Date != nil || in.StartTime != nil || in.EndTime != nil || in.Shift != nil {
		return ErrNotTemplate
	}
	if _, err := b.backend.CreateLesson(ctx, in); err != nil {
		b.notify.Notify(ctx, flash.LevelError, "Failed to create lesson: "+Describe(err))
		return err
	}
	_ = b.refreshLessons(ctx)
	b.notify.Notify(ctx, flash.LevelSuccess, constants.MsgTemplateCreated)
	return nil
}

// EditLesson patches a template or instance the board currently holds.
func (b *Board) EditLesson(ctx context.Context, id string, p model.LessonPatch) error {
	b.mu.Lock()
	_, isTpl := b.pool.Template(id)
	_, isInst := b.pool.Instance(id)
	b.mu.Unlock()
	if !isTpl && !isInst {
		return ErrUnknownLesson
	}
	if p.IsEmpty() {
		return ErrEmptyEdit
	}
	if _, err := b.backend.UpdateLesson(ctx, id, p); err != nil {
		log.Printf("[WARN] board edit %s: %v", id, err)
		b.notify.Notify(ctx, flash.LevelError, "Failed to update lesson: "+Describe(err))
		return err
	}
	_ = b.refreshLessons(ctx)
	b.notify.Notify(ctx, flash.LevelSuccess, constants.MsgLessonUpdated)
	return nil
}

// DeleteTemplate removes a date-less lesson. Instances go through Unassign.
func (b *Board) DeleteTemplate(ctx context.Context, id string) error {
	b.mu.Lock()
	_, isTpl := b.pool.Template(id)
	_, isInst := b.pool.Instance(id)
	b.mu.Unlock()
	switch {
	case isInst:
		return ErrNotTemplate
	case !isTpl:
		return ErrUnknownLesson
	}

	_, err, _ := b.inflight.Do(id, func() (any, error) {
		if err := b.backend.DeleteLesson(ctx, id); err != nil {
			log.Printf("[WARN] board delete template %s: %v", id, err)
			b.notify.Notify(ctx, flash.LevelError, "Failed to delete lesson: "+Describe(err))
			return nil, err
		}
		_ = b.refreshLessons(ctx)
		b.notify.Notify(ctx, flash.LevelSuccess, constants.MsgTemplateDeleted)
		return nil, nil
	})
	return err
}
