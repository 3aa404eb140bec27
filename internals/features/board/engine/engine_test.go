package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collegeschedule_backend/internals/constants"
	"collegeschedule_backend/internals/features/board/model"
	"collegeschedule_backend/internals/helpers/flash"
)

/* =========================================================
   Fakes
   ========================================================= */

type fakeBackend struct {
	mu      sync.Mutex
	seq     int
	lessons []model.LessonRecord
	slots   []model.TimeSlot

	createErr   error
	creates     int32
	updates     int32
	deletes     int32
	deleteGate  chan struct{}
	deleteEnter chan struct{}
}

func (f *fakeBackend) Groups(context.Context) ([]model.Group, error) {
	return []model.Group{{ID: "G1", Name: "CS-21"}}, nil
}
func (f *fakeBackend) Teachers(context.Context) ([]model.Teacher, error) {
	return []model.Teacher{{ID: "T1", FirstName: "Aigerim", LastName: "Sadykova"}}, nil
}
func (f *fakeBackend) Subjects(context.Context) ([]model.Subject, error) {
	return []model.Subject{{ID: "S1", Name: "Databases", Code: "DB"}}, nil
}
func (f *fakeBackend) ActiveTimeSlots(context.Context) ([]model.TimeSlot, error) {
	return f.slots, nil
}

func (f *fakeBackend) Lessons(context.Context, model.LessonQuery) ([]model.LessonRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.LessonRecord(nil), f.lessons...), nil
}

func (f *fakeBackend) AvailableLessons(context.Context) ([]model.LessonRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.LessonRecord
	for _, l := range f.lessons {
		if l.Date == nil {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeBackend) CreateLesson(_ context.Context, in model.LessonInput) (model.LessonRecord, error) {
	atomic.AddInt32(&f.creates, 1)
	if f.createErr != nil {
		return model.LessonRecord{}, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	r := model.LessonRecord{
		ID:          fmt.Sprintf("L%d", f.seq),
		GroupID:     in.GroupID,
		TeacherID:   in.TeacherID,
		SubjectID:   in.SubjectID,
		Room:        in.Room,
		Description: in.Description,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Shift:       in.Shift,
	}
	f.lessons = append(f.lessons, r)
	return r, nil
}

func (f *fakeBackend) UpdateLesson(_ context.Context, id string, p model.LessonPatch) (model.LessonRecord, error) {
	atomic.AddInt32(&f.updates, 1)
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.lessons {
		if f.lessons[i].ID != id {
			continue
		}
		r := &f.lessons[i]
		if p.GroupID != nil {
			r.GroupID = *p.GroupID
		}
		if p.TeacherID != nil {
			r.TeacherID = *p.TeacherID
		}
		if p.SubjectID != nil {
			r.SubjectID = *p.SubjectID
		}
		if p.Room != nil {
			r.Room = *p.Room
		}
		if p.Description != nil {
			r.Description = p.Description
		}
		return *r, nil
	}
	return model.LessonRecord{}, &model.APIError{Status: 404, Message: "lesson not found"}
}

// drop removes a record behind the board's back, as another admin would.
func (f *fakeBackend) drop(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, l := range f.lessons {
		if l.ID == id {
			f.lessons = append(f.lessons[:i], f.lessons[i+1:]...)
			return
		}
	}
}

func (f *fakeBackend) add(r model.LessonRecord) {
	f.mu.Lock()
	f.lessons = append(f.lessons, r)
	f.mu.Unlock()
}

func (f *fakeBackend) DeleteLesson(_ context.Context, id string) error {
	atomic.AddInt32(&f.deletes, 1)
	if f.deleteEnter != nil {
		f.deleteEnter <- struct{}{}
	}
	if f.deleteGate != nil {
		<-f.deleteGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, l := range f.lessons {
		if l.ID == id {
			f.lessons = append(f.lessons[:i], f.lessons[i+1:]...)
			return nil
		}
	}
	return &model.APIError{Status: 404, Message: "lesson not found"}
}

type note struct {
	level flash.Level
	msg   string
}

type fakeNotifier struct {
	mu    sync.Mutex
	notes []note
}

func (n *fakeNotifier) Notify(_ context.Context, level flash.Level, msg string) {
	n.mu.Lock()
	n.notes = append(n.notes, note{level, msg})
	n.mu.Unlock()
}

func (n *fakeNotifier) last() note {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notes) == 0 {
		return note{}
	}
	return n.notes[len(n.notes)-1]
}

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

// Thursday of the week starting Monday 2024-06-10.
var refNow = time.Date(2024, 6, 13, 15, 30, 0, 0, time.UTC)

func newTestBoard(t *testing.T) (*Board, *fakeBackend, *fakeNotifier) {
	t.Helper()
	be := &fakeBackend{
		seq: 100,
		slots: []model.TimeSlot{
			{ID: "slot-1", Shift: 1, StartTime: "09:00", EndTime: "09:45", Label: "09:00-09:45", IsActive: true},
			{ID: "slot-2", Shift: 1, StartTime: "10:00", EndTime: "10:45", Label: "10:00-10:45", IsActive: true},
			{ID: "slot-3", Shift: 2, StartTime: "13:00", EndTime: "13:45", Label: "13:00-13:45", IsActive: true},
		},
		lessons: []model.LessonRecord{
			{ID: "tpl-1", GroupID: "G1", TeacherID: "T1", SubjectID: "S1", Room: "101"},
		},
	}
	n := &fakeNotifier{}
	b := New(be, n).WithClock(func() time.Time { return refNow })
	require.NoError(t, b.SetView(context.Background(), constants.Wednesday, constants.FirstShift))
	require.NoError(t, b.Load(context.Background()))
	return b, be, n
}

/* =========================================================
   Tests
   ========================================================= */

func TestComputeTargetDate(t *testing.T) {
	for _, ref := range []time.Time{
		time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 12, 23, 59, 0, 0, time.UTC),
		time.Date(2024, 6, 16, 12, 0, 0, 0, time.UTC), // Sunday belongs to the same week
	} {
		assert.Equal(t, "2024-06-10", ComputeTargetDate(1, ref), ref)
		assert.Equal(t, "2024-06-12", ComputeTargetDate(3, ref), ref)
		assert.Equal(t, "2024-06-14", ComputeTargetDate(5, ref), ref)
	}
}

func TestAssignCreatesInstanceAndKeepsTemplate(t *testing.T) {
	b, be, n := newTestBoard(t)
	ctx := context.Background()

	st, err := b.Select("tpl-1")
	require.NoError(t, err)
	assert.Equal(t, Selecting, st)

	require.NoError(t, b.Assign(ctx, "slot-1"))
	assert.Equal(t, Idle, b.State())
	assert.Equal(t, note{flash.LevelSuccess, constants.MsgLessonAssigned}, n.last())

	be.mu.Lock()
	created := be.lessons[len(be.lessons)-1]
	be.mu.Unlock()
	assert.Equal(t, "2024-06-12", *created.Date)
	assert.Equal(t, "09:00", *created.StartTime)
	assert.Equal(t, "09:45", *created.EndTime)
	assert.Equal(t, 1, *created.Shift)
	assert.Equal(t, "101", created.Room)

	snap := b.Snapshot()
	require.Len(t, snap.Templates, 1)
	assert.Equal(t, "tpl-1", snap.Templates[0].ID)
	require.Len(t, snap.Slots, 2)
	require.Len(t, snap.Slots[0].Lessons, 1)
	assert.Equal(t, created.ID, snap.Slots[0].Lessons[0].ID)
	assert.Equal(t, "Aigerim Sadykova", snap.Slots[0].Lessons[0].TeacherName)
	assert.Empty(t, snap.Slots[1].Lessons)
}

func TestAssignRejectsDuplicateWithoutNetworkCall(t *testing.T) {
	b, be, n := newTestBoard(t)
	ctx := context.Background()

	_, _ = b.Select("tpl-1")
	require.NoError(t, b.Assign(ctx, "slot-1"))

	_, _ = b.Select("tpl-1")
	err := b.Assign(ctx, "slot-1")
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, Idle, b.State())
	assert.Equal(t, int32(1), atomic.LoadInt32(&be.creates))
	assert.Equal(t, note{flash.LevelWarning, constants.MsgDuplicateInSlot}, n.last())

	// a different slot is fine
	_, _ = b.Select("tpl-1")
	require.NoError(t, b.Assign(ctx, "slot-2"))
	assert.Equal(t, int32(2), atomic.LoadInt32(&be.creates))
}

func TestAssignBackendFailureLeavesPoolUntouched(t *testing.T) {
	b, be, n := newTestBoard(t)
	be.createErr = &model.APIError{Status: 400, Message: "room is required"}

	_, _ = b.Select("tpl-1")
	err := b.Assign(context.Background(), "slot-1")
	require.Error(t, err)
	assert.Equal(t, Idle, b.State())
	assert.Equal(t, flash.LevelError, n.last().level)
	assert.Contains(t, n.last().msg, "room is required")

	snap := b.Snapshot()
	assert.Len(t, snap.Templates, 1)
	assert.Empty(t, snap.Slots[0].Lessons)
}

func TestAssignRejectsSlotOutsideShift(t *testing.T) {
	b, be, _ := newTestBoard(t)
	_, _ = b.Select("tpl-1")
	assert.ErrorIs(t, b.Assign(context.Background(), "slot-3"), ErrSlotNotInShift)
	assert.Equal(t, int32(0), atomic.LoadInt32(&be.creates))
	assert.ErrorIs(t, b.Assign(context.Background(), "slot-1"), ErrNoSelection)
}

func TestSelectionStateMachine(t *testing.T) {
	b, _, _ := newTestBoard(t)

	_, err := b.Select("missing")
	assert.ErrorIs(t, err, ErrUnknownLesson)
	assert.Equal(t, Idle, b.State())

	st, _ := b.Select("tpl-1")
	assert.Equal(t, Selecting, st)
	st, _ = b.Select("tpl-1")
	assert.Equal(t, Idle, st)

	_, _ = b.Select("tpl-1")
	b.Cancel()
	assert.Equal(t, Idle, b.State())
}

func TestConcurrentUnassignDeletesOnce(t *testing.T) {
	b, be, _ := newTestBoard(t)
	ctx := context.Background()
	_, _ = b.Select("tpl-1")
	require.NoError(t, b.Assign(ctx, "slot-1"))
	id := b.Snapshot().Slots[0].Lessons[0].ID

	be.deleteGate = make(chan struct{})
	be.deleteEnter = make(chan struct{}, 8)

	var wg sync.WaitGroup
	errs := make([]error, 5)
	wg.Add(1)
	go func() { defer wg.Done(); errs[0] = b.Unassign(ctx, id) }()
	<-be.deleteEnter // first delete is in flight

	for i := 1; i < len(errs); i++ {
		wg.Add(1)
		go func(i int) { defer wg.Done(); errs[i] = b.Unassign(ctx, id) }(i)
	}
	require.Never(t, func() bool { return len(be.deleteEnter) > 0 }, 100*time.Millisecond, 5*time.Millisecond,
		"a second delete started while the first was in flight")
	close(be.deleteGate)
	wg.Wait()

	assert.NoError(t, errs[0])
	for _, err := range errs[1:] {
		// callers that arrive after the flight lands find the instance gone
		if err != nil {
			assert.ErrorIs(t, err, ErrUnknownLesson)
		}
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&be.deletes))
	assert.Empty(t, b.Snapshot().Slots[0].Lessons)
}

func TestUnassignSurfacesNotFound(t *testing.T) {
	b, be, n := newTestBoard(t)
	ctx := context.Background()
	_, _ = b.Select("tpl-1")
	require.NoError(t, b.Assign(ctx, "slot-1"))
	id := b.Snapshot().Slots[0].Lessons[0].ID
	be.drop(id)

	err := b.Unassign(ctx, id)
	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, note{flash.LevelError, "Failed to remove lesson: resource not found"}, n.last())
}

func TestUnassignRefusesTemplatesAndUnknownIDs(t *testing.T) {
	b, be, n := newTestBoard(t)
	ctx := context.Background()

	assert.ErrorIs(t, b.Unassign(ctx, "tpl-1"), ErrUnknownLesson)
	assert.ErrorIs(t, b.Unassign(ctx, "nope"), ErrUnknownLesson)
	assert.Equal(t, int32(0), atomic.LoadInt32(&be.deletes))
	assert.Equal(t, flash.LevelError, n.last().level)

	snap := b.Snapshot()
	require.Len(t, snap.Templates, 1)
	assert.Equal(t, "tpl-1", snap.Templates[0].ID)
}

func TestViewChangeRereadsLessons(t *testing.T) {
	b, be, _ := newTestBoard(t)
	ctx := context.Background()

	require.NoError(t, b.SetView(ctx, constants.Monday, constants.FirstShift))
	// another admin places the same lesson on Wednesday 09:00
	be.add(model.LessonRecord{
		ID: "other-1", GroupID: "G1", TeacherID: "T1", SubjectID: "S1", Room: "101",
		Date: strp("2024-06-12"), StartTime: strp("09:00"), EndTime: strp("09:45"), Shift: intp(1),
	})
	require.NoError(t, b.SetView(ctx, constants.Wednesday, constants.FirstShift))

	_, err := b.Select("tpl-1")
	require.NoError(t, err)
	assert.ErrorIs(t, b.Assign(ctx, "slot-1"), ErrDuplicate)
	assert.Equal(t, int32(0), atomic.LoadInt32(&be.creates))
}

func TestOpenRereadsLessonsOnSameView(t *testing.T) {
	b, be, _ := newTestBoard(t)
	be.add(model.LessonRecord{
		ID: "other-2", GroupID: "G1", TeacherID: "T1", SubjectID: "S1", Room: "101",
		Date: strp("2024-06-12"), StartTime: strp("10:00"), EndTime: strp("10:45"), Shift: intp(1),
	})
	require.NoError(t, b.Open(context.Background(), constants.Wednesday, constants.FirstShift))

	snap := b.Snapshot()
	require.Len(t, snap.Slots, 2)
	require.Len(t, snap.Slots[1].Lessons, 1)
	assert.Equal(t, "other-2", snap.Slots[1].Lessons[0].ID)

	assert.ErrorIs(t, b.Open(context.Background(), 9, constants.FirstShift), ErrBadView)
}

func TestEditLessonPatchesTemplate(t *testing.T) {
	b, be, n := newTestBoard(t)
	ctx := context.Background()
	_, _ = b.Select("tpl-1")

	require.NoError(t, b.EditLesson(ctx, "tpl-1", model.LessonPatch{Room: strp("303")}))
	assert.Equal(t, note{flash.LevelSuccess, constants.MsgLessonUpdated}, n.last())
	assert.Equal(t, int32(1), atomic.LoadInt32(&be.updates))

	snap := b.Snapshot()
	require.Len(t, snap.Templates, 1)
	assert.Equal(t, "303", snap.Templates[0].Room)
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "303", snap.Selected.Room)

	assert.ErrorIs(t, b.EditLesson(ctx, "nope", model.LessonPatch{Room: strp("1")}), ErrUnknownLesson)
	assert.ErrorIs(t, b.EditLesson(ctx, "tpl-1", model.LessonPatch{}), ErrEmptyEdit)
	assert.Equal(t, int32(1), atomic.LoadInt32(&be.updates))
}

func TestEditLessonSurfacesBackendError(t *testing.T) {
	b, be, n := newTestBoard(t)
	be.drop("tpl-1")

	err := b.EditLesson(context.Background(), "tpl-1", model.LessonPatch{Room: strp("303")})
	require.Error(t, err)
	assert.Equal(t, note{flash.LevelError, "Failed to update lesson: resource not found"}, n.last())
}

func TestDeleteTemplateOnlyRemovesTemplates(t *testing.T) {
	b, be, n := newTestBoard(t)
	ctx := context.Background()
	_, _ = b.Select("tpl-1")
	require.NoError(t, b.Assign(ctx, "slot-1"))
	inst := b.Snapshot().Slots[0].Lessons[0].ID

	assert.ErrorIs(t, b.DeleteTemplate(ctx, inst), ErrNotTemplate)
	assert.ErrorIs(t, b.DeleteTemplate(ctx, "nope"), ErrUnknownLesson)
	assert.Equal(t, int32(0), atomic.LoadInt32(&be.deletes))

	_, _ = b.Select("tpl-1")
	require.NoError(t, b.DeleteTemplate(ctx, "tpl-1"))
	assert.Equal(t, note{flash.LevelSuccess, constants.MsgTemplateDeleted}, n.last())
	assert.Equal(t, int32(1), atomic.LoadInt32(&be.deletes))

	snap := b.Snapshot()
	assert.Empty(t, snap.Templates)
	assert.Nil(t, snap.Selected)
	assert.Equal(t, Idle, b.State())
	require.Len(t, snap.Slots[0].Lessons, 1)
}

func TestCreateTemplateRejectsDatedInput(t *testing.T) {
	b, be, _ := newTestBoard(t)
	err := b.CreateTemplate(context.Background(), model.LessonInput{GroupID: "G1", Date: strp("2024-06-12")})
	assert.ErrorIs(t, err, ErrNotTemplate)

	require.NoError(t, b.CreateTemplate(context.Background(), model.LessonInput{
		GroupID: "G1", TeacherID: "T1", SubjectID: "S1", Room: "202",
	}))
	assert.Equal(t, int32(1), atomic.LoadInt32(&be.creates))
	assert.Len(t, b.Snapshot().Templates, 2)
}

func TestLoadFailureSetsBanner(t *testing.T) {
	b := New(errBackend{&fakeBackend{}}, &fakeNotifier{})
	err := b.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to load data: backend unreachable", b.Snapshot().Banner)
}

func TestDescribe(t *testing.T) {
	cases := map[string]error{
		"request timed out":   fmt.Errorf("get: %w", model.ErrTimeout),
		"backend unreachable": model.ErrUnreachable,
		"resource not found":  &model.APIError{Status: 404, Message: "x"},
		"server error":        &model.APIError{Status: 502},
		"end_time bad":        &model.APIError{Status: 422, Message: "end_time bad"},
		"unexpected error":    errors.New("boom"),
	}
	for want, err := range cases {
		assert.Equal(t, want, Describe(err))
	}
}

type errBackend struct{ *fakeBackend }

func (errBackend) Groups(context.Context) ([]model.Group, error) {
	return nil, model.ErrUnreachable
}

func TestBoardsKeepsOneBoardPerOwner(t *testing.T) {
	built := 0
	r := NewBoards(func(string) *Board { built++; return New(&fakeBackend{}, &fakeNotifier{}) })
	a := r.Get("user")
	assert.Same(t, a, r.Get("user"))
	assert.NotSame(t, a, r.Get("other"))
	r.Drop("user")
	assert.NotSame(t, a, r.Get("user"))
	assert.Equal(t, 3, built)
}
