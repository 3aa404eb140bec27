package engine

import (
	"collegeschedule_backend/internals/constants"
	"collegeschedule_backend/internals/features/board/catalog"
	"collegeschedule_backend/internals/features/board/model"
)

// Card is a lesson with names resolved for display.
type Card struct {
	ID          string `json:"id"`
	GroupName   string `json:"group_name"`
	TeacherName string `json:"teacher_name"`
	SubjectName string `json:"subject_name"`
	SubjectCode string `json:"subject_code"`
	Room        string `json:"room"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
}

type SlotView struct {
	Slot    model.TimeSlot `json:"slot"`
	Lessons []Card         `json:"lessons"`
}

type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Snapshot struct {
	Weekday     int        `json:"weekday"`
	WeekdayName string     `json:"weekday_name"`
	Shift       int        `json:"shift"`
	ShiftName   string     `json:"shift_name"`
	TargetDate  string     `json:"target_date"`
	State       State      `json:"state"`
	Selected    *Card      `json:"selected,omitempty"`
	Templates   []Card     `json:"templates"`
	Slots       []SlotView `json:"slots"`
	Banner      string     `json:"banner,omitempty"`

	Groups   []Option `json:"groups"`
	Teachers []Option `json:"teachers"`
	Subjects []Option `json:"subjects"`
}

func card(c *catalog.Catalog, b model.LessonBase) Card {
	out := Card{
		ID:          b.ID,
		GroupName:   c.GroupName(b.GroupID),
		TeacherName: c.TeacherName(b.TeacherID),
		SubjectName: c.SubjectName(b.SubjectID),
		SubjectCode: c.SubjectCode(b.SubjectID),
		Room:        b.Room,
	}
	if b.Description != nil {
		out.Description = *b.Description
	}
	return out
}

func instanceCard(c *catalog.Catalog, i model.Instance) Card {
	out := card(c, i.LessonBase)
	out.Date = i.DateString()
	out.StartTime = i.StartTime
	out.EndTime = i.EndTime
	return out
}

// Snapshot is a consistent copy of the board for rendering.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := Snapshot{
		Weekday:     b.weekday,
		WeekdayName: constants.WeekdayName(b.weekday),
		Shift:       b.shift,
		ShiftName:   constants.ShiftName(b.shift),
		TargetDate:  ComputeTargetDate(b.weekday, b.now()),
		State:       b.stateLocked(),
		Banner:      b.banner,
		Templates:   []Card{},
		Slots:       []SlotView{},
	}
	if b.selected != nil {
		c := card(b.catalog, b.selected.LessonBase)
		s.Selected = &c
	}
	for _, t := range b.pool.ListTemplates() {
		s.Templates = append(s.Templates, card(b.catalog, t.LessonBase))
	}
	view := b.pool.ListInstancesFor(b.weekday, b.shift)
	for _, slot := range b.slots.ByShift(b.shift) {
		sv := SlotView{Slot: slot, Lessons: []Card{}}
		for _, inst := range view.InSlot(slot) {
			sv.Lessons = append(sv.Lessons, instanceCard(b.catalog, inst))
		}
		s.Slots = append(s.Slots, sv)
	}
	for _, g := range b.catalog.Groups() {
		s.Groups = append(s.Groups, Option{ID: g.ID, Name: g.Name})
	}
	for _, t := range b.catalog.Teachers() {
		s.Teachers = append(s.Teachers, Option{ID: t.ID, Name: t.FullName()})
	}
	for _, sub := range b.catalog.Subjects() {
		s.Subjects = append(s.Subjects, Option{ID: sub.ID, Name: sub.Name})
	}
	return s
}

// Cards resolves names for arbitrary lesson records with the current catalog.
func (b *Board) Cards(records []model.LessonRecord) []Card {
	b.mu.Lock()
	cat := b.catalog
	b.mu.Unlock()

	out := make([]Card, 0, len(records))
	for _, r := range records {
		l, err := model.Classify(r)
		if err != nil {
			continue
		}
		switch v := l.(type) {
		case model.Instance:
			out = append(out, instanceCard(cat, v))
		case model.Template:
			out = append(out, card(cat, v.LessonBase))
		}
	}
	return out
}
