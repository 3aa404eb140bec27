// Package pool splits the lesson snapshot into templates and instances.
package pool

import (
	"log"
	"strings"

	"collegeschedule_backend/internals/features/board/model"
)

type Pool struct {
	templates []model.Template
	instances []model.Instance
}

func New() *Pool { return &Pool{} }

// Replace swaps the snapshot. Templates come from the first list and instances from
// the second; records of the other variant in either list are ignored.
func (p *Pool) Replace(templates, lessons []model.LessonRecord) {
	p.templates = p.templates[:0]
	p.instances = p.instances[:0]

	for _, r := range templates {
		l, err := model.Classify(r)
		if err != nil {
			log.Printf("[WARN] board: skip template %s: %v", r.ID, err)
			continue
		}
		if t, ok := l.(model.Template); ok {
			p.templates = append(p.templates, t)
		}
	}
	for _, r := range lessons {
		l, err := model.Classify(r)
		if err != nil {
			log.Printf("[WARN] board: skip lesson %s: %v", r.ID, err)
			continue
		}
		if i, ok := l.(model.Instance); ok {
			p.instances = append(p.instances, i)
		}
	}
}

func (p *Pool) ListTemplates() []model.Template {
	return append([]model.Template(nil), p.templates...)
}

func (p *Pool) Template(id string) (model.Template, bool) {
	for _, t := range p.templates {
		if t.ID == id {
			return t, true
		}
	}
	return model.Template{}, false
}

func (p *Pool) Instance(id string) (model.Instance, bool) {
	for _, i := range p.instances {
		if i.ID == id {
			return i, true
		}
	}
	return model.Instance{}, false
}

// View is the weekday/shift-filtered instance set.
type View []model.Instance

// ListInstancesFor keeps instances on the ISO weekday whose shift is unset or equal.
func (p *Pool) ListInstancesFor(weekday, shift int) View {
	out := View{}
	for _, i := range p.instances {
		if i.Weekday() != weekday {
			continue
		}
		if i.Shift != 0 && i.Shift != shift {
			continue
		}
		out = append(out, i)
	}
	return out
}

// InSlot matches trimmed start/end times exactly.
func (v View) InSlot(slot model.TimeSlot) []model.Instance {
	start, end := strings.TrimSpace(slot.StartTime), strings.TrimSpace(slot.EndTime)
	var out []model.Instance
	for _, i := range v {
		if strings.TrimSpace(i.StartTime) == start && strings.TrimSpace(i.EndTime) == end {
			out = append(out, i)
		}
	}
	return out
}
