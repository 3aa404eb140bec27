// Package catalog resolves ids to display strings from the last-fetched reference data.
package catalog

import (
	"collegeschedule_backend/internals/constants"
	"collegeschedule_backend/internals/features/board/model"
)

type Catalog struct {
	groups   map[string]model.Group
	teachers map[string]model.Teacher
	subjects map[string]model.Subject

	groupList   []model.Group
	teacherList []model.Teacher
	subjectList []model.Subject
}

func New(groups []model.Group, teachers []model.Teacher, subjects []model.Subject) *Catalog {
	c := &Catalog{
		groups:      make(map[string]model.Group, len(groups)),
		teachers:    make(map[string]model.Teacher, len(teachers)),
		subjects:    make(map[string]model.Subject, len(subjects)),
		groupList:   groups,
		teacherList: teachers,
		subjectList: subjects,
	}
	for _, g := range groups {
		c.groups[g.ID] = g
	}
	for _, t := range teachers {
		c.teachers[t.ID] = t
	}
	for _, s := range subjects {
		c.subjects[s.ID] = s
	}
	return c
}

// Empty is a catalog where every lookup misses.
func Empty() *Catalog { return New(nil, nil, nil) }

func (c *Catalog) GroupName(id string) string {
	if g, ok := c.groups[id]; ok {
		return g.Name
	}
	return constants.UnknownGroup
}

func (c *Catalog) TeacherName(id string) string {
	if t, ok := c.teachers[id]; ok {
		return t.FullName()
	}
	return constants.UnknownTeacher
}

func (c *Catalog) SubjectName(id string) string {
	if s, ok := c.subjects[id]; ok {
		return s.Name
	}
	return constants.UnknownSubject
}

func (c *Catalog) SubjectCode(id string) string {
	if s, ok := c.subjects[id]; ok && s.Code != "" {
		return s.Code
	}
	return constants.UnknownCode
}

// Groups, Teachers and Subjects feed the create-template form.
func (c *Catalog) Groups() []model.Group     { return c.groupList }
func (c *Catalog) Teachers() []model.Teacher { return c.teacherList }
func (c *Catalog) Subjects() []model.Subject { return c.subjectList }
