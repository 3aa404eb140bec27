// file: internals/features/college/lessons/service/refs.go
package service

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupDTO "collegeschedule_backend/internals/features/college/groups/dto"
	groupModel "collegeschedule_backend/internals/features/college/groups/model"
	lessonDTO "collegeschedule_backend/internals/features/college/lessons/dto"
	subjectDTO "collegeschedule_backend/internals/features/college/subjects/dto"
	subjectModel "collegeschedule_backend/internals/features/college/subjects/model"
	teacherDTO "collegeschedule_backend/internals/features/college/teachers/dto"
	teacherModel "collegeschedule_backend/internals/features/college/teachers/model"
)

// RefIDs collects the ids a page of lessons/schedules points at.
type RefIDs struct {
	Groups   map[uuid.UUID]struct{}
	Teachers map[uuid.UUID]struct{}
	Subjects map[uuid.UUID]struct{}
}

func NewRefIDs() *RefIDs {
	return &RefIDs{
		Groups:   map[uuid.UUID]struct{}{},
		Teachers: map[uuid.UUID]struct{}{},
		Subjects: map[uuid.UUID]struct{}{},
	}
}

func (r *RefIDs) Add(groupID, teacherID, subjectID uuid.UUID) {
	r.Groups[groupID] = struct{}{}
	r.Teachers[teacherID] = struct{}{}
	r.Subjects[subjectID] = struct{}{}
}

func keys(m map[uuid.UUID]struct{}) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// LoadRefs fetches every referenced row in three IN queries.
func LoadRefs(ctx context.Context, db *gorm.DB, ids *RefIDs) (*lessonDTO.Refs, error) {
	refs := &lessonDTO.Refs{
		Groups:   map[uuid.UUID]groupDTO.GroupResponse{},
		Teachers: map[uuid.UUID]teacherDTO.TeacherResponse{},
		Subjects: map[uuid.UUID]subjectDTO.SubjectResponse{},
	}
	if len(ids.Groups) > 0 {
		var gs []groupModel.GroupModel
		if err := db.WithContext(ctx).Where("group_id IN ?", keys(ids.Groups)).Find(&gs).Error; err != nil {
			return nil, err
		}
		for i := range gs {
			refs.Groups[gs[i].GroupID] = groupDTO.NewGroupResponse(&gs[i])
		}
	}
	if len(ids.Teachers) > 0 {
		var ts []teacherModel.TeacherModel
		if err := db.WithContext(ctx).Where("teacher_id IN ?", keys(ids.Teachers)).Find(&ts).Error; err != nil {
			return nil, err
		}
		for i := range ts {
			refs.Teachers[ts[i].TeacherID] = teacherDTO.NewTeacherResponse(&ts[i])
		}
	}
	if len(ids.Subjects) > 0 {
		var ss []subjectModel.SubjectModel
		if err := db.WithContext(ctx).Where("subject_id IN ?", keys(ids.Subjects)).Find(&ss).Error; err != nil {
			return nil, err
		}
		for i := range ss {
			refs.Subjects[ss[i].SubjectID] = subjectDTO.NewSubjectResponse(&ss[i])
		}
	}
	return refs, nil
}

// EnsureRefsExist returns a 400 *fiber.Error naming the first missing reference.
func EnsureRefsExist(ctx context.Context, db *gorm.DB, groupID, teacherID, subjectID uuid.UUID) error {
	checks := []struct {
		name  string
		model any
		col   string
		id    uuid.UUID
	}{
		{"group", &groupModel.GroupModel{}, "group_id", groupID},
		{"teacher", &teacherModel.TeacherModel{}, "teacher_id", teacherID},
		{"subject", &subjectModel.SubjectModel{}, "subject_id", subjectID},
	}
	for _, ch := range checks {
		var n int64
		if err := db.WithContext(ctx).Model(ch.model).Where(ch.col+" = ?", ch.id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s %s not found", ch.name, ch.id))
		}
	}
	return nil
}
