package college

import (
	"errors"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	groupDTO "collegeschedule_backend/internals/features/college/groups/dto"
	groupModel "collegeschedule_backend/internals/features/college/groups/model"
	subjectDTO "collegeschedule_backend/internals/features/college/subjects/dto"
	subjectModel "collegeschedule_backend/internals/features/college/subjects/model"
	teacherDTO "collegeschedule_backend/internals/features/college/teachers/dto"
	teacherModel "collegeschedule_backend/internals/features/college/teachers/model"
	slotDTO "collegeschedule_backend/internals/features/college/time_slots/dto"
	slotModel "collegeschedule_backend/internals/features/college/time_slots/model"
	helper "collegeschedule_backend/internals/helpers"
)

func readJSON[T any](path string) ([]T, bool) {
	log.Println("[INFO] Reading seed file:", path)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("[WARN] seed file %s not found, skipping", path)
		} else {
			log.Printf("[ERROR] read %s: %v", path, err)
		}
		return nil, false
	}
	var data []T
	if err := sonic.Unmarshal(content, &data); err != nil {
		log.Printf("[ERROR] decode %s: %v", path, err)
		return nil, false
	}
	return data, true
}

// exists reports whether a row matches where; lookup errors count as "exists" so nothing is duplicated.
func exists(db *gorm.DB, m any, where string, args ...any) bool {
	var n int64
	if err := db.Model(m).Where(where, args...).Count(&n).Error; err != nil {
		log.Printf("[ERROR] seed lookup: %v", err)
		return true
	}
	return n > 0
}

func SeedGroupsFromJSON(db *gorm.DB, path string) {
	items, ok := readJSON[groupDTO.CreateGroupRequest](path)
	if !ok {
		return
	}
	v := helper.Validator()
	for _, item := range items {
		if err := v.Struct(&item); err != nil {
			log.Printf("[WARN] skip group %q: %v", item.Name, err)
			continue
		}
		m := item.ToModel()
		if exists(db, &groupModel.GroupModel{}, "group_name = ?", m.GroupName) {
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("[ERROR] insert group %q: %v", m.GroupName, err)
		}
	}
}

func SeedSubjectsFromJSON(db *gorm.DB, path string) {
	items, ok := readJSON[subjectDTO.CreateSubjectRequest](path)
	if !ok {
		return
	}
	v := helper.Validator()
	for _, item := range items {
		if err := v.Struct(&item); err != nil {
			log.Printf("[WARN] skip subject %q: %v", item.Name, err)
			continue
		}
		m := item.ToModel()
		if exists(db, &subjectModel.SubjectModel{}, "subject_code = ?", m.SubjectCode) {
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("[ERROR] insert subject %q: %v", m.SubjectCode, err)
		}
	}
}

func SeedTeachersFromJSON(db *gorm.DB, path string) {
	items, ok := readJSON[teacherDTO.CreateTeacherRequest](path)
	if !ok {
		return
	}
	v := helper.Validator()
	for _, item := range items {
		if err := v.Struct(&item); err != nil {
			log.Printf("[WARN] skip teacher %q: %v", item.IIN, err)
			continue
		}
		m := item.ToModel()
		if exists(db, &teacherModel.TeacherModel{}, "teacher_iin = ?", m.TeacherIIN) {
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("[ERROR] insert teacher %q: %v", m.TeacherIIN, err)
		}
	}
}

func SeedTimeSlotsFromJSON(db *gorm.DB, path string) {
	items, ok := readJSON[slotDTO.CreateTimeSlotRequest](path)
	if !ok {
		return
	}
	v := helper.Validator()
	for _, item := range items {
		if err := v.Struct(&item); err != nil {
			log.Printf("[WARN] skip time slot %s-%s: %v", item.StartTime, item.EndTime, err)
			continue
		}
		m, err := item.ToModel()
		if err != nil {
			log.Printf("[WARN] skip time slot %s-%s: %v", item.StartTime, item.EndTime, err)
			continue
		}
		if exists(db, &slotModel.TimeSlotModel{},
			"time_slot_start_time = ? AND time_slot_end_time = ? AND time_slot_shift = ?",
			m.TimeSlotStartTime, m.TimeSlotEndTime, m.TimeSlotShift) {
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("[ERROR] insert time slot %s: %v", m.TimeSlotLabel, err)
		}
	}
}
