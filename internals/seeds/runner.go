package seeds

import (
	"log"
	"path/filepath"

	"gorm.io/gorm"

	"collegeschedule_backend/internals/seeds/college"
)

// RunAllSeeds loads reference data from dir. Every seeder skips rows that already exist.
func RunAllSeeds(db *gorm.DB, dir string) {
	log.Println("[INFO] Running seeds from", dir)

	college.SeedGroupsFromJSON(db, filepath.Join(dir, "groups.json"))
	college.SeedSubjectsFromJSON(db, filepath.Join(dir, "subjects.json"))
	college.SeedTeachersFromJSON(db, filepath.Join(dir, "teachers.json"))
	college.SeedTimeSlotsFromJSON(db, filepath.Join(dir, "time_slots.json"))

	log.Println("[INFO] Seeds done")
}
