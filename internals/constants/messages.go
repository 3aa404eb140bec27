package constants

import "fmt"

// Placeholders shown when a catalog lookup misses.
const (
	UnknownGroup   = "Unknown group"
	UnknownTeacher = "Unknown teacher"
	UnknownSubject = "Unknown subject"
	UnknownCode    = "—"
)

const (
	MsgLessonAssigned   = "Lesson added to the schedule"
	MsgLessonUnassigned = "Lesson removed from the schedule"
	MsgTemplateCreated  = "Lesson created"
	MsgTemplateDeleted  = "Lesson deleted"
	MsgLessonUpdated    = "Lesson updated"
	MsgDuplicateInSlot  = "This lesson is already in the selected slot. A lesson cannot be assigned twice at the same time."
)

const errStillReferenced = "Cannot delete %s: it is still referenced by %s."

func StillReferenced(entity, by string) string {
	return fmt.Sprintf(errStillReferenced, entity, by)
}
