package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"collegeschedule_backend/internals/constants"
	"collegeschedule_backend/internals/features/board/model"
)

func TestLookupsFallBackToPlaceholders(t *testing.T) {
	c := New(
		[]model.Group{{ID: "g", Name: "CS-21"}},
		[]model.Teacher{{ID: "t", FirstName: "Dana", LastName: "Omarova"}},
		[]model.Subject{{ID: "s", Name: "Networks", Code: "NET"}, {ID: "s2", Name: "Ethics"}},
	)
	assert.Equal(t, "CS-21", c.GroupName("g"))
	assert.Equal(t, "Dana Omarova", c.TeacherName("t"))
	assert.Equal(t, "Networks", c.SubjectName("s"))
	assert.Equal(t, "NET", c.SubjectCode("s"))
	assert.Equal(t, constants.UnknownCode, c.SubjectCode("s2"))

	assert.Equal(t, constants.UnknownGroup, c.GroupName("x"))
	assert.Equal(t, constants.UnknownTeacher, c.TeacherName("x"))
	assert.Equal(t, constants.UnknownSubject, c.SubjectName("x"))
	assert.Equal(t, constants.UnknownCode, Empty().SubjectCode("x"))
}
