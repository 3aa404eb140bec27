package pool

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collegeschedule_backend/internals/features/board/model"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func instance(id, date, start, end string, shift *int) model.LessonRecord {
	return model.LessonRecord{
		ID: id, GroupID: "G1", TeacherID: "T1", SubjectID: "S1", Room: "101",
		Date: strp(date), StartTime: strp(start), EndTime: strp(end), Shift: shift,
	}
}

func TestReplaceSplitsByVariant(t *testing.T) {
	p := New()
	tpl := model.LessonRecord{ID: "tpl", GroupID: "G1", TeacherID: "T1", SubjectID: "S1"}
	dated := instance("i1", "2024-06-12", "09:00", "09:45", intp(1))
	bad := instance("i2", "12/06/2024", "09:00", "09:45", nil)

	p.Replace([]model.LessonRecord{tpl, dated}, []model.LessonRecord{tpl, dated, bad})

	require.Len(t, p.ListTemplates(), 1)
	assert.Equal(t, "tpl", p.ListTemplates()[0].ID)
	_, ok := p.Instance("i1")
	assert.True(t, ok)
	_, ok = p.Instance("i2")
	assert.False(t, ok)
}

func TestListInstancesForWeekdayAndShift(t *testing.T) {
	p := New()
	p.Replace(nil, []model.LessonRecord{
		instance("wed-1", "2024-06-12", "09:00", "09:45", intp(1)),
		instance("wed-any", "2024-06-12T00:00:00Z", "13:00", "13:45", nil),
		instance("sun", "2024-06-16", "09:00", "09:45", intp(1)),
	})

	ids := func(v View) []string {
		var out []string
		for _, i := range v {
			out = append(out, i.ID)
		}
		return out
	}
	assert.ElementsMatch(t, []string{"wed-1", "wed-any"}, ids(p.ListInstancesFor(3, 1)))
	assert.ElementsMatch(t, []string{"wed-any"}, ids(p.ListInstancesFor(3, 2)))
	assert.ElementsMatch(t, []string{"sun"}, ids(p.ListInstancesFor(7, 1)))
}

func TestInSlotTrimsTimes(t *testing.T) {
	p := New()
	p.Replace(nil, []model.LessonRecord{
		instance("a", "2024-06-12", " 09:00", "09:45 ", intp(1)),
		instance("b", "2024-06-12", "09:00", "10:00", intp(1)),
	})
	got := p.ListInstancesFor(3, 1).InSlot(model.TimeSlot{StartTime: "09:00", EndTime: "09:45"})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestReplaceLogsUnreadableTemplate(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	p := New()
	p.Replace([]model.LessonRecord{instance("broken", "13.06.2024", "", "", nil)}, nil)

	assert.Empty(t, p.ListTemplates())
	assert.Contains(t, buf.String(), "[WARN] board: skip template broken:")
}
