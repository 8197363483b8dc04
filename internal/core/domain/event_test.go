package domain_test

import (
	"strings"
	"testing"

	"eventboard-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	org = domain.UserRef{ID: "org1", Username: "org", Email: "org@example.com"}
	mem = domain.UserRef{ID: "mem1", Username: "mem", Email: "mem@example.com"}
	out = domain.UserRef{ID: "out1", Username: "out", Email: "out@example.com"}
)

func newEvent() *domain.Event {
	return &domain.Event{
		ID:        "ev1",
		Name:      "Sprint",
		Code:      "AB12CD",
		Organizer: org,
		Members:   []domain.UserRef{org, mem},
	}
}

func TestCanonicalCode(t *testing.T) {
	assert.Equal(t, "AB12CD", domain.CanonicalCode("  ab12cd "))
}

func TestAddMember_Idempotent(t *testing.T) {
	ev := newEvent()

	added, err := ev.AddMember(out)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = ev.AddMember(out)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Len(t, ev.Members, 3)
	assert.True(t, ev.HasMember(org.ID))
}

func TestAddMember_FinishedEvent(t *testing.T) {
	ev := newEvent()
	ev.IsFinished = true

	_, err := ev.AddMember(out)
	assert.ErrorIs(t, err, domain.ErrEventFinished)

	added, err := ev.AddMember(mem)
	require.NoError(t, err)
	assert.False(t, added)
}

func TestFinish(t *testing.T) {
	ev := newEvent()

	_, err := ev.Finish(mem.ID)
	assert.ErrorIs(t, err, domain.ErrFinishForbidden)

	changed, err := ev.Finish(org.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = ev.Finish(org.ID)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.True(t, ev.IsFinished)
}

func TestAddTask_MemberDefaultsToSelf(t *testing.T) {
	ev := newEvent()

	task, err := ev.AddTask(mem.ID, domain.CreateTaskInput{Title: "  Fix bug "})
	require.NoError(t, err)
	assert.Equal(t, "Fix bug", task.Title)
	assert.Equal(t, mem, task.AssignedTo)
	assert.Equal(t, mem, task.CreatedBy)
	assert.Equal(t, domain.TaskStatusTodo, task.Status)
}

func TestAddTask_MemberCannotAssignOthers(t *testing.T) {
	ev := newEvent()

	_, err := ev.AddTask(mem.ID, domain.CreateTaskInput{Title: "x", AssignedTo: org.ID})
	assert.ErrorIs(t, err, domain.ErrAssignSelfOnly)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	assert.Empty(t, ev.Tasks)
}

func TestAddTask_OrganizerAssignsMember(t *testing.T) {
	ev := newEvent()

	task, err := ev.AddTask(org.ID, domain.CreateTaskInput{Title: "x", AssignedTo: mem.ID})
	require.NoError(t, err)
	assert.Equal(t, mem.ID, task.AssignedTo.ID)
	assert.Equal(t, org.ID, task.CreatedBy.ID)

	_, err = ev.AddTask(org.ID, domain.CreateTaskInput{Title: "y", AssignedTo: out.ID})
	assert.ErrorIs(t, err, domain.ErrAssigneeNotMember)
}

func TestAddTask_Rejections(t *testing.T) {
	ev := newEvent()

	_, err := ev.AddTask(out.ID, domain.CreateTaskInput{Title: "x"})
	assert.ErrorIs(t, err, domain.ErrNotMember)

	_, err = ev.AddTask(mem.ID, domain.CreateTaskInput{Title: "   "})
	assert.ErrorIs(t, err, domain.ErrTaskTitleEmpty)
	assert.Equal(t, domain.KindInvalid, domain.KindOf(err))

	ev.IsFinished = true
	_, err = ev.AddTask(mem.ID, domain.CreateTaskInput{Title: "x"})
	assert.ErrorIs(t, err, domain.ErrEventFinished)
}

func TestAddTask_PermissionBeforeTitle(t *testing.T) {
	ev := newEvent()

	_, err := ev.AddTask(out.ID, domain.CreateTaskInput{Title: "  "})
	assert.ErrorIs(t, err, domain.ErrNotMember)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	_, err = ev.AddTask(mem.ID, domain.CreateTaskInput{Title: "", AssignedTo: org.ID})
	assert.ErrorIs(t, err, domain.ErrAssignSelfOnly)

	ev.IsFinished = true
	_, err = ev.AddTask(mem.ID, domain.CreateTaskInput{})
	assert.ErrorIs(t, err, domain.ErrEventFinished)
	assert.Empty(t, ev.Tasks)
}

func TestAddTask_NewestFirst(t *testing.T) {
	ev := newEvent()

	_, err := ev.AddTask(org.ID, domain.CreateTaskInput{Title: "A"})
	require.NoError(t, err)
	_, err = ev.AddTask(org.ID, domain.CreateTaskInput{Title: "B"})
	require.NoError(t, err)

	require.Len(t, ev.Tasks, 2)
	assert.Equal(t, "B", ev.Tasks[0].Title)
	assert.Equal(t, "A", ev.Tasks[1].Title)
}

func TestSetTaskStatus(t *testing.T) {
	ev := newEvent()
	ev.Tasks = []domain.Task{{ID: "t1", Title: "x", Status: domain.TaskStatusTodo, AssignedTo: mem, CreatedBy: mem}}

	_, err := ev.SetTaskStatus(org.ID, "t1", domain.TaskStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrNotAssignee)

	_, err = ev.SetTaskStatus(mem.ID, "nope", domain.TaskStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	for _, status := range []domain.TaskStatus{
		domain.TaskStatusCompleted,
		domain.TaskStatusTodo,
		domain.TaskStatusInProgress,
		domain.TaskStatusCompleted,
		domain.TaskStatusInProgress,
		domain.TaskStatusTodo,
	} {
		task, err := ev.SetTaskStatus(mem.ID, "t1", status)
		require.NoError(t, err)
		assert.Equal(t, status, task.Status)
	}

	ev.IsFinished = true
	_, err = ev.SetTaskStatus(mem.ID, "t1", domain.TaskStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrEventFinished)
}

func TestRemoveTask(t *testing.T) {
	ev := newEvent()
	ev.Tasks = []domain.Task{{ID: "t2"}, {ID: "t1"}}

	assert.ErrorIs(t, ev.RemoveTask(mem.ID, "t1"), domain.ErrTaskDeleteForbidden)
	assert.ErrorIs(t, ev.RemoveTask(org.ID, "missing"), domain.ErrTaskNotFound)

	require.NoError(t, ev.RemoveTask(org.ID, "t1"))
	require.Len(t, ev.Tasks, 1)
	assert.Equal(t, "t2", ev.Tasks[0].ID)
}

func TestParseTaskStatus(t *testing.T) {
	status, err := domain.ParseTaskStatus("in-progress")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusInProgress, status)

	_, err = domain.ParseTaskStatus("done")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestOrganizedBy(t *testing.T) {
	events := []domain.Event{
		{ID: "a", Organizer: org},
		{ID: "b", Organizer: mem},
	}

	organized, joined := domain.OrganizedBy(events, org.ID)
	require.Len(t, organized, 1)
	require.Len(t, joined, 1)
	assert.Equal(t, "a", organized[0].ID)
	assert.Equal(t, "b", joined[0].ID)
}

func TestNormalizeMessageText(t *testing.T) {
	text, err := domain.NormalizeMessageText("  hello ")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	_, err = domain.NormalizeMessageText(" \n\t ")
	assert.ErrorIs(t, err, domain.ErrMessageEmpty)

	_, err = domain.NormalizeMessageText(strings.Repeat("é", domain.MaxMessageLength))
	assert.NoError(t, err)

	_, err = domain.NormalizeMessageText(strings.Repeat("a", domain.MaxMessageLength+1))
	assert.ErrorIs(t, err, domain.ErrMessageTooLong)
}
