package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func ptr[T any](v T) *T { return &v }

func TestPhaseDraft_Validate(t *testing.T) {
	cases := []struct {
		name  string
		draft PhaseDraft
		field string
	}{
		{"missing title", PhaseDraft{Duration: 4}, "title"},
		{"blank title", PhaseDraft{Title: "   ", Duration: 4}, "title"},
		{"zero duration", PhaseDraft{Title: "Beta"}, "duration"},
		{"negative duration", PhaseDraft{Title: "Beta", Duration: -2}, "duration"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draft.Validate()
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	assert.NoError(t, PhaseDraft{Title: "Beta", Duration: 6}.Validate())
}

func TestPhaseDraft_BuildTrimsAndStartsEmpty(t *testing.T) {
	p := PhaseDraft{Title: "  Beta ", Duration: 6, DueDate: date(t, "2025-03-01")}.Build("2")
	assert.Equal(t, "2", p.ID)
	assert.Equal(t, "Beta", p.Title)
	assert.Equal(t, 6, p.Duration)
	assert.Equal(t, "2025-03-01", FormatDate(p.DueDate))
	assert.NotNil(t, p.Tasks)
	assert.Empty(t, p.Tasks)
}

func TestPhasePatch_ApplyLeavesTasks(t *testing.T) {
	orig := Phase{ID: "1", Title: "Foundation", Duration: 4, Tasks: []Task{{ID: "1", Text: "Setup"}}}
	out := PhasePatch{Title: ptr("Groundwork")}.Apply(orig)

	assert.Equal(t, "Groundwork", out.Title)
	assert.Equal(t, 4, out.Duration)
	assert.Equal(t, orig.Tasks, out.Tasks)
	assert.Equal(t, "Foundation", orig.Title)
}

func TestPhasePatch_Validate(t *testing.T) {
	assert.Error(t, PhasePatch{Title: ptr("")}.Validate())
	assert.Error(t, PhasePatch{Duration: ptr(0)}.Validate())
	assert.NoError(t, PhasePatch{}.Validate())
	assert.True(t, PhasePatch{}.IsEmpty())
	assert.False(t, PhasePatch{ClearDueDate: true}.IsEmpty())
	assert.Error(t, PhasePatch{DueDate: date(t, "2025-01-01"), ClearDueDate: true}.Validate())
}

func TestPhasePatch_DueDate(t *testing.T) {
	orig := Phase{ID: "1", Title: "Foundation", Duration: 4, DueDate: date(t, "2024-12-31")}

	moved := PhasePatch{DueDate: date(t, "2025-02-01")}.Apply(orig)
	assert.Equal(t, "2025-02-01", FormatDate(moved.DueDate))

	cleared := PhasePatch{ClearDueDate: true}.Apply(orig)
	assert.Nil(t, cleared.DueDate)
	assert.Equal(t, "2024-12-31", FormatDate(orig.DueDate))
}

func TestTaskDraft_BuildDefaults(t *testing.T) {
	task := TaskDraft{}.Build("7")
	assert.Equal(t, "7", task.ID)
	assert.Equal(t, DefaultTaskText, task.Text)
	assert.Equal(t, StatusPending, task.Status)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, AssigneeNone, task.Assignee)
	assert.Nil(t, task.DueDate)
}

func TestTaskDraft_BuildOverrides(t *testing.T) {
	task := TaskDraft{
		Text:     "Draft requirements",
		Status:   StatusInProgress,
		Priority: PriorityHigh,
		Assignee: AssigneeSalim,
	}.Build("2")
	assert.Equal(t, "Draft requirements", task.Text)
	assert.Equal(t, StatusInProgress, task.Status)
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.Equal(t, AssigneeSalim, task.Assignee)
}

func TestTaskDraft_ValidateRejectsOutOfSetValues(t *testing.T) {
	assert.Error(t, TaskDraft{Status: "done"}.Validate())
	assert.Error(t, TaskDraft{Priority: "urgent"}.Validate())
	assert.Error(t, TaskDraft{Assignee: "Bob"}.Validate())
	assert.NoError(t, TaskDraft{}.Validate())
}

func TestTaskPatch_ApplyChangesOnlyNamedFields(t *testing.T) {
	orig := Task{
		ID:       "1",
		Text:     "Project setup",
		Status:   StatusCompleted,
		DueDate:  date(t, "2024-12-15"),
		Assignee: AssigneeAmin,
		Priority: PriorityHigh,
	}

	out := TaskPatch{Priority: ptr(PriorityLow)}.Apply(orig)

	want := orig.Clone()
	want.Priority = PriorityLow
	assert.Equal(t, want, out)
	assert.Equal(t, PriorityHigh, orig.Priority, "original must not change")
}

func TestTaskPatch_UnassignAndClearDueDate(t *testing.T) {
	orig := Task{ID: "1", Text: "x", Status: StatusPending, Priority: PriorityMedium,
		Assignee: AssigneeVinc, DueDate: date(t, "2025-01-01")}

	out := TaskPatch{Assignee: ptr(AssigneeNone), ClearDueDate: true}.Apply(orig)

	assert.Equal(t, AssigneeNone, out.Assignee)
	assert.Nil(t, out.DueDate)
	assert.NotNil(t, orig.DueDate)
}

func TestTaskPatch_Validate(t *testing.T) {
	assert.Error(t, TaskPatch{Text: ptr(" ")}.Validate())
	assert.Error(t, TaskPatch{Status: ptr(Status("done"))}.Validate())
	assert.Error(t, TaskPatch{DueDate: date(t, "2025-01-01"), ClearDueDate: true}.Validate())
	assert.NoError(t, TaskPatch{Status: ptr(StatusCompleted)}.Validate())
	assert.True(t, TaskPatch{}.IsEmpty())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = ParseDate("12/31/2024")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	assert.Equal(t, "2024-12-31", FormatDate(date(t, "2024-12-31")))
	assert.Equal(t, "", FormatDate(nil))
}

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	task := Task{Status: StatusPending, DueDate: date(t, "2025-06-14")}
	assert.True(t, task.IsOverdue(now))

	task.Status = StatusCompleted
	assert.False(t, task.IsOverdue(now))

	task = Task{Status: StatusPending, DueDate: date(t, "2025-06-15")}
	assert.False(t, task.IsOverdue(now), "due today is not overdue")
}
