package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/importer"
	"github.com/alexanderramin/roadmap/internal/roadmap"
	"github.com/alexanderramin/roadmap/internal/service"
	"github.com/alexanderramin/roadmap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansi.ReplaceAllString(s, "") }

var fixedNow = time.Date(2024, 12, 10, 9, 0, 0, 0, time.UTC)

// testApp wires a full App around store for CLI integration tests.
func testApp(t *testing.T, store *roadmap.Store) *App {
	t.Helper()
	return &App{
		Phases:  service.NewPhaseService(store),
		Tasks:   service.NewTaskService(store),
		Roadmap: service.NewRoadmapService(store),
		Now:     func() time.Time { return fixedNow },
	}
}

// demoApp returns an App over the demo roadmap and its store.
func demoApp(t *testing.T) (*App, *roadmap.Store) {
	t.Helper()
	store := testutil.NewDemoStore(t)
	return testApp(t, store), store
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true
	err := root.Execute()
	return stripANSI(buf.String()), err
}

// --- root ---

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	app, _ := demoApp(t)

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "phase")
	assert.Contains(t, out, "task")
}

// --- phase ---

func TestPhaseAdd_AppendsWithNextID(t *testing.T) {
	app, store := demoApp(t)

	out, err := executeCmd(t, app, "phase", "add", "--title", "Beta", "--duration", "6", "--due", "2025-03-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Added phase #2 Beta")
	assert.Contains(t, out, "6 weeks")

	snap := store.Snapshot()
	assert.Equal(t, []string{"1", "2"}, snap.PhaseIDs())
	p, _ := snap.Phase("2")
	assert.Equal(t, "2025-03-01", domain.FormatDate(p.DueDate))
	assert.Empty(t, p.Tasks)
}

func TestPhaseAdd_Validation(t *testing.T) {
	app, store := demoApp(t)

	_, err := executeCmd(t, app, "phase", "add", "--duration", "3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = executeCmd(t, app, "phase", "add", "--title", "Gamma")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = executeCmd(t, app, "phase", "add", "--title", "Gamma", "--duration", "2", "--due", "03/01/2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid due date")

	assert.Equal(t, 1, store.Snapshot().Len())
}

func TestPhaseList(t *testing.T) {
	app, _ := demoApp(t)

	out, err := executeCmd(t, app, "phase", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Foundation")
	assert.Contains(t, out, "4 weeks")
}

func TestPhaseList_Empty(t *testing.T) {
	app := testApp(t, testutil.NewTestStore(t))

	out, err := executeCmd(t, app, "phase", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No phases yet.")
}

func TestPhaseShow(t *testing.T) {
	app, _ := demoApp(t)

	out, err := executeCmd(t, app, "phase", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Foundation")
	assert.Contains(t, out, "Project setup")

	_, err = executeCmd(t, app, "phase", "show", "9")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestPhaseUpdate_OnlyNamedFields(t *testing.T) {
	app, store := demoApp(t)

	out, err := executeCmd(t, app, "phase", "update", "1", "--duration", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated phase #1 Foundation")

	p, _ := store.Snapshot().Phase("1")
	assert.Equal(t, "Foundation", p.Title)
	assert.Equal(t, 5, p.Duration)
	assert.Equal(t, "2024-12-31", domain.FormatDate(p.DueDate))
	assert.Len(t, p.Tasks, 1)
}

func TestPhaseUpdate_ClearDueDate(t *testing.T) {
	app, store := demoApp(t)

	_, err := executeCmd(t, app, "phase", "update", "1", "--due", "none")
	require.NoError(t, err)

	p, _ := store.Snapshot().Phase("1")
	assert.Nil(t, p.DueDate)
}

func TestPhaseUpdate_NoFlags(t *testing.T) {
	app, _ := demoApp(t)

	_, err := executeCmd(t, app, "phase", "update", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")
}

// Updating a phase that does not exist never creates one.
func TestPhaseUpdate_UnknownID(t *testing.T) {
	app, store := demoApp(t)

	_, err := executeCmd(t, app, "phase", "update", "99", "--title", "X")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, 1, store.Snapshot().Len())
}

func TestPhaseRemove_RequiresYesOutsideTerminal(t *testing.T) {
	app, store := demoApp(t)

	_, err := executeCmd(t, app, "phase", "remove", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
	assert.Equal(t, 1, store.Snapshot().Len())

	out, err := executeCmd(t, app, "phase", "remove", "1", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed phase #1")
	assert.Equal(t, 0, store.Snapshot().Len())

	// Tasks of a removed phase are gone with it.
	_, err = executeCmd(t, app, "task", "cycle", "1", "1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// --- task ---

func TestTaskAdd_Defaults(t *testing.T) {
	app, store := demoApp(t)

	out, err := executeCmd(t, app, "task", "add", "1", "--text", "Draft requirements")
	require.NoError(t, err)
	assert.Contains(t, out, "Added task")
	assert.Contains(t, out, "Draft requirements")
	assert.Contains(t, out, "Pending")
	assert.Contains(t, out, "MEDIUM")

	p, _ := store.Snapshot().Phase("1")
	require.Len(t, p.Tasks, 2)
	added := p.Tasks[1]
	assert.NotEqual(t, "1", added.ID)
	assert.Equal(t, domain.StatusPending, added.Status)
	assert.Equal(t, domain.PriorityMedium, added.Priority)
	assert.Equal(t, domain.AssigneeNone, added.Assignee)
}

func TestTaskAdd_BlankTextGetsDefault(t *testing.T) {
	app, store := demoApp(t)

	_, err := executeCmd(t, app, "task", "add", "1")
	require.NoError(t, err)

	p, _ := store.Snapshot().Phase("1")
	assert.Equal(t, domain.DefaultTaskText, p.Tasks[1].Text)
}

func TestTaskAdd_AllFields(t *testing.T) {
	app, store := demoApp(t)

	_, err := executeCmd(t, app, "task", "add", "1",
		"--text", "Ship", "--status", "In Progress", "--priority", "HIGH",
		"--assignee", "salim", "--due", "2025-01-10")
	require.NoError(t, err)

	p, _ := store.Snapshot().Phase("1")
	task := p.Tasks[1]
	assert.Equal(t, domain.StatusInProgress, task.Status)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, domain.AssigneeSalim, task.Assignee)
	assert.Equal(t, "2025-01-10", domain.FormatDate(task.DueDate))
}

func TestTaskAdd_RejectsValuesOutsideSets(t *testing.T) {
	app, store := demoApp(t)

	for _, args := range [][]string{
		{"--status", "done"},
		{"--priority", "urgent"},
		{"--assignee", "Bob"},
	} {
		_, err := executeCmd(t, app, append([]string{"task", "add", "1"}, args...)...)
		require.Error(t, err, "%v", args)
		assert.True(t, errors.Is(err, domain.ErrValidation), "%v", args)
	}

	p, _ := store.Snapshot().Phase("1")
	assert.Len(t, p.Tasks, 1)
}

func TestTaskAdd_UnknownPhase(t *testing.T) {
	app, _ := demoApp(t)

	_, err := executeCmd(t, app, "task", "add", "99", "--text", "orphan")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestTaskUpdate_PartialFields(t *testing.T) {
	app, store := demoApp(t)
	before, _ := store.Snapshot().Task("1", "1")

	_, err := executeCmd(t, app, "task", "update", "1", "1", "--assignee", "Vinc")
	require.NoError(t, err)

	after, _ := store.Snapshot().Task("1", "1")
	want := before.Clone()
	want.Assignee = domain.AssigneeVinc
	assert.Equal(t, want, after)
}

func TestTaskEdit_AliasClearsAssigneeAndDue(t *testing.T) {
	app, store := demoApp(t)

	_, err := executeCmd(t, app, "task", "edit", "1", "1", "--assignee", "none", "--due", "none")
	require.NoError(t, err)

	task, _ := store.Snapshot().Task("1", "1")
	assert.Equal(t, domain.AssigneeNone, task.Assignee)
	assert.Nil(t, task.DueDate)
	assert.Equal(t, "Project setup", task.Text)
}

func TestTaskUpdate_BlankTextRejected(t *testing.T) {
	app, _ := demoApp(t)

	_, err := executeCmd(t, app, "task", "update", "1", "1", "--text", " ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestTaskUpdate_Unresolved(t *testing.T) {
	app, _ := demoApp(t)

	_, err := executeCmd(t, app, "task", "update", "1", "9", "--text", "x")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = executeCmd(t, app, "task", "update", "9", "1", "--text", "x")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// Cycling a completed task walks pending, in-progress and back to completed.
func TestTaskCycle_FromCompleted(t *testing.T) {
	app, store := demoApp(t)

	for _, want := range []domain.Status{domain.StatusPending, domain.StatusInProgress, domain.StatusCompleted} {
		_, err := executeCmd(t, app, "task", "cycle", "1", "1")
		require.NoError(t, err)
		task, _ := store.Snapshot().Task("1", "1")
		assert.Equal(t, want, task.Status)
	}
}

// Removing the only task empties the phase and leaves other phases alone.
func TestTaskRemove_OnlyTask(t *testing.T) {
	app, store := demoApp(t)
	_, err := executeCmd(t, app, "phase", "add", "--title", "Beta", "--duration", "6")
	require.NoError(t, err)
	beta, _ := store.Snapshot().Phase("2")

	out, err := executeCmd(t, app, "task", "remove", "1", "1", "-y")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed task #1 from phase #1")

	p, _ := store.Snapshot().Phase("1")
	assert.Empty(t, p.Tasks)
	after, _ := store.Snapshot().Phase("2")
	assert.Equal(t, beta, after)
}

// --- show / title / options ---

func TestShow_Text(t *testing.T) {
	app, _ := demoApp(t)

	out, err := executeCmd(t, app, "show")
	require.NoError(t, err)
	assert.Contains(t, out, roadmap.DefaultTitle)
	assert.Contains(t, out, "Foundation")
	assert.Contains(t, out, "Project setup")
	assert.Contains(t, out, "1/1 tasks done")
}

func TestShow_JSONRoundTripsThroughImporter(t *testing.T) {
	app, store := demoApp(t)

	out, err := executeCmd(t, app, "show", "--format", "json")
	require.NoError(t, err)

	var doc importer.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	snap, err := importer.ToSnapshot(&doc)
	require.NoError(t, err)
	assert.Equal(t, store.Snapshot().Phases(), snap.Phases())
}

func TestShow_YAML(t *testing.T) {
	app, _ := demoApp(t)

	out, err := executeCmd(t, app, "show", "-f", "yaml")
	require.NoError(t, err)

	var doc importer.Document
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Phases, 1)
	assert.Equal(t, "Foundation", doc.Phases[0].Title)
}

func TestShow_UnknownFormat(t *testing.T) {
	app, _ := demoApp(t)

	_, err := executeCmd(t, app, "show", "--format", "xml")
	assert.Error(t, err)
}

func TestTitle(t *testing.T) {
	app, store := demoApp(t)

	out, err := executeCmd(t, app, "title", "Launch", "Plan")
	require.NoError(t, err)
	assert.Contains(t, out, "Renamed roadmap to Launch Plan")
	assert.Equal(t, "Launch Plan", store.Snapshot().Title())
}

func TestShow_TitleKeepsCase(t *testing.T) {
	app, _ := demoApp(t)

	_, err := executeCmd(t, app, "title", "iOS launch")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "iOS launch")
	assert.NotContains(t, out, "IOS LAUNCH")
}

func TestOptions_ListsExactSets(t *testing.T) {
	app, _ := demoApp(t)

	out, err := executeCmd(t, app, "options")
	require.NoError(t, err)
	for _, s := range []string{"pending", "in-progress", "completed", "low", "medium", "high", "Amin", "Salim", "Vinc", "none"} {
		assert.Contains(t, out, s)
	}
}

// --- id resolution ---

func TestResolvePhaseID_PrefixNeedsFourChars(t *testing.T) {
	app := testApp(t, testutil.NewTestStore(t,
		testutil.NewTestPhase("A", testutil.WithPhaseID("1")),
		testutil.NewTestPhase("B", testutil.WithPhaseID("20")),
		testutil.NewTestPhase("C", testutil.WithPhaseID("9f3c2a10-aaaa")),
		testutil.NewTestPhase("D", testutil.WithPhaseID("9f3c7b22-bbbb")),
	))

	_, err := executeCmd(t, app, "phase", "show", "2")
	assert.True(t, errors.Is(err, domain.ErrNotFound), "short input must match exactly")

	out, err := executeCmd(t, app, "phase", "show", "9f3c2")
	require.NoError(t, err)
	assert.Contains(t, out, "C")

	_, err = executeCmd(t, app, "phase", "show", "9f3c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}
