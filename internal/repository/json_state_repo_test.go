package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacation-tracker-bot/internal/models"
	"vacation-tracker-bot/pkg/dateutil"
)

func quietLogger() *logrus.Logger {
	logger, _ := test.NewNullLogger()
	return logger
}

func populatedState() *models.State {
	start := dateutil.Date(2020, 1, 1)
	return &models.State{
		ContractStart:  &start,
		InitialBalance: -3,
		WorkPeriods: []models.WorkPeriod{
			{StartDate: dateutil.Date(2020, 1, 3), EndDate: dateutil.Date(2020, 1, 5), Location: "RigA"},
			{StartDate: dateutil.Date(2020, 2, 1), EndDate: dateutil.Date(2020, 2, 28), Location: ""},
			{StartDate: dateutil.Date(2020, 1, 4), EndDate: dateutil.Date(2020, 1, 4), Location: "Мастерская №2"},
		},
		SickPeriods: []models.SickPeriod{
			{StartDate: dateutil.Date(2020, 1, 4), EndDate: dateutil.Date(2020, 1, 4)},
		},
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracker_data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestJSONStateRepository_MissingFileIsFirstRun(t *testing.T) {
	repo := NewJSONStateRepository(filepath.Join(t.TempDir(), "absent.json"), quietLogger())

	state, err := repo.Load()
	require.NoError(t, err)

	assert.Nil(t, state.ContractStart)
	assert.Zero(t, state.InitialBalance)
	assert.Empty(t, state.WorkPeriods)
	assert.Empty(t, state.SickPeriods)
}

func TestJSONStateRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tracker_data.json")
	repo := NewJSONStateRepository(path, quietLogger())
	original := populatedState()

	require.NoError(t, repo.Save(original))
	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, original, loaded)

	// save(load()) keeps the document stable
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(loaded))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file must not be left behind")
}

func TestJSONStateRepository_DocumentShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker_data.json")
	repo := NewJSONStateRepository(path, quietLogger())

	require.NoError(t, repo.Save(populatedState()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "2020-01-01", raw["contract_start"])
	assert.EqualValues(t, -3, raw["initial_balance"])
	assert.EqualValues(t, 2, raw["version"])
	assert.Equal(t, []any{"2020-01-03", "2020-01-05", "RigA"}, raw["work_periods"].([]any)[0])
	assert.Equal(t, []any{"2020-01-04", "2020-01-04"}, raw["sick_periods"].([]any)[0])
}

func TestJSONStateRepository_EmptyStateWritesNullAndLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker_data.json")
	repo := NewJSONStateRepository(path, quietLogger())

	require.NoError(t, repo.Save(models.NewState()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":2,"contract_start":null,"initial_balance":0,"work_periods":[],"sick_periods":[]}`, string(data))
}

func TestJSONStateRepository_LegacyDocument(t *testing.T) {
	path := writeFile(t, `{
		"contract_start": "2019-11-26",
		"initial_balance": 5,
		"work_periods": [["2020-01-01", "2020-01-02"], ["2020-01-05", "2020-01-06", "RIG tp210"]],
		"sick_periods": [["2020-01-10", "2020-01-11"]]
	}`)
	repo := NewJSONStateRepository(path, quietLogger())

	state, err := repo.Load()
	require.NoError(t, err)

	require.Len(t, state.WorkPeriods, 2)
	assert.Equal(t, models.WorkPeriod{StartDate: dateutil.Date(2020, 1, 1), EndDate: dateutil.Date(2020, 1, 2), Location: ""}, state.WorkPeriods[0])
	assert.Equal(t, "RIG tp210", state.WorkPeriods[1].Location)
	assert.Equal(t, 5, state.InitialBalance)
	require.NotNil(t, state.ContractStart)
	assert.Equal(t, dateutil.Date(2019, 11, 26), *state.ContractStart)
}

func TestJSONStateRepository_PartialDocumentUsesDefaults(t *testing.T) {
	repo := NewJSONStateRepository(writeFile(t, `{"contract_start": null}`), quietLogger())

	state, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, models.NewState(), state)
}

func TestJSONStateRepository_MalformedFailsClosed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{"contract_start": `},
		{"bad contract date", `{"contract_start": "26.11.2019"}`},
		{"bad period date", `{"work_periods": [["2020-01-01", "soon", "RigA"]]}`},
		{"work arity", `{"work_periods": [["2020-01-01"]]}`},
		{"work arity v2", `{"version": 2, "work_periods": [["2020-01-01", "2020-01-02"]]}`},
		{"sick arity", `{"sick_periods": [["2020-01-01", "2020-01-02", "flu"]]}`},
		{"non string field", `{"work_periods": [["2020-01-01", "2020-01-02", 7]]}`},
		{"fractional balance", `{"initial_balance": 1.5}`},
		{"future version", `{"version": 9}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)
			repo := NewJSONStateRepository(path, quietLogger())

			state, err := repo.Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedDocument)
			assert.Nil(t, state)

			// the file is left untouched
			data, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, tt.content, string(data))
		})
	}
}

func TestJSONStateRepository_LogsLoad(t *testing.T) {
	logger, hook := test.NewNullLogger()
	repo := NewJSONStateRepository(writeFile(t, `{"contract_start": "2020-01-01", "work_periods": [["2020-01-01","2020-01-02"]]}`), logger)

	_, err := repo.Load()
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Tracker data loaded", entry.Message)
	assert.Equal(t, 0, entry.Data["version"])
	assert.Equal(t, 1, entry.Data["work_periods"])
}

func TestNewStateRepository(t *testing.T) {
	dir := t.TempDir()

	repo, err := NewStateRepository("", filepath.Join(dir, "a.json"), "", quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &JSONStateRepository{}, repo)

	repo, err = NewStateRepository(BackendSQLite, "", filepath.Join(dir, "a.db"), quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &GormStateRepository{}, repo)
	assert.NoError(t, repo.Close())

	_, err = NewStateRepository("redis", "", "", quietLogger())
	assert.Error(t, err)
}
