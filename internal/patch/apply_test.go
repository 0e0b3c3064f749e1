package patch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gw1tools/gw1builds/internal/gwdata"
)

const testData = `{
	"skilldata": {
		"100": {
			"name": "Test Strike",
			"energy": 10,
			"activation": 2,
			"recharge": 30
		},
		"200": {
			"name": "Test Ward",
			"energy": 15,
			"recharge": 20
		}
	}
}
`

const testDesc = `{
	"skilldesc": {
		"100": {
			"name": "Test Strike",
			"description": "For 10 seconds, you deal 5...17 damage every 10 seconds.",
			"concise": "(10 seconds.) Deals 5...17 damage."
		},
		"200": {
			"name": "Test Ward",
			"description": "Party members take 5 less damage.",
			"split_id": 900
		}
	}
}
`

// newTestStore загружает фикстуры через весь штатный путь чтения.
func newTestStore(t *testing.T) *gwdata.Store {
	t.Helper()
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "skilldata.json")
	descPath := filepath.Join(dir, "skilldesc-en.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(testData), 0o644))
	require.NoError(t, os.WriteFile(descPath, []byte(testDesc), 0o644))

	st, err := gwdata.LoadAll(dataPath, descPath)
	require.NoError(t, err)
	return st
}

func numField(t *testing.T, tbl *gwdata.Table, id int, field string) json.Number {
	t.Helper()
	rec, ok := tbl.Record(id)
	require.True(t, ok)
	v, ok := rec.Get(field)
	require.True(t, ok)
	n, ok := v.(json.Number)
	require.True(t, ok, "field %s of %d is not a number: %T", field, id, v)
	return n
}

func strField(t *testing.T, tbl *gwdata.Table, id int, field string) string {
	t.Helper()
	rec, ok := tbl.Record(id)
	require.True(t, ok)
	s, ok := rec.Str(field)
	require.True(t, ok)
	return s
}

func TestApplyMechanical(t *testing.T) {
	st := newTestStore(t)
	rep := &Report{}

	ApplyMechanical(st.Data, []MechanicalChange{
		{SkillID: 100, Fields: []FieldChange{
			{"energy", num("5")},
			{"activation", num("0.25")},
		}},
		{SkillID: 200, Fields: []FieldChange{{"recharge", num("15")}}},
	}, rep)

	assert.Equal(t, 3, rep.AppliedMechanical)
	assert.Equal(t, 0, rep.Failed)
	assert.True(t, rep.OK())

	assert.Equal(t, json.Number("5"), numField(t, st.Data, 100, "energy"))
	assert.Equal(t, json.Number("0.25"), numField(t, st.Data, 100, "activation"))
	assert.Equal(t, json.Number("15"), numField(t, st.Data, 200, "recharge"))
}

// TestApplyMechanicalMissingSkill — промах по id не останавливает батч,
// последующие записи применяются.
func TestApplyMechanicalMissingSkill(t *testing.T) {
	st := newTestStore(t)
	rep := &Report{}

	ApplyMechanical(st.Data, []MechanicalChange{
		{SkillID: 999, Fields: []FieldChange{{"energy", num("5")}}},
		{SkillID: 100, Fields: []FieldChange{{"energy", num("5")}}},
	}, rep)

	assert.Equal(t, 1, rep.AppliedMechanical)
	assert.Equal(t, 1, rep.Failed)
	assert.False(t, rep.OK())
	assert.Equal(t, json.Number("5"), numField(t, st.Data, 100, "energy"))
}

// TestApplyMechanicalMissingField — отсутствующее поле не создаётся,
// остальные поля той же записи правятся.
func TestApplyMechanicalMissingField(t *testing.T) {
	st := newTestStore(t)
	rep := &Report{}

	ApplyMechanical(st.Data, []MechanicalChange{
		{SkillID: 200, Fields: []FieldChange{
			{"adrenaline", num("3")},
			{"energy", num("5")},
		}},
	}, rep)

	assert.Equal(t, 1, rep.AppliedMechanical)
	assert.Equal(t, 1, rep.Failed)

	rec, ok := st.Data.Record(200)
	require.True(t, ok)
	_, ok = rec.Get("adrenaline")
	assert.False(t, ok, "missing field must not be created")
	assert.Equal(t, json.Number("5"), numField(t, st.Data, 200, "energy"))
}

// TestApplyDescriptionsFirstOccurrence — заменяется ровно первое вхождение.
func TestApplyDescriptionsFirstOccurrence(t *testing.T) {
	st := newTestStore(t)
	rep := &Report{}

	ApplyDescriptions(st.Desc, []DescriptionChange{
		{100, "description", "10 seconds", "8 seconds"},
	}, rep)

	assert.Equal(t, 1, rep.AppliedDescriptions)
	assert.Equal(t, 0, rep.Failed)
	// Второе "10 seconds" в хвосте осталось как было
	assert.Equal(t,
		"For 8 seconds, you deal 5...17 damage every 10 seconds.",
		strField(t, st.Desc, 100, "description"))
}

// TestApplyDescriptionsOrderedChain — замены применяются по порядку к уже
// обновлённому тексту: вторая находит фрагмент, созданный первой.
func TestApplyDescriptionsOrderedChain(t *testing.T) {
	st := newTestStore(t)
	rep := &Report{}

	ApplyDescriptions(st.Desc, []DescriptionChange{
		{100, "concise", "(10 seconds.)", "(8 seconds.)"},
		{100, "concise", "(8 seconds.) Deals 5...17", "(8 seconds.) Deals 5...25"},
	}, rep)

	assert.Equal(t, 2, rep.AppliedDescriptions)
	assert.Equal(t, 0, rep.Failed)
	assert.Equal(t, "(8 seconds.) Deals 5...25 damage.", strField(t, st.Desc, 100, "concise"))
}

// TestApplyDescriptionsMissingText — промах прекондиции: поле не трогается.
func TestApplyDescriptionsMissingText(t *testing.T) {
	st := newTestStore(t)
	rep := &Report{}

	ApplyDescriptions(st.Desc, []DescriptionChange{
		{100, "description", "For 99 seconds", "For 1 second"},
	}, rep)

	assert.Equal(t, 0, rep.AppliedDescriptions)
	assert.Equal(t, 1, rep.Failed)
	assert.Equal(t,
		"For 10 seconds, you deal 5...17 damage every 10 seconds.",
		strField(t, st.Desc, 100, "description"))
}

func TestApplyDescriptionsMissingSkill(t *testing.T) {
	st := newTestStore(t)
	rep := &Report{}

	ApplyDescriptions(st.Desc, []DescriptionChange{
		{999, "description", "whatever", "whatever else"},
		{200, "description", "take 5 less damage", "take 10 less damage"},
	}, rep)

	// Промах изолирован: следующая замена применилась
	assert.Equal(t, 1, rep.AppliedDescriptions)
	assert.Equal(t, 1, rep.Failed)
	assert.Equal(t, "Party members take 10 less damage.", strField(t, st.Desc, 200, "description"))
}

// TestApplyDescriptionsBadField — поле отсутствует или не строка.
func TestApplyDescriptionsBadField(t *testing.T) {
	st := newTestStore(t)
	rep := &Report{}

	ApplyDescriptions(st.Desc, []DescriptionChange{
		{200, "concise", "anything", "anything"}, // нет такого поля
		{200, "split_id", "900", "901"},          // поле не строковое
	}, rep)

	assert.Equal(t, 0, rep.AppliedDescriptions)
	assert.Equal(t, 2, rep.Failed)
}

// TestApplyNonIdempotent — повторный прогон применённого патча обязан
// падать на описаниях: старый текст уже заменён.
func TestApplyNonIdempotent(t *testing.T) {
	st := newTestStore(t)

	p := Patch{
		Name: "test-patch",
		Mechanical: []MechanicalChange{
			{SkillID: 100, Fields: []FieldChange{{"energy", num("5")}}},
		},
		Descriptions: []DescriptionChange{
			{100, "description", "For 10 seconds", "For 8 seconds"},
		},
	}

	rep1 := Apply(st, p)
	require.True(t, rep1.OK())
	assert.Equal(t, 1, rep1.AppliedMechanical)
	assert.Equal(t, 1, rep1.AppliedDescriptions)

	rep2 := Apply(st, p)
	assert.False(t, rep2.OK(), "second run must fail loudly")
	assert.Equal(t, 1, rep2.Failed)
	// Механика переписывается тем же значением, текст не задваивается
	assert.Equal(t, 1, rep2.AppliedMechanical)
	assert.Equal(t,
		"For 8 seconds, you deal 5...17 damage every 10 seconds.",
		strField(t, st.Desc, 100, "description"))
}

// TestApplyMixedBatch — один промах не мешает остальным правкам, но
// валит весь батч по OK().
func TestApplyMixedBatch(t *testing.T) {
	st := newTestStore(t)

	p := Patch{
		Name: "test-mixed",
		Mechanical: []MechanicalChange{
			{SkillID: 100, Fields: []FieldChange{{"recharge", num("20")}}},
			{SkillID: 999, Fields: []FieldChange{{"recharge", num("5")}}},
		},
		Descriptions: []DescriptionChange{
			{100, "concise", "(10 seconds.)", "(20 seconds.)"},
		},
	}

	rep := Apply(st, p)
	assert.Equal(t, 1, rep.AppliedMechanical)
	assert.Equal(t, 1, rep.AppliedDescriptions)
	assert.Equal(t, 1, rep.Failed)
	assert.False(t, rep.OK())
	assert.Equal(t, "applied 1 mechanical and 1 description changes, 1 failed", rep.Summary())
}
