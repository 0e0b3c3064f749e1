package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/gw1tools/gw1builds/internal/audit"
	"github.com/gw1tools/gw1builds/internal/gwdata"
	"github.com/gw1tools/gw1builds/internal/patch"
)

const flowData = `{
	"skilldata": {
		"265": {
			"name": "Amity",
			"energy": 10,
			"activation": 1,
			"recharge": 45,
			"adrenaline": 0
		}
	}
}
`

const flowDesc = `{
	"skilldesc": {
		"265": {
			"name": "Amity",
			"description": "For 8...20 seconds, nearby foes cannot attack.",
			"concise": "(8...20 seconds.) Nearby foes cannot attack."
		}
	}
}
`

// amityPatch — фрагмент реального апдейта 20260205 для одного скилла.
func amityPatch() patch.Patch {
	return patch.Patch{
		Name: "amity-test",
		Mechanical: []patch.MechanicalChange{
			{SkillID: 265, Fields: []patch.FieldChange{{Field: "recharge", Value: json.Number("20")}}},
		},
		Descriptions: []patch.DescriptionChange{
			{SkillID: 265, Field: "description", Old: "For 8...20 seconds", New: "For 4...12 seconds"},
			{SkillID: 265, Field: "concise", Old: "(8...20 seconds.)", New: "(4...12 seconds.)"},
		},
	}
}

// writeFlowFixtures раскладывает рабочие файлы во временную директорию.
func (s *PatchRunSuite) writeFlowFixtures() (dataPath, descPath string) {
	dir := s.T().TempDir()
	dataPath = filepath.Join(dir, "skilldata.json")
	descPath = filepath.Join(dir, "skilldesc-en.json")
	s.Require().NoError(os.WriteFile(dataPath, []byte(flowData), 0o644))
	s.Require().NoError(os.WriteFile(descPath, []byte(flowDesc), 0o644))
	return dataPath, descPath
}

// runPatch прогоняет полный цикл: отпечатки, загрузка, применение,
// запись при нуле ошибок, строка в журнале.
func (s *PatchRunSuite) runPatch(p patch.Patch, dataPath, descPath string) *patch.Report {
	run := audit.Run{}
	run.ID = uuid.New()
	run.PatchName = p.Name
	run.StartedAt = time.Now()

	var err error
	run.SkillDataBefore, err = gwdata.Fingerprint(dataPath)
	s.Require().NoError(err)
	run.SkillDescBefore, err = gwdata.Fingerprint(descPath)
	s.Require().NoError(err)

	st, err := gwdata.LoadAll(dataPath, descPath)
	s.Require().NoError(err)

	rep := patch.Apply(st, p)

	if rep.OK() {
		s.Require().NoError(st.Save())
		run.FilesWritten = true
	}

	run.SkillDataAfter, err = gwdata.Fingerprint(dataPath)
	s.Require().NoError(err)
	run.SkillDescAfter, err = gwdata.Fingerprint(descPath)
	s.Require().NoError(err)

	run.FinishedAt = time.Now()
	run.AppliedMechanical = rep.AppliedMechanical
	run.AppliedDescriptions = rep.AppliedDescriptions
	run.Failed = rep.Failed
	s.Require().NoError(s.ledger.Record(s.ctx, run))

	return rep
}

// TestAppliedRunJournaled — успешный батч пишет оба файла и строку в журнал.
func (s *PatchRunSuite) TestAppliedRunJournaled() {
	dataPath, descPath := s.writeFlowFixtures()

	rep := s.runPatch(amityPatch(), dataPath, descPath)
	s.Require().True(rep.OK())
	s.Equal(1, rep.AppliedMechanical)
	s.Equal(2, rep.AppliedDescriptions)

	// Файлы действительно переписаны
	data, err := os.ReadFile(dataPath)
	s.Require().NoError(err)
	s.Contains(string(data), `"recharge": 20`)
	desc, err := os.ReadFile(descPath)
	s.Require().NoError(err)
	s.Contains(string(desc), "For 4...12 seconds")
	s.NotContains(string(desc), "For 8...20 seconds")

	runs, err := s.ledger.Runs(s.ctx, "amity-test")
	s.Require().NoError(err)
	s.Require().Len(runs, 1)
	s.True(runs[0].FilesWritten)
	s.Equal(0, runs[0].Failed)
	s.NotEqual(runs[0].SkillDataBefore, runs[0].SkillDataAfter, "отпечаток skilldata обязан смениться")
	s.NotEqual(runs[0].SkillDescBefore, runs[0].SkillDescAfter, "отпечаток skilldesc обязан смениться")
}

// TestFailedRunJournaled — промах валит батч: файлы не тронуты, в журнале
// остаётся строка с before == after.
func (s *PatchRunSuite) TestFailedRunJournaled() {
	dataPath, descPath := s.writeFlowFixtures()

	p := amityPatch()
	p.Name = "amity-broken"
	p.Descriptions = append(p.Descriptions, patch.DescriptionChange{
		SkillID: 265, Field: "description", Old: "no such text", New: "whatever",
	})

	rep := s.runPatch(p, dataPath, descPath)
	s.False(rep.OK())
	s.Equal(1, rep.Failed)

	// Байты исходные
	data, err := os.ReadFile(dataPath)
	s.Require().NoError(err)
	s.Equal(flowData, string(data))
	desc, err := os.ReadFile(descPath)
	s.Require().NoError(err)
	s.Equal(flowDesc, string(desc))

	runs, err := s.ledger.Runs(s.ctx, "amity-broken")
	s.Require().NoError(err)
	s.Require().Len(runs, 1)
	s.False(runs[0].FilesWritten)
	s.Equal(runs[0].SkillDataBefore, runs[0].SkillDataAfter)
	s.Equal(runs[0].SkillDescBefore, runs[0].SkillDescAfter)
}

// TestRerunFailsLoudly — повторный прогон применённого патча падает на
// прекондициях описаний, файлы после первого прогона не меняются.
func (s *PatchRunSuite) TestRerunFailsLoudly() {
	dataPath, descPath := s.writeFlowFixtures()

	rep1 := s.runPatch(amityPatch(), dataPath, descPath)
	s.Require().True(rep1.OK())

	patched, err := os.ReadFile(descPath)
	s.Require().NoError(err)

	rep2 := s.runPatch(amityPatch(), dataPath, descPath)
	s.False(rep2.OK(), "повторный прогон обязан падать")
	s.Equal(2, rep2.Failed)

	// Текст не задвоился
	desc, err := os.ReadFile(descPath)
	s.Require().NoError(err)
	s.Equal(string(patched), string(desc))

	runs, err := s.ledger.Runs(s.ctx, "amity-test")
	s.Require().NoError(err)
	s.Require().Len(runs, 2)
	s.False(runs[0].FilesWritten, "новейший прогон без записи файлов")
	s.True(runs[1].FilesWritten)
}
