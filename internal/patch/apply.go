package patch

import (
	"log/slog"
	"strings"

	"github.com/gw1tools/gw1builds/internal/gwdata"
)

// ApplyMechanical применяет правки механики в порядке списка.
//
// Отсутствующий скилл — ошибка батча: запись в лог, счётчик, переход к
// следующему элементу без частичных правок этого скилла. Отсутствующее
// поле тоже считается ошибкой и никогда не создаётся. Новые значения
// пишутся как есть, без проверки диапазонов: таблицы курируются вручную.
func ApplyMechanical(data *gwdata.Table, changes []MechanicalChange, rep *Report) {
	for _, ch := range changes {
		rec, ok := data.Record(ch.SkillID)
		if !ok {
			slog.Warn("skill not found in skilldata", "skill", ch.SkillID)
			rep.Failed++
			continue
		}
		for _, fc := range ch.Fields {
			old, ok := rec.Get(fc.Field)
			if !ok {
				slog.Warn("skill has no such field", "skill", ch.SkillID, "field", fc.Field)
				rep.Failed++
				continue
			}
			rec.Set(fc.Field, fc.Value)
			slog.Info("skill field updated",
				"skill", ch.SkillID, "field", fc.Field, "old", old, "new", fc.Value)
			rep.AppliedMechanical++
		}
	}
}

// ApplyDescriptions применяет текстовые замены в порядке списка.
//
// Каждая замена требует, чтобы старый фрагмент буквально встречался в
// текущем тексте поля; заменяется только первое вхождение. Промах — это
// устаревшая таблица, уже применённый патч или дрейф данных: в лог идёт
// искомый фрагмент и полный текущий текст поля, поле не трогается.
// Повторный прогон применённого патча обязан падать именно здесь.
func ApplyDescriptions(desc *gwdata.Table, changes []DescriptionChange, rep *Report) {
	for _, ch := range changes {
		rec, ok := desc.Record(ch.SkillID)
		if !ok {
			slog.Warn("skill not found in skilldesc", "skill", ch.SkillID)
			rep.Failed++
			continue
		}
		// name — только для диагностики, никогда не правится
		name, _ := rec.Str("name")

		cur, ok := rec.Str(ch.Field)
		if !ok {
			slog.Warn("description field missing or not a string",
				"skill", ch.SkillID, "name", name, "field", ch.Field)
			rep.Failed++
			continue
		}
		if !strings.Contains(cur, ch.Old) {
			slog.Warn("expected text not found",
				"skill", ch.SkillID, "name", name, "field", ch.Field,
				"want", ch.Old, "current", cur)
			rep.Failed++
			continue
		}

		rec.Set(ch.Field, strings.Replace(cur, ch.Old, ch.New, 1))
		slog.Info("description updated",
			"skill", ch.SkillID, "name", name, "field", ch.Field,
			"old", ch.Old, "new", ch.New)
		rep.AppliedDescriptions++
	}
}

// Apply прогоняет обе таблицы патча по загруженным данным и возвращает
// итоговый отчёт. Данные мутируются в памяти; решение о записи файлов
// принимает вызывающий по rep.OK().
func Apply(st *gwdata.Store, p Patch) *Report {
	rep := &Report{}

	slog.Info("applying mechanical changes", "patch", p.Name, "entries", len(p.Mechanical))
	ApplyMechanical(st.Data, p.Mechanical, rep)

	slog.Info("applying description changes", "patch", p.Name, "entries", len(p.Descriptions))
	ApplyDescriptions(st.Desc, p.Descriptions, rep)

	slog.Info("patch processed", "patch", p.Name,
		"mechanical", rep.AppliedMechanical,
		"descriptions", rep.AppliedDescriptions,
		"failed", rep.Failed)
	return rep
}
