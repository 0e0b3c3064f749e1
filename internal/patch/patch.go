// Package patch применяет балансовые патчи к таблицам скиллов.
//
// Патч — это две таблицы литеральных правок: механика (скилл, поле, новое
// значение) и описания (скилл, поле, старый фрагмент, новый фрагмент).
// Таблицы курируются вручную по патчноутам; движок их не валидирует,
// только проверяет предусловия (запись существует, фрагмент найден) и
// считает итоги. Ноль ошибок — единственное условие записи файлов.
package patch

import (
	"encoding/json"
	"fmt"
	"slices"
)

// FieldChange — новое значение одного механического поля.
// Значение хранится как json.Number, чтобы в файл попал ровно тот же
// текст (0.25, а не 0.250000).
type FieldChange struct {
	Field string
	Value json.Number
}

// MechanicalChange — правки механики одного скилла.
// Предусловий по старому значению нет: поле должно существовать,
// старое значение читается только для лога.
type MechanicalChange struct {
	SkillID int
	Fields  []FieldChange
}

// DescriptionChange — одна текстовая замена в описании скилла.
// Старый фрагмент обязан встречаться в текущем тексте поля; заменяется
// только первое вхождение. Правки одного (скилл, поле) выполняются строго
// по порядку списка — каждый следующий Old пишется относительно текста
// после предыдущих замен.
type DescriptionChange struct {
	SkillID int
	Field   string // "description" или "concise"
	Old     string
	New     string
}

// Patch — именованный балансовый патч.
type Patch struct {
	Name         string // аргумент для skillpatch apply
	Date         string // дата игрового апдейта, YYYY-MM-DD
	Source       string // патчноуты
	Summary      string
	Mechanical   []MechanicalChange
	Descriptions []DescriptionChange
}

// FieldEdits возвращает общее число правок полей по всем скиллам патча.
func (p Patch) FieldEdits() int {
	n := 0
	for _, mc := range p.Mechanical {
		n += len(mc.Fields)
	}
	return n
}

var registry []Patch

// Register добавляет патч в реестр. Вызывается из init() файлов таблиц.
func Register(p Patch) {
	registry = append(registry, p)
}

// All возвращает зарегистрированные патчи в порядке регистрации.
func All() []Patch {
	return slices.Clone(registry)
}

// Find ищет патч по имени.
func Find(name string) (Patch, bool) {
	for _, p := range registry {
		if p.Name == name {
			return p, true
		}
	}
	return Patch{}, false
}

// num — шорткат для литералов таблиц.
func num(s string) json.Number {
	return json.Number(s)
}

// Report накапливает итоги одного батча по обоим конвейерам.
// Персист разрешён тогда и только тогда, когда Failed == 0.
type Report struct {
	AppliedMechanical   int
	AppliedDescriptions int
	Failed              int
}

// OK сообщает, прошёл ли батч без единой ошибки.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Summary возвращает итоговую строку для оператора.
func (r *Report) Summary() string {
	return fmt.Sprintf("applied %d mechanical and %d description changes, %d failed",
		r.AppliedMechanical, r.AppliedDescriptions, r.Failed)
}
