// Package gwdata загружает и сохраняет файлы данных скиллов Guild Wars:
// skilldata.json (механика) и skilldesc-en.json (описания).
//
// Оба файла устроены одинаково: верхнеуровневый объект с одной именованной
// коллекцией, внутри — записи по строковому id скилла. PvP-split версии
// скиллов лежат под собственными id и ничем не отличаются от базовых записей.
package gwdata

import (
	"fmt"
	"strconv"

	"github.com/gw1tools/gw1builds/internal/jsondoc"
)

// Имена коллекций в верхнеуровневом объекте каждого файла.
const (
	CollectionSkillData = "skilldata"
	CollectionSkillDesc = "skilldesc"
)

// Table — один файл данных: документ целиком и коллекция записей внутри него.
// Документ держится целиком, чтобы при сохранении нетронутые записи и
// возможные соседние верхнеуровневые ключи прошли насквозь байт-в-байт.
type Table struct {
	path       string
	collection string
	doc        *jsondoc.Object
	records    *jsondoc.Object
}

// LoadTable читает файл и находит в нём коллекцию записей.
func LoadTable(path, collection string) (*Table, error) {
	doc, err := jsondoc.Load(path)
	if err != nil {
		return nil, err
	}
	records, ok := doc.Child(collection)
	if !ok {
		return nil, fmt.Errorf("%s: missing %q collection", path, collection)
	}
	return &Table{
		path:       path,
		collection: collection,
		doc:        doc,
		records:    records,
	}, nil
}

// Record возвращает запись скилла по числовому id.
// Ключи в файле строковые ("1406"), как их пишет сериализация.
func (t *Table) Record(id int) (*jsondoc.Object, bool) {
	return t.records.Child(strconv.Itoa(id))
}

// Len возвращает количество записей в коллекции.
func (t *Table) Len() int {
	return t.records.Len()
}

// Path возвращает путь к исходному файлу.
func (t *Table) Path() string {
	return t.path
}

// Save перезаписывает исходный файл текущим состоянием документа.
func (t *Table) Save() error {
	return jsondoc.Save(t.path, t.doc)
}
