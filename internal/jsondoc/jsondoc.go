// Package jsondoc читает и пишет JSON-деревья с сохранением порядка ключей.
//
// Файлы skilldata.json и skilldesc-en.json находятся под version control,
// поэтому перезапись обязана быть воспроизводимой байт-в-байт: порядок ключей
// исходника, табуляция, сырой UTF-8, один завершающий перевод строки.
// encoding/json сортирует ключи map — вместо map используется Object.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Object — JSON-объект с сохранением порядка вставки ключей.
// Значения: nil, bool, string, json.Number, *Object, []any.
type Object struct {
	keys []string
	vals map[string]any
}

// NewObject создаёт пустой Object.
func NewObject() *Object {
	return &Object{vals: make(map[string]any)}
}

// Len возвращает количество ключей.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys возвращает копию списка ключей в порядке исходника.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Get возвращает значение по ключу.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Set записывает значение. Существующий ключ сохраняет свою позицию,
// новый добавляется в конец.
func (o *Object) Set(key string, v any) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Child возвращает вложенный объект по ключу.
// Returns false если ключа нет или значение не объект.
func (o *Object) Child(key string) (*Object, bool) {
	v, ok := o.vals[key]
	if !ok {
		return nil, false
	}
	child, ok := v.(*Object)
	return child, ok
}

// Str возвращает строковое значение по ключу.
func (o *Object) Str(key string) (string, bool) {
	v, ok := o.vals[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Parse разбирает JSON-документ, верхний уровень которого — объект.
// Числа сохраняются как json.Number, чтобы при записи не менялась
// текстовая форма (0.25 остаётся 0.25, 15 не становится 15.0).
func Parse(data []byte) (*Object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("top-level json value is %T, want object", v)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after top-level object")
	}
	return obj, nil
}

// Load читает и разбирает JSON-файл.
func Load(path string) (*Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	obj, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return obj, nil
}

func parseValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	default:
		// string, json.Number, bool или nil
		return tok, nil
	}
}

func parseObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, want string", keyTok)
		}
		v, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	// закрывающая '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		v, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	// закрывающая ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
