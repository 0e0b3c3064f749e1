package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Marshal сериализует документ: табуляция по уровню вложенности, ключи в
// порядке исходника, не-ASCII и '<' '>' '&' без экранирования, один
// завершающий '\n'. Формат совпадает с тем, в котором файлы данных уже
// лежат в репозитории — diff показывает только изменённые записи.
func Marshal(root *Object) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, root, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Save сериализует документ и перезаписывает файл.
func Save(path string, root *Object) error {
	data, err := Marshal(root)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeValue(buf *bytes.Buffer, v any, depth int) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		buf.WriteString(val.String())
	case string:
		writeString(buf, val)
	case *Object:
		return writeObject(buf, val, depth)
	case []any:
		return writeArray(buf, val, depth)
	default:
		return fmt.Errorf("unsupported value type %T", v)
	}
	return nil
}

func writeObject(buf *bytes.Buffer, obj *Object, depth int) error {
	if obj.Len() == 0 {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteByte('{')
	for i, key := range obj.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
		writeIndent(buf, depth+1)
		writeString(buf, key)
		buf.WriteString(": ")
		if err := writeValue(buf, obj.vals[key], depth+1); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')
	writeIndent(buf, depth)
	buf.WriteByte('}')
	return nil
}

func writeArray(buf *bytes.Buffer, arr []any, depth int) error {
	if len(arr) == 0 {
		buf.WriteString("[]")
		return nil
	}
	buf.WriteByte('[')
	for i, v := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
		writeIndent(buf, depth+1)
		if err := writeValue(buf, v, depth+1); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')
	writeIndent(buf, depth)
	buf.WriteByte(']')
	return nil
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for range depth {
		buf.WriteByte('\t')
	}
}

// writeString экранирует минимально: кавычку, обратный слэш и управляющие
// символы. Всё остальное, включая кириллицу и разметку вида <sic/>,
// записывается как есть.
func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}
