package gwdata

import (
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Store — обе таблицы одного прогона патча.
type Store struct {
	Data *Table // skilldata.json
	Desc *Table // skilldesc-en.json
}

// LoadAll загружает обе таблицы параллельно. Файлы независимы; все
// правки выполняются строго последовательно уже после загрузки.
func LoadAll(dataPath, descPath string) (*Store, error) {
	var st Store
	var g errgroup.Group

	g.Go(func() error {
		t, err := LoadTable(dataPath, CollectionSkillData)
		if err != nil {
			return err
		}
		st.Data = t
		return nil
	})
	g.Go(func() error {
		t, err := LoadTable(descPath, CollectionSkillDesc)
		if err != nil {
			return err
		}
		st.Desc = t
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("skill tables loaded",
		"skills", st.Data.Len(),
		"descriptions", st.Desc.Len())
	return &st, nil
}

// Save перезаписывает оба файла. Вызывается только при нуле ошибок батча;
// записи идут по очереди, без общей транзакции между файлами.
func (s *Store) Save() error {
	if err := s.Data.Save(); err != nil {
		return err
	}
	return s.Desc.Save()
}
