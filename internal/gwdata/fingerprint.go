package gwdata

import (
	"encoding/hex"
	"fmt"
	"os"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint возвращает BLAKE2b-256 содержимого файла в hex.
// Отпечатки пишутся в лог и в журнал прогонов, чтобы привязать прогон
// патча к точным байтам входных и выходных файлов.
func Fingerprint(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
