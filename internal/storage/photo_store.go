package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// stagingDir - подкаталог для незакоммиченных загрузок.
const stagingDir = ".staging"

// PhotoStore хранит байты фотографий на диске под явно заданным корнем.
// Файлы сначала пишутся в staging-каталог, публикуются переименованием
// только после успешного коммита строк в БД; любой другой исход загрузки
// заканчивается Discard. Итоговая раскладка: <root>/<place_id>/<file_id><ext>.
type PhotoStore struct {
	root   string
	logger *zap.Logger
}

func NewPhotoStore(root string, logger *zap.Logger) (*PhotoStore, error) {
	if err := os.MkdirAll(filepath.Join(root, stagingDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create photo root: %w", err)
	}
	return &PhotoStore{root: root, logger: logger}, nil
}

// Upload - незавершённая загрузка файлов одного места.
type Upload struct {
	store     *PhotoStore
	placeID   uuid.UUID
	dir       string
	count     int
	committed bool
}

// Begin открывает staging-каталог для файлов места placeID.
func (s *PhotoStore) Begin(placeID uuid.UUID) (*Upload, error) {
	dir := filepath.Join(s.root, stagingDir, placeID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create staging dir: %w", err)
	}
	return &Upload{store: s, placeID: placeID, dir: dir}, nil
}

// Add записывает содержимое файла под именем <fileID><ext> и возвращает
// имя сохранённого файла. Расширение берётся от исходного файла как есть.
func (u *Upload) Add(fileID uuid.UUID, originalName string, r io.Reader) (string, error) {
	ext := filepath.Ext(filepath.Base(originalName))
	name := fileID.String() + strings.ToLower(ext)

	f, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close photo file: %w", err)
	}

	u.count++
	return name, nil
}

// Count возвращает число уже записанных файлов.
func (u *Upload) Count() int {
	return u.count
}

// Commit публикует staging-каталог как <root>/<place_id>.
// Загрузка без единого файла просто убирает пустой staging-каталог.
func (u *Upload) Commit() error {
	if u.committed {
		return nil
	}

	if u.count == 0 {
		u.committed = true
		return os.RemoveAll(u.dir)
	}

	final := filepath.Join(u.store.root, u.placeID.String())
	if err := os.Rename(u.dir, final); err != nil {
		return fmt.Errorf("failed to publish photos: %w", err)
	}

	u.committed = true
	u.store.logger.Debug("Photos published",
		zap.String("place_id", u.placeID.String()),
		zap.Int("count", u.count),
	)
	return nil
}

// Discard удаляет staging-каталог. После Commit ничего не делает,
// поэтому безопасен в defer.
func (u *Upload) Discard() {
	if u.committed {
		return
	}
	if err := os.RemoveAll(u.dir); err != nil {
		u.store.logger.Warn("Failed to discard staged photos",
			zap.String("place_id", u.placeID.String()),
			zap.Error(err),
		)
	}
}
