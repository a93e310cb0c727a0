package domain

import (
	"time"

	"github.com/google/uuid"
)

// Place представляет геоточку, добавленную пользователем.
// Записи append-only: после создания место не изменяется и не удаляется.
type Place struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	AddedBy   int64        `json:"added_by" db:"added_by"`
	AddedAt   time.Time    `json:"added_at" db:"added_at"`
	Longitude float64      `json:"longitude" db:"longitude"`
	Latitude  float64      `json:"latitude" db:"latitude"`
	Tags      []FeatureTag `json:"tags"`
	Verified  bool         `json:"verified" db:"verified"`
	Photos    []*Photo     `json:"photos,omitempty"`
}

// Photo - метаданные фотографии места. Байты файла лежат на диске
// (<root>/<place_id>/<id><ext>), в БД хранятся только метаданные.
type Photo struct {
	ID       uuid.UUID `json:"id" db:"id"`
	PlaceID  uuid.UUID `json:"place_id" db:"place_id"`
	AddedBy  int64     `json:"added_by" db:"added_by"`
	AddedAt  time.Time `json:"added_at" db:"added_at"`
	FileName string    `json:"file_name" db:"file_name"`
}
