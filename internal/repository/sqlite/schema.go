package sqlite

import "github.com/jmoiron/sqlx"

// Схема создаётся при первом обращении, миграций нет.
const schema = `
CREATE TABLE IF NOT EXISTS places (
    -- идентификатор места (UUID, назначается сервером при создании)
    id TEXT PRIMARY KEY,
    -- идентификатор автора из проверенного токена
    added_by INTEGER NOT NULL,
    -- момент создания (UTC, RFC3339), неизменяем
    added_at TEXT NOT NULL,
    longitude REAL NOT NULL,
    latitude REAL NOT NULL,
    -- JSON-массив имён тегов, порядок сохраняется
    tags TEXT NOT NULL DEFAULT '[]',
    verified INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS place_photos (
    id TEXT PRIMARY KEY,
    place_id TEXT NOT NULL,
    added_by INTEGER NOT NULL,
    added_at TEXT NOT NULL,
    -- имя файла на диске относительно каталога места
    file_name TEXT NOT NULL,
    FOREIGN KEY (place_id) REFERENCES places(id)
);

-- префильтр радиусного поиска ходит по рамке координат
CREATE INDEX IF NOT EXISTS idx_places_lat_lon
    ON places(latitude, longitude);

CREATE INDEX IF NOT EXISTS idx_place_photos_place_id
    ON place_photos(place_id);
`

func initSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
