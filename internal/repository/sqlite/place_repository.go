package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/place-microservice/internal/domain"
	"github.com/place-microservice/internal/domain/repository"
	"github.com/place-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// placeRow - строка таблицы places. Время хранится строкой RFC3339,
// теги - JSON-массивом.
type placeRow struct {
	ID        string  `db:"id"`
	AddedBy   int64   `db:"added_by"`
	AddedAt   string  `db:"added_at"`
	Longitude float64 `db:"longitude"`
	Latitude  float64 `db:"latitude"`
	Tags      string  `db:"tags"`
	Verified  bool    `db:"verified"`
}

type photoRow struct {
	ID       string `db:"id"`
	PlaceID  string `db:"place_id"`
	AddedBy  int64  `db:"added_by"`
	AddedAt  string `db:"added_at"`
	FileName string `db:"file_name"`
}

func (r *placeRepository) Insert(ctx context.Context, place *domain.Place, photos []*domain.Photo) error {
	tagsJSON, err := json.Marshal(place.Tags)
	if err != nil {
		r.logger.Error("Failed to marshal tags", zap.Error(err))
		return errors.ErrDatabaseError
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO places (id, added_by, added_at, longitude, latitude, tags, verified)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		place.ID.String(),
		place.AddedBy,
		place.AddedAt.UTC().Format(time.RFC3339Nano),
		place.Longitude,
		place.Latitude,
		string(tagsJSON),
		place.Verified,
	)
	if err != nil {
		r.logger.Error("Failed to insert place", zap.String("id", place.ID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	for _, photo := range photos {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO place_photos (id, place_id, added_by, added_at, file_name)
			VALUES (?, ?, ?, ?, ?)`,
			photo.ID.String(),
			photo.PlaceID.String(),
			photo.AddedBy,
			photo.AddedAt.UTC().Format(time.RFC3339Nano),
			photo.FileName,
		)
		if err != nil {
			r.logger.Error("Failed to insert photo",
				zap.String("place_id", place.ID.String()),
				zap.String("photo_id", photo.ID.String()),
				zap.Error(err),
			)
			return errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit place insert", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *placeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	var row placeRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, added_by, added_at, longitude, latitude, tags, verified
		FROM places
		WHERE id = ?`,
		id.String(),
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get place by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.toDomain(&row)
}

func (r *placeRepository) GetAll(ctx context.Context) ([]*domain.Place, error) {
	rows := []placeRow{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, added_by, added_at, longitude, latitude, tags, verified
		FROM places
		ORDER BY rowid`,
	)
	if err != nil {
		r.logger.Error("Failed to get all places", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.toDomainList(rows)
}

func (r *placeRepository) GetInBoundingBox(ctx context.Context, box domain.BoundingBox) ([]*domain.Place, error) {
	rows := []placeRow{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, added_by, added_at, longitude, latitude, tags, verified
		FROM places
		WHERE latitude BETWEEN ? AND ?
		  AND longitude BETWEEN ? AND ?
		ORDER BY rowid`,
		box.MinLat, box.MaxLat, box.MinLon, box.MaxLon,
	)
	if err != nil {
		r.logger.Error("Failed to get places in bounding box", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.toDomainList(rows)
}

func (r *placeRepository) GetPhotosByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*domain.Photo, error) {
	rows := []photoRow{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, place_id, added_by, added_at, file_name
		FROM place_photos
		WHERE place_id = ?
		ORDER BY rowid`,
		placeID.String(),
	)
	if err != nil {
		r.logger.Error("Failed to get photos", zap.String("place_id", placeID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	photos := make([]*domain.Photo, 0, len(rows))
	for i := range rows {
		photo, err := r.photoToDomain(&rows[i])
		if err != nil {
			r.logger.Error("Failed to decode photo row", zap.Error(err))
			continue
		}
		photos = append(photos, photo)
	}

	return photos, nil
}

func (r *placeRepository) CountPhotos(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM place_photos`); err != nil {
		r.logger.Error("Failed to count photos", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}

func (r *placeRepository) toDomain(row *placeRow) (*domain.Place, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		r.logger.Error("Invalid place id in database", zap.String("id", row.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	addedAt, err := time.Parse(time.RFC3339Nano, row.AddedAt)
	if err != nil {
		r.logger.Error("Invalid timestamp in database", zap.String("id", row.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	tags := []domain.FeatureTag{}
	if err := json.Unmarshal([]byte(row.Tags), &tags); err != nil {
		r.logger.Error("Invalid tags in database", zap.String("id", row.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &domain.Place{
		ID:        id,
		AddedBy:   row.AddedBy,
		AddedAt:   addedAt,
		Longitude: row.Longitude,
		Latitude:  row.Latitude,
		Tags:      tags,
		Verified:  row.Verified,
	}, nil
}

func (r *placeRepository) toDomainList(rows []placeRow) ([]*domain.Place, error) {
	places := make([]*domain.Place, 0, len(rows))
	for i := range rows {
		place, err := r.toDomain(&rows[i])
		if err != nil {
			continue
		}
		places = append(places, place)
	}
	return places, nil
}

func (r *placeRepository) photoToDomain(row *photoRow) (*domain.Photo, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, err
	}
	placeID, err := uuid.Parse(row.PlaceID)
	if err != nil {
		return nil, err
	}
	addedAt, err := time.Parse(time.RFC3339Nano, row.AddedAt)
	if err != nil {
		return nil, err
	}

	return &domain.Photo{
		ID:       id,
		PlaceID:  placeID,
		AddedBy:  row.AddedBy,
		AddedAt:  addedAt,
		FileName: row.FileName,
	}, nil
}
