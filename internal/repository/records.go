package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"

	_ "modernc.org/sqlite"
)

var ErrRecordNotFound = errors.New("weather record not found")

const recordColumns = `id, location_name, latitude, longitude, timestamp,
	temperature, feels_like, temp_min, temp_max, pressure, humidity,
	wind_speed, wind_deg, condition, description, icon, visibility,
	forecast, notes, created_at, updated_at`

// ListFilter narrows List results; zero value returns everything.
type ListFilter struct {
	Location string
	From     *time.Time
	To       *time.Time
}

type RecordRepository struct {
	DB *sql.DB
}

func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{DB: db}
}

// Create assigns the identifier and stores the record. The identifier is
// never reassigned afterwards.
func (r *RecordRepository) Create(ctx context.Context, rec *models.WeatherRecord) error {
	rec.ID = uuid.NewString()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if rec.Timestamp.IsZero() {
		rec.Timestamp = now
	}

	forecast, err := json.Marshal(rec.Forecast)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO weather_records (`+recordColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.LocationName, rec.Latitude, rec.Longitude, rec.Timestamp,
		rec.Current.Temperature, rec.Current.FeelsLike, rec.Current.TempMin,
		rec.Current.TempMax, rec.Current.Pressure, rec.Current.Humidity,
		rec.Current.WindSpeed, rec.Current.WindDeg, rec.Current.Condition,
		rec.Current.Description, rec.Current.Icon, rec.Current.Visibility,
		string(forecast), rec.Notes, rec.CreatedAt, rec.UpdatedAt,
	)
	return err
}

func (r *RecordRepository) GetByID(ctx context.Context, id string) (models.WeatherRecord, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM weather_records WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WeatherRecord{}, ErrRecordNotFound
	}
	return rec, err
}

func (r *RecordRepository) List(ctx context.Context, filter ListFilter) ([]models.WeatherRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM weather_records WHERE 1=1`
	var args []any

	if filter.Location != "" {
		query += ` AND location_name LIKE ?`
		args = append(args, "%"+filter.Location+"%")
	}
	if filter.From != nil {
		query += ` AND timestamp >= ?`
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		query += ` AND timestamp <= ?`
		args = append(args, *filter.To)
	}
	query += ` ORDER BY timestamp DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			fmt.Println("failed to close rows:", err)
		}
	}(rows)

	var records []models.WeatherRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Update replaces the mutable fields only; nil fields are left untouched.
func (r *RecordRepository) Update(
	ctx context.Context,
	id string,
	data models.UpdateRecordData,
) (models.WeatherRecord, error) {
	rec, err := r.GetByID(ctx, id)
	if err != nil {
		return models.WeatherRecord{}, err
	}

	if data.LocationName != nil {
		rec.LocationName = *data.LocationName
	}
	if data.Notes != nil {
		rec.Notes = *data.Notes
	}
	rec.UpdatedAt = time.Now().UTC()

	_, err = r.DB.ExecContext(ctx,
		`UPDATE weather_records SET location_name = ?, notes = ?, updated_at = ? WHERE id = ?`,
		rec.LocationName, rec.Notes, rec.UpdatedAt, id,
	)
	if err != nil {
		return models.WeatherRecord{}, err
	}
	return rec, nil
}

func (r *RecordRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM weather_records WHERE id = ?`, id)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *RecordRepository) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	var avg sql.NullFloat64

	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT location_name), AVG(temperature)
		FROM weather_records
	`).Scan(&stats.TotalRecords, &stats.UniqueLocations, &avg)
	if err != nil {
		return models.Stats{}, err
	}
	if avg.Valid {
		stats.AvgTemperature = avg.Float64
	}

	// MIN/MAX aggregates lose the column type and scan back as strings,
	// so the boundary timestamps are read as plain column selects.
	oldest, err := r.boundaryTimestamp(ctx, "ASC")
	if err != nil {
		return models.Stats{}, err
	}
	newest, err := r.boundaryTimestamp(ctx, "DESC")
	if err != nil {
		return models.Stats{}, err
	}
	stats.OldestRecord = oldest
	stats.NewestRecord = newest
	return stats, nil
}

func (r *RecordRepository) boundaryTimestamp(ctx context.Context, order string) (*time.Time, error) {
	var ts time.Time
	err := r.DB.QueryRowContext(ctx,
		`SELECT timestamp FROM weather_records ORDER BY timestamp `+order+` LIMIT 1`,
	).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (models.WeatherRecord, error) {
	var rec models.WeatherRecord
	var forecast string

	err := row.Scan(
		&rec.ID, &rec.LocationName, &rec.Latitude, &rec.Longitude, &rec.Timestamp,
		&rec.Current.Temperature, &rec.Current.FeelsLike, &rec.Current.TempMin,
		&rec.Current.TempMax, &rec.Current.Pressure, &rec.Current.Humidity,
		&rec.Current.WindSpeed, &rec.Current.WindDeg, &rec.Current.Condition,
		&rec.Current.Description, &rec.Current.Icon, &rec.Current.Visibility,
		&forecast, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return models.WeatherRecord{}, err
	}

	if err := json.Unmarshal([]byte(forecast), &rec.Forecast); err != nil {
		return models.WeatherRecord{}, fmt.Errorf("malformed forecast column for %s: %w", rec.ID, err)
	}
	return rec, nil
}
