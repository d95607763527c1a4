package repository

import (
	"context"
	"database/sql"
	"errors"

	"cityOps/models"
)

const binColumns = `id, location_name, x, y, fill_level, battery_level, last_serviced, category`

// BinRepository persists smart bins.
type BinRepository struct {
	db *sql.DB
}

func NewBinRepository(db *sql.DB) *BinRepository {
	return &BinRepository{db: db}
}

// Create inserts a new bin. Category defaults to GENERAL if empty.
func (r *BinRepository) Create(ctx context.Context, b *models.Bin) (*models.Bin, error) {
	if b == nil {
		return nil, errors.New("bin is nil")
	}
	if b.ID == "" {
		return nil, errors.New("bin id is required")
	}
	if b.Category == "" {
		b.Category = models.BinCategoryGeneral
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO bins (`+binColumns+`, seq)
VALUES (?,?,?,?,?,?,?,?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM bins))`,
		b.ID, b.LocationName, b.X, b.Y, b.FillLevel, b.BatteryLevel, b.LastServiced, string(b.Category))
	if err != nil {
		return nil, err
	}
	out := *b
	return &out, nil
}

func (r *BinRepository) GetByID(ctx context.Context, id string) (*models.Bin, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()
	b, err := scanBin(r.db.QueryRowContext(ctx, `SELECT `+binColumns+` FROM bins WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (r *BinRepository) List(ctx context.Context) ([]models.Bin, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT `+binColumns+` FROM bins ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Bin, 0)
	for rows.Next() {
		b, err := scanBin(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanBin(row rowScanner) (*models.Bin, error) {
	var b models.Bin
	var category string
	if err := row.Scan(&b.ID, &b.LocationName, &b.X, &b.Y, &b.FillLevel, &b.BatteryLevel, &b.LastServiced, &category); err != nil {
		return nil, err
	}
	b.Category = models.BinCategory(category)
	return &b, nil
}
