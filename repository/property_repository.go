package repository

import (
	"context"
	"database/sql"
	"errors"

	"cityOps/models"
)

const propertyColumns = `id, landlord_id, title, address, description, rent_amount, bedrooms, bathrooms, image_url, is_available`

// PropertyRepository persists portal listings.
type PropertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, p *models.Property) (*models.Property, error) {
	if p == nil {
		return nil, errors.New("property is nil")
	}
	if p.ID == "" {
		return nil, errors.New("property id is required")
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO properties (`+propertyColumns+`, seq)
VALUES (?,?,?,?,?,?,?,?,?,?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM properties))`,
		p.ID, p.LandlordID, p.Title, p.Address, p.Description, p.RentAmount, p.Bedrooms, p.Bathrooms, p.ImageURL, p.IsAvailable)
	if err != nil {
		return nil, err
	}
	out := *p
	return &out, nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()
	p, err := scanProperty(r.db.QueryRowContext(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces every mutable column. Returns sql.ErrNoRows if the id is unknown.
func (r *PropertyRepository) Update(ctx context.Context, p *models.Property) error {
	if p == nil {
		return errors.New("property is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	res, err := r.db.ExecContext(ctx,
		`UPDATE properties SET landlord_id = ?, title = ?, address = ?, description = ?, rent_amount = ?, bedrooms = ?, bathrooms = ?, image_url = ?, is_available = ? WHERE id = ?`,
		p.LandlordID, p.Title, p.Address, p.Description, p.RentAmount, p.Bedrooms, p.Bathrooms, p.ImageURL, p.IsAvailable, p.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes a listing. Maintenance requests and payments that reference
// it are left in place.
func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanProperty(row rowScanner) (*models.Property, error) {
	var p models.Property
	if err := row.Scan(&p.ID, &p.LandlordID, &p.Title, &p.Address, &p.Description, &p.RentAmount, &p.Bedrooms, &p.Bathrooms, &p.ImageURL, &p.IsAvailable); err != nil {
		return nil, err
	}
	return &p, nil
}
