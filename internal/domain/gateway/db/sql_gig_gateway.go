package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"gig-weather/internal/domain/entity"
)

type SQLGigGateway struct {
	DB *sql.DB
}

var _ GigGateway = (*SQLGigGateway)(nil)

func NewSQLGigGateway(db *sql.DB) *SQLGigGateway {
	return &SQLGigGateway{DB: db}
}

func (gateway *SQLGigGateway) FindAllOrdered() ([]entity.Gig, error) {
	rows, err := gateway.DB.Query(`
		SELECT id, title, date, city_id, is_outdoor, created_at
		FROM gigs
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = closeErr
		}
	}()

	results := make([]entity.Gig, 0)
	for rows.Next() {
		var g entity.Gig
		if err := rows.Scan(&g.ID, &g.Title, &g.Date, &g.CityID, &g.IsOutdoor, &g.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (gateway *SQLGigGateway) FindByID(id string) (*entity.Gig, error) {
	var g entity.Gig
	err := gateway.DB.QueryRow(`
		SELECT id, title, date, city_id, is_outdoor, created_at
		FROM gigs
		WHERE id = $1`, id).
		Scan(&g.ID, &g.Title, &g.Date, &g.CityID, &g.IsOutdoor, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (gateway *SQLGigGateway) Create(gig entity.Gig) (*entity.Gig, error) {
	if gig.ID == "" {
		gig.ID = uuid.NewString()
	}
	if gig.CreatedAt.IsZero() {
		gig.CreatedAt = time.Now().UTC()
	}

	_, err := gateway.DB.Exec(`
		INSERT INTO gigs (id, title, date, city_id, is_outdoor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		gig.ID, gig.Title, gig.Date, gig.CityID, gig.IsOutdoor, gig.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &gig, nil
}

func (gateway *SQLGigGateway) DeleteByID(id string) error {
	result, err := gateway.DB.Exec(`DELETE FROM gigs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrGigNotFound
	}
	return nil
}
