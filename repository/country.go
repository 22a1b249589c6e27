// Package repository mediates every read and write of country records.
//
// Each method is one unit of work: writes run a single statement inside
// their own transaction, which is committed or rolled back before the
// method returns.
package repository

import (
	"context"
	"errors"
	"fmt"

	"countrymgr/errs"
	"countrymgr/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

type CountryRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

// Create inserts country and fails with errs.ErrAlreadyExists when the code is taken.
func (r *CountryRepository) Create(ctx context.Context, country models.Country) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&country)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.ErrAlreadyExists
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("create: %w", errs.ForCode(country.Code, translate(err)))
	}
	return nil
}

// FindByCode reports false with a nil error when no row has code.
func (r *CountryRepository) FindByCode(ctx context.Context, code string) (models.Country, bool, error) {
	var country models.Country
	res := r.db.WithContext(ctx).Where("code = ?", code).Limit(1).Find(&country)
	if res.Error != nil {
		return models.Country{}, false, fmt.Errorf("find country %s: %w", code, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Country{}, false, nil
	}
	return country, true, nil
}

// FindAll returns every stored country in the store's natural order.
func (r *CountryRepository) FindAll(ctx context.Context) ([]models.Country, error) {
	var countries []models.Country
	if err := r.db.WithContext(ctx).Find(&countries).Error; err != nil {
		return nil, fmt.Errorf("find countries: %w", err)
	}
	return countries, nil
}

// Update overwrites name and both percentages of the row keyed by country.Code.
// Nil percentages are written as NULL.
func (r *CountryRepository) Update(ctx context.Context, country models.Country) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Country{}).
			Where("code = ?", country.Code).
			Select("name", "internet_users", "adult_literacy_rate").
			Updates(map[string]any{
				"name":                country.Name,
				"internet_users":      nullable(country.InternetUsers),
				"adult_literacy_rate": nullable(country.AdultLiteracyRate),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update: %w", errs.ForCode(country.Code, translate(err)))
	}
	return nil
}

// Delete removes the row keyed by country.Code. Deleting an absent code
// returns errs.ErrNotFound.
func (r *CountryRepository) Delete(ctx context.Context, country models.Country) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("code = ?", country.Code).Delete(&models.Country{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete: %w", errs.ForCode(country.Code, translate(err)))
	}
	return nil
}

func nullable(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// translate maps driver level duplicate key errors onto errs.ErrAlreadyExists.
func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.ErrAlreadyExists
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return errs.ErrAlreadyExists
	}
	return err
}
