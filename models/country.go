package models

import (
	"fmt"
	"strconv"

	"countrymgr/errs"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Country struct {
	Code              string   `json:"code" gorm:"primaryKey;type:varchar(3)" validate:"required,len=3,alpha,uppercase"`
	Name              string   `json:"name" gorm:"type:varchar(255);not null" validate:"required"`
	InternetUsers     *float64 `json:"internet_users" gorm:"null" validate:"omitempty,gte=0,lte=100"`
	AdultLiteracyRate *float64 `json:"adult_literacy_rate" gorm:"null" validate:"omitempty,gte=0,lte=100"`
}

// CountryOptions holds the optional fields of a Country. A nil pointer means unknown.
type CountryOptions struct {
	InternetUsers     *float64
	AdultLiteracyRate *float64
}

func (Country) TableName() string {
	return "countries"
}

func NewCountry(code, name string, opts CountryOptions) Country {
	return Country{
		Code:              code,
		Name:              name,
		InternetUsers:     opts.InternetUsers,
		AdultLiteracyRate: opts.AdultLiteracyRate,
	}
}

// Validate checks the struct tags and reports the first failing field.
func (c Country) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field := fe.StructField()
	switch fe.Tag() {
	case "required":
		return errs.NewValidationError(field, "is required")
	case "len", "alpha", "uppercase":
		return errs.NewValidationError(field, "must be exactly 3 uppercase letters")
	case "gte", "lte":
		return errs.NewValidationError(field, "must be a percentage between 0 and 100")
	}
	return errs.NewValidationError(field, fe.Error())
}

func (c Country) String() string {
	return fmt.Sprintf("Country{code='%s', name='%s', internetUsers=%s, adultLiteracyRate=%s}",
		c.Code, c.Name, formatNullable(c.InternetUsers), formatNullable(c.AdultLiteracyRate))
}

func formatNullable(v *float64) string {
	if v == nil {
		return "null"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Float returns a pointer to v, for filling the optional fields.
func Float(v float64) *float64 {
	return &v
}
