// Package stats computes minimum, maximum and average over a nullable
// numeric field of a country set.
package stats

import "countrymgr/models"

// Field names a nullable numeric column and how to read it.
type Field struct {
	Name  string
	Value func(models.Country) *float64
}

var (
	InternetUsers = Field{
		Name:  "Internet Users (%)",
		Value: func(c models.Country) *float64 { return c.InternetUsers },
	}
	AdultLiteracyRate = Field{
		Name:  "Adult Literacy Rate (%)",
		Value: func(c models.Country) *float64 { return c.AdultLiteracyRate },
	}
)

// Fields lists the fields reported on the statistics screen.
var Fields = []Field{InternetUsers, AdultLiteracyRate}

type Extreme struct {
	Country models.Country
	Value   float64
}

// Result is empty (all nil, Count 0) when no record has a value for the field.
type Result struct {
	Max     *Extreme
	Min     *Extreme
	Average *float64
	Count   int
}

func (r Result) HasData() bool {
	return r.Count > 0
}

// Compute skips records where the field is nil. On ties the first record
// seen wins.
func Compute(records []models.Country, field Field) Result {
	var (
		res Result
		sum float64
	)

	for _, c := range records {
		v := field.Value(c)
		if v == nil {
			continue
		}

		res.Count++
		sum += *v

		if res.Max == nil || *v > res.Max.Value {
			res.Max = &Extreme{Country: c, Value: *v}
		}
		if res.Min == nil || *v < res.Min.Value {
			res.Min = &Extreme{Country: c, Value: *v}
		}
	}

	if res.Count > 0 {
		avg := sum / float64(res.Count)
		res.Average = &avg
	}
	return res
}
