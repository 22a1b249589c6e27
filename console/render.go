package console

import (
	"fmt"
	"io"
	"strings"

	"countrymgr/models"
	"countrymgr/stats"
)

const rowFormat = "%-10s %-30s %-20s %-20s\n"

var rule = strings.Repeat("-", 82)

func renderTable(w io.Writer, countries []models.Country) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "                                 COUNTRY DATA")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, rowFormat, "CODE", "NAME", "INTERNET USERS (%)", "ADULT LITERACY RATE (%)")
	fmt.Fprintln(w, rule)

	if len(countries) == 0 {
		fmt.Fprintln(w, "No countries found.")
		return
	}

	for _, c := range countries {
		fmt.Fprintf(w, rowFormat,
			c.Code,
			c.Name,
			formatPercentage(c.InternetUsers),
			formatPercentage(c.AdultLiteracyRate),
		)
	}
}

func renderStatistics(w io.Writer, countries []models.Country) {
	fmt.Fprintln(w, "\n========= Statistics =========")

	for _, field := range stats.Fields {
		res := stats.Compute(countries, field)

		fmt.Fprintf(w, "\n%s:\n", field.Name)
		if res.HasData() {
			fmt.Fprintf(w, " Maximum: %s - %.2f%%\n", res.Max.Country.Name, res.Max.Value)
			fmt.Fprintf(w, " Minimum: %s - %.2f%%\n", res.Min.Country.Name, res.Min.Value)
		} else {
			fmt.Fprintln(w, " No data available.")
		}

		if res.HasData() {
			fmt.Fprintf(w, " Average: %.2f%%\n", *res.Average)
		} else {
			fmt.Fprintln(w, " Average: --")
		}
	}
}

// formatPercentage renders unknown values as "--".
func formatPercentage(v *float64) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%.2f", *v)
}
