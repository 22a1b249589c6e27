// Package console runs the interactive text menu on top of the country
// repository and the statistics engine.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"countrymgr/errs"
	"countrymgr/models"
	"countrymgr/types"

	"github.com/rs/zerolog"
)

// Store is the repository surface the controller needs.
type Store interface {
	Create(ctx context.Context, country models.Country) error
	FindByCode(ctx context.Context, code string) (models.Country, bool, error)
	FindAll(ctx context.Context) ([]models.Country, error)
	Update(ctx context.Context, country models.Country) error
	Delete(ctx context.Context, country models.Country) error
}

// errCancelled is returned by a prompt when the user leaves it blank to go
// back to the menu.
var errCancelled = errors.New("operation cancelled")

type Controller struct {
	store Store
	in    *bufio.Reader
	out   io.Writer
	log   zerolog.Logger
}

func New(store Store, in io.Reader, out io.Writer, log zerolog.Logger) *Controller {
	return &Controller{
		store: store,
		in:    bufio.NewReader(in),
		out:   out,
		log:   log.With().Str("component", "console").Logger(),
	}
}

// Run shows the menu until the user exits or input ends. Only store
// failures are returned; user mistakes are reported and the loop continues.
func (c *Controller) Run(ctx context.Context) error {
	for {
		c.displayMenu()

		line, err := c.readLine()
		if errors.Is(err, io.EOF) {
			c.println()
			return nil
		}
		if err != nil {
			return err
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.println("Invalid input. Please enter a number.")
			continue
		}

		choice := types.MenuChoice(n)
		if !choice.Valid() {
			c.println("Invalid choice. Please try again.")
			continue
		}
		if choice == types.MenuExit {
			c.println("Goodbye!")
			return nil
		}

		if err := c.dispatch(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				c.println()
				return nil
			}
			return err
		}
	}
}

func (c *Controller) dispatch(ctx context.Context, choice types.MenuChoice) error {
	c.log.Debug().Int("choice", int(choice)).Msg("dispatch")

	var err error
	switch choice {
	case types.MenuViewAll:
		err = c.listCountries(ctx)
	case types.MenuStatistics:
		err = c.showStatistics(ctx)
	case types.MenuCreate:
		err = c.createCountry(ctx)
	case types.MenuEdit:
		err = c.editCountry(ctx)
	case types.MenuDelete:
		err = c.deleteCountry(ctx)
	}

	return c.report(err)
}

// report prints recoverable errors and passes fatal ones through.
func (c *Controller) report(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errCancelled):
		c.println("Operation cancelled.")
		return nil
	case errors.Is(err, errs.ErrNotFound):
		c.printf("Country with code %s not found.\n", errs.CodeOf(err))
		c.log.Debug().Err(err).Msg("country not found")
		return nil
	case errors.Is(err, errs.ErrAlreadyExists):
		c.printf("Country with code %s already exists.\n", errs.CodeOf(err))
		c.log.Debug().Err(err).Msg("duplicate country code")
		return nil
	case errors.Is(err, io.EOF):
		return err
	}

	c.log.Error().Err(err).Msg("store operation failed")
	return fmt.Errorf("console: %w", err)
}

func (c *Controller) listCountries(ctx context.Context) error {
	countries, err := c.store.FindAll(ctx)
	if err != nil {
		return err
	}
	renderTable(c.out, countries)
	return nil
}

func (c *Controller) showStatistics(ctx context.Context) error {
	countries, err := c.store.FindAll(ctx)
	if err != nil {
		return err
	}
	renderStatistics(c.out, countries)
	return nil
}

func (c *Controller) createCountry(ctx context.Context) error {
	code, err := c.promptCode(ctx, false)
	if err != nil {
		return err
	}

	name, err := c.promptName("Enter country name: ", "")
	if err != nil {
		return err
	}

	internetUsers, err := c.promptPercentage("Enter percentage of internet users (or leave blank if unknown): ", nil, false)
	if err != nil {
		return err
	}
	adultLiteracyRate, err := c.promptPercentage("Enter percentage of adult literacy rate (or leave blank if unknown): ", nil, false)
	if err != nil {
		return err
	}

	country := models.NewCountry(code, name, models.CountryOptions{
		InternetUsers:     internetUsers,
		AdultLiteracyRate: adultLiteracyRate,
	})
	if err := country.Validate(); err != nil {
		c.printf("Invalid country: %v\n", err)
		return nil
	}

	if err := c.store.Create(ctx, country); err != nil {
		return err
	}
	c.log.Info().Str("code", code).Msg("country created")
	c.println("Country created successfully!")
	return nil
}

func (c *Controller) editCountry(ctx context.Context) error {
	code, err := c.promptCode(ctx, true)
	if err != nil {
		return err
	}

	country, found, err := c.store.FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if !found {
		return errs.ForCode(code, errs.ErrNotFound)
	}

	c.println("Current data:")
	renderTable(c.out, []models.Country{country})

	name, err := c.promptName(fmt.Sprintf("Enter new country name (Current: %s, blank to keep): ", country.Name), country.Name)
	if err != nil {
		return err
	}

	internetUsers, err := c.promptPercentage(
		fmt.Sprintf("Enter new percentage of internet users (Current: %s, blank to keep, - to clear): ", formatPercentage(country.InternetUsers)),
		country.InternetUsers, true)
	if err != nil {
		return err
	}
	adultLiteracyRate, err := c.promptPercentage(
		fmt.Sprintf("Enter new adult literacy rate (Current: %s, blank to keep, - to clear): ", formatPercentage(country.AdultLiteracyRate)),
		country.AdultLiteracyRate, true)
	if err != nil {
		return err
	}

	country.Name = name
	country.InternetUsers = internetUsers
	country.AdultLiteracyRate = adultLiteracyRate
	if err := country.Validate(); err != nil {
		c.printf("Invalid country: %v\n", err)
		return nil
	}

	if err := c.store.Update(ctx, country); err != nil {
		return err
	}
	c.log.Info().Str("code", code).Msg("country updated")
	c.println("Country updated successfully!")
	return nil
}

func (c *Controller) deleteCountry(ctx context.Context) error {
	code, err := c.promptCode(ctx, true)
	if err != nil {
		return err
	}

	// re-fetch before delete
	country, found, err := c.store.FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if !found {
		return errs.ForCode(code, errs.ErrNotFound)
	}

	if err := c.store.Delete(ctx, country); err != nil {
		return err
	}
	c.log.Info().Str("code", code).Msg("country deleted")
	c.println("Country deleted.")
	return nil
}

func (c *Controller) displayMenu() {
	c.println()
	c.println()
	c.println("Menu:")
	for _, choice := range types.MenuChoices {
		c.printf("%d. %s\n", choice, choice.Label())
	}
	c.printf("\nEnter your choice: ")
}

func (c *Controller) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Controller) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
