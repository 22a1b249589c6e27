package console

import (
	"context"
	"errors"
	"io"
	"strings"

	"countrymgr/errs"
	"countrymgr/validation"
)

// readLine blocks for one line of input, whatever its length. A last line
// without a newline is still returned; after it, end of input is io.EOF.
func (c *Controller) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Controller) prompt(text string) (string, error) {
	c.printf("%s", text)
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptCode asks until the code is well formed. A code that exists (or is
// missing, with mustExist) ends the prompt with the matching errs sentinel.
func (c *Controller) promptCode(ctx context.Context, mustExist bool) (string, error) {
	for {
		input, err := c.prompt("Enter country code (3 letters, blank to cancel): ")
		if err != nil {
			return "", err
		}
		if input == "" {
			return "", errCancelled
		}

		code, err := validation.ValidateCountryCode(ctx, input, mustExist, c.store)
		if msg, ok := validationMessage(err); ok {
			c.printf("%s. Please try again.\n", capitalizeFirst(msg))
			continue
		}
		return code, err
	}
}

// promptName asks until a name is given. When current is set, blank input
// keeps it.
func (c *Controller) promptName(text, current string) (string, error) {
	for {
		input, err := c.prompt(text)
		if err != nil {
			return "", err
		}

		if input == "" {
			if current != "" {
				return current, nil
			}
			c.println("Country name cannot be empty. Please try again.")
			continue
		}
		return validation.CapitalizeWords(input), nil
	}
}

// promptPercentage asks until the input parses. While editing, blank keeps
// current and "-" clears the value; otherwise blank means unknown.
func (c *Controller) promptPercentage(text string, current *float64, editing bool) (*float64, error) {
	for {
		input, err := c.prompt(text)
		if err != nil {
			return nil, err
		}

		if editing {
			switch input {
			case "":
				return current, nil
			case "-":
				return nil, nil
			}
		}

		v, err := validation.ParseOptionalPercentage(input)
		if msg, ok := validationMessage(err); ok {
			c.printf("Invalid input: %s.\n", msg)
			continue
		}
		return v, err
	}
}

func validationMessage(err error) (string, bool) {
	if !errs.IsValidation(err) {
		return "", false
	}
	var verr *errs.ValidationError
	errors.As(err, &verr)
	return verr.Message, true
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
