// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/staranto/eulergo/internal/output"
	"github.com/staranto/eulergo/internal/scaffold"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func PositiveValidator(value any) error {
	if value.(int) < 1 {
		return errors.New("must be at least 1")
	}
	return nil
}

func OutputValidator(value any) error {
	valid := false
	for _, v := range output.Formats {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

// ProblemNumberValidator accepts a string holding a problem number the file
// naming can represent.
func ProblemNumberValidator(value any) error {
	n, err := strconv.Atoi(value.(string))
	if err != nil {
		return fmt.Errorf("problem number %q is not an integer", value)
	}
	if n < 1 || n > scaffold.MaxProblem {
		return fmt.Errorf("problem number must be between 1 and %d, got %d", scaffold.MaxProblem, n)
	}
	return nil
}
