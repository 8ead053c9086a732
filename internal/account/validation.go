package account

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Loose on purpose: anything shaped like x@y.z passes.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const minPasswordLen = 6

// ValidationError maps a field name to its message. Every invalid field
// gets exactly one message.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

func validateRegistration(userName, email, password, confirm string) ValidationError {
	errs := ValidationError{}

	if userName == "" {
		errs["userName"] = "username is required"
	}
	if email == "" {
		errs["email"] = "email is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "enter a valid email"
	}
	if password == "" {
		errs["password"] = "password is required"
	} else if len(password) < minPasswordLen {
		errs["password"] = fmt.Sprintf("password must be at least %d characters", minPasswordLen)
	}
	if confirm == "" {
		errs["confirmPassword"] = "password confirmation is required"
	} else if password != confirm {
		errs["confirmPassword"] = "passwords do not match"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateLogin(email, password string) ValidationError {
	errs := ValidationError{}

	if email == "" {
		errs["email"] = "email is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "enter a valid email"
	}
	if password == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
