// Package validation evaluates ordered field rules against a request payload.
package validation

import (
	"context"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Check reports whether a field value is acceptable. A non-nil error aborts
// the whole evaluation.
type Check func(ctx context.Context) (bool, error)

// Rule pairs a field predicate with the message reported when it fails.
type Rule struct {
	Field   string
	Message string
	Check   Check
}

// Run evaluates rules in order and returns the message of every failed rule.
// Once a field has failed, later rules for that field are skipped.
func Run(ctx context.Context, rules []Rule) ([]string, error) {
	var messages []string
	failed := make(map[string]bool)
	for _, rule := range rules {
		if failed[rule.Field] {
			continue
		}
		ok, err := rule.Check(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			failed[rule.Field] = true
			messages = append(messages, rule.Message)
		}
	}
	return messages, nil
}

// Required fails when value is empty.
func Required(field, value string) Rule {
	return Rule{
		Field:   field,
		Message: `Please provide a value for "` + field + `"`,
		Check:   tag(value, "required"),
	}
}

// Email fails when value is not a valid email address.
func Email(field, value string) Rule {
	return Rule{
		Field:   field,
		Message: `Please provide a valid email address for "` + field + `"`,
		Check:   tag(value, "email"),
	}
}

// Custom builds a rule from an arbitrary predicate, such as a store lookup.
func Custom(field, message string, check Check) Rule {
	return Rule{Field: field, Message: message, Check: check}
}

func tag(value, tag string) Check {
	return func(context.Context) (bool, error) {
		return validate.Var(value, tag) == nil, nil
	}
}
