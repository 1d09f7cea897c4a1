package service

import (
	"context"
	"errors"
	"fmt"

	"courseapi/internal/repository"
	"courseapi/internal/validation"
)

func userRules(users repository.UserRepository, in CreateUserInput) []validation.Rule {
	return []validation.Rule{
		validation.Required("firstName", in.FirstName),
		validation.Required("lastName", in.LastName),
		validation.Required("emailAddress", in.EmailAddress),
		validation.Email("emailAddress", in.EmailAddress),
		validation.Custom(
			"emailAddress",
			fmt.Sprintf("The email address %q is already in use", in.EmailAddress),
			emailAvailable(users, in.EmailAddress),
		),
		validation.Required("password", in.Password),
	}
}

func emailAvailable(users repository.UserRepository, email string) validation.Check {
	return func(ctx context.Context) (bool, error) {
		_, err := users.FindUserByEmail(ctx, email)
		if errors.Is(err, repository.ErrNotFound) {
			return true, nil
		}
		if err != nil {
			return false, fmt.Errorf("check email: %w", err)
		}
		return false, nil
	}
}

func courseRules(in CourseInput) []validation.Rule {
	return []validation.Rule{
		validation.Required("title", in.Title),
		validation.Required("description", in.Description),
	}
}

// coursePatchRules only checks the fields present in the patch.
func coursePatchRules(in CoursePatch) []validation.Rule {
	var rules []validation.Rule
	if in.Title != nil {
		rules = append(rules, validation.Required("title", *in.Title))
	}
	if in.Description != nil {
		rules = append(rules, validation.Required("description", *in.Description))
	}
	return rules
}
