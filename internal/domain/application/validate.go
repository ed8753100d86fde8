package application

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength        = 100
	minDescriptionLength = 10
	maxDescriptionLength = 1000
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate applies the intake acceptance rules. The intake form mirrors the
// same checks for responsiveness; this result is the authoritative one.
// A nil map means the input is acceptable.
func (in CreateInput) Validate() map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "name is required"
	} else if utf8.RuneCountInString(in.Name) > maxNameLength {
		fields["name"] = "name must be at most 100 characters"
	}
	if strings.TrimSpace(in.Email) == "" {
		fields["email"] = "email is required"
	} else if !emailPattern.MatchString(in.Email) {
		fields["email"] = "invalid email address"
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		fields["company_name"] = "company_name is required"
	} else if utf8.RuneCountInString(in.CompanyName) > maxNameLength {
		fields["company_name"] = "company_name must be at most 100 characters"
	}
	validateLongText(fields, "project_description", in.ProjectDescription)
	validateLongText(fields, "desired_features", in.DesiredFeatures)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func validateLongText(fields map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		fields[field] = field + " is required"
		return
	}
	switch length := utf8.RuneCountInString(value); {
	case length < minDescriptionLength:
		fields[field] = field + " must be at least 10 characters"
	case length > maxDescriptionLength:
		fields[field] = field + " must be at most 1000 characters"
	}
}
