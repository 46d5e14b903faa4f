package validation

import (
	"errors"
	"sort"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

// FromOzzo converts ozzo-validation errors into a PayloadValidationError so
// struct level and schema level failures share one shape. Internal ozzo
// errors and unrelated errors are returned unchanged.
func FromOzzo(err error) error {
	if err == nil {
		return nil
	}
	var internal ozzo.InternalError
	if errors.As(err, &internal) {
		return err
	}

	var fieldErrs ozzo.Errors
	if errors.As(err, &fieldErrs) {
		issues := []ValidationIssue{}
		collectOzzoIssues("", fieldErrs, &issues)
		return &PayloadValidationError{Issues: issues, Cause: err}
	}

	var single ozzo.Error
	if errors.As(err, &single) {
		return &PayloadValidationError{
			Issues: []ValidationIssue{{Message: single.Error()}},
			Cause:  err,
		}
	}
	return err
}

func collectOzzoIssues(prefix string, errs ozzo.Errors, issues *[]ValidationIssue) {
	keys := make([]string, 0, len(errs))
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		location := prefix + "/" + key
		var nested ozzo.Errors
		if errors.As(errs[key], &nested) {
			collectOzzoIssues(location, nested, issues)
			continue
		}
		*issues = append(*issues, ValidationIssue{
			Location: location,
			Message:  errs[key].Error(),
		})
	}
}
