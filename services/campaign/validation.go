package campaign

import "pawhaven/models"

// ValidateCreate checks a new campaign and returns all field errors at once.
func ValidateCreate(c *models.Campaign) []FieldError {
	var errs []FieldError
	if c.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "must not be empty"})
	}
	if c.ShortDescription == "" {
		errs = append(errs, FieldError{Field: "shortDescription", Message: "must not be empty"})
	}
	if c.LongDescription == "" {
		errs = append(errs, FieldError{Field: "longDescription", Message: "must not be empty"})
	}
	if c.GoalAmount <= 0 {
		errs = append(errs, FieldError{Field: "goalAmount", Message: "must be greater than zero"})
	}
	if c.UserEmail == "" {
		errs = append(errs, FieldError{Field: "userEmail", Message: "must not be empty"})
	}
	return errs
}

// editableFields are the campaign fields a PATCH may set. goalAmount is
// included: a full edit is the one place the goal may change.
var editableFields = map[string]bool{
	"title":            true,
	"shortDescription": true,
	"longDescription":  true,
	"goalAmount":       true,
	"lastDate":         true,
}

// ValidateUpdates checks a patch document and returns all field errors at once.
func ValidateUpdates(updates map[string]interface{}) []FieldError {
	var errs []FieldError
	if len(updates) == 0 {
		errs = append(errs, FieldError{Field: "body", Message: "no editable fields provided"})
		return errs
	}
	for field, value := range updates {
		if !editableFields[field] {
			errs = append(errs, FieldError{Field: field, Message: "is not editable"})
			continue
		}
		switch field {
		case "goalAmount":
			amount, ok := value.(float64)
			if !ok || amount <= 0 {
				errs = append(errs, FieldError{Field: field, Message: "must be a number greater than zero"})
			}
		default:
			s, ok := value.(string)
			if !ok || s == "" {
				errs = append(errs, FieldError{Field: field, Message: "must be a non-empty string"})
			}
		}
	}
	return errs
}

// ValidateDonation checks a donation request before any gateway call.
func ValidateDonation(input DonateInput) []FieldError {
	var errs []FieldError
	if input.Amount <= 0 {
		errs = append(errs, FieldError{Field: "amount", Message: "must be greater than zero"})
	}
	if input.PaymentMethod == "" {
		errs = append(errs, FieldError{Field: "paymentMethod", Message: "must not be empty"})
	}
	if input.DonorEmail == "" {
		errs = append(errs, FieldError{Field: "donorEmail", Message: "must not be empty"})
	}
	return errs
}
