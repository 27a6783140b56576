package create_booking

import (
	"net/mail"

	"github.com/freshup-events/erlebnisbuchung/internal/domain"
)

// User-facing validation messages, identical to the booking form's
const (
	msgOfferingRequired  = "Bitte wählen Sie ein Erlebnis aus."
	msgDateRequired      = "Bitte wählen Sie ein Datum aus."
	msgTimeRequired      = "Bitte wählen Sie eine Uhrzeit aus."
	msgFirstNameTooShort = "Vorname muss mindestens 2 Zeichen lang sein."
	msgLastNameTooShort  = "Nachname muss mindestens 2 Zeichen lang sein."
	msgStreetTooShort    = "Strasse und Nr. muss ausgefüllt werden."
	msgInvalidPostalCode = "Bitte geben Sie eine gültige Postleitzahl ein."
	msgInvalidCity       = "Bitte geben Sie einen gültigen Ort ein."
	msgInvalidBirthDate  = "Bitte geben Sie ein gültiges Geburtsdatum ein (TT.MM.JJJJ)."
	msgInvalidEmail      = "Bitte geben Sie eine gültige E-Mail-Adresse ein."
)

// validateRequest checks every field and collects all violations
// instead of short-circuiting, so the form can display them together.
func validateRequest(req *Request) []FieldError {
	var fields []FieldError

	if _, ok := domain.FindOffering(req.OfferingID); !ok {
		fields = append(fields, FieldError{Field: "offering", Message: msgOfferingRequired})
	}

	if !req.Date.IsEventDate() {
		fields = append(fields, FieldError{Field: "date", Message: msgDateRequired})
	}

	if req.Time.IsZero() || req.Time.Validate() != nil {
		fields = append(fields, FieldError{Field: "time", Message: msgTimeRequired})
	}

	if len([]rune(req.FirstName)) < domain.MinNameLength {
		fields = append(fields, FieldError{Field: "firstName", Message: msgFirstNameTooShort})
	}

	if len([]rune(req.LastName)) < domain.MinNameLength {
		fields = append(fields, FieldError{Field: "lastName", Message: msgLastNameTooShort})
	}

	if len([]rune(req.Street)) < domain.MinStreetLength {
		fields = append(fields, FieldError{Field: "street", Message: msgStreetTooShort})
	}

	if len([]rune(req.PostalCode)) < domain.MinPostalCodeLength {
		fields = append(fields, FieldError{Field: "postalCode", Message: msgInvalidPostalCode})
	}

	if len([]rune(req.City)) < domain.MinCityLength {
		fields = append(fields, FieldError{Field: "city", Message: msgInvalidCity})
	}

	if len([]rune(req.BirthDate)) < domain.BirthDateLength {
		fields = append(fields, FieldError{Field: "birthDate", Message: msgInvalidBirthDate})
	}

	if !isValidEmail(req.Email) {
		fields = append(fields, FieldError{Field: "email", Message: msgInvalidEmail})
	}

	return fields
}

// isValidEmail accepts plain addresses only, no display names
func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
