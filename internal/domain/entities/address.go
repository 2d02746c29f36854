package entities

import (
	"regexp"

	"github.com/KretovDmitry/ordrin-go/internal/application/errs"
)

var (
	stateRegexp = regexp.MustCompile(`^[A-Za-z]{2}$`)
	zipRegexp   = regexp.MustCompile(`^\d{5}$`)
	phoneRegexp = regexp.MustCompile(`^\(?\d{3}\)?[- .]?\d{3}[- .]?\d{4}$`)
)

// Address is a delivery or billing address.
type Address struct {
	Street  string `json:"addr"`
	Street2 string `json:"addr2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone"`
}

func NewAddress(street, street2, city, state, zip, phone string) *Address {
	return &Address{
		Street:  street,
		Street2: street2,
		City:    city,
		State:   state,
		Zip:     zip,
		Phone:   phone,
	}
}

// Validate reports every invalid field at once.
func (a *Address) Validate() error {
	const subject = "Address"

	var messages []string

	if a.Street == "" {
		messages = append(messages, validationMessage(subject, "Street", "required", a.Street))
	}
	if a.City == "" {
		messages = append(messages, validationMessage(subject, "City", "required", a.City))
	}
	if !stateRegexp.MatchString(a.State) {
		messages = append(messages, validationMessage(subject, "State", "invalid, must be two letters", a.State))
	}
	if !zipRegexp.MatchString(a.Zip) {
		messages = append(messages, validationMessage(subject, "Zip", "invalid, must be five digits", a.Zip))
	}
	if !phoneRegexp.MatchString(a.Phone) {
		messages = append(messages, validationMessage(subject, "Phone", "invalid", a.Phone))
	}

	return errs.NewValidationError(messages)
}
