package entities

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/KretovDmitry/ordrin-go/internal/application/errs"
	"github.com/KretovDmitry/ordrin-go/pkg/luhn"
)

var (
	cardNumberRegexp = regexp.MustCompile(`^\d{13,19}$`)
	cvcRegexp        = regexp.MustCompile(`^\d{3,4}$`)
	yearRegexp       = regexp.MustCompile(`^\d{4}$`)
)

// CreditCard is a payment card with its billing address.
type CreditCard struct {
	Address     *Address `json:"address"`
	Name        string   `json:"name"`
	Number      string   `json:"number"`
	ExpiryMonth string   `json:"expiry_month"`
	ExpiryYear  string   `json:"expiry_year"`
	CVC         string   `json:"cvc"`
}

func NewCreditCard(name, number, expiryMonth, expiryYear, cvc string, addr *Address) *CreditCard {
	return &CreditCard{
		Address:     addr,
		Name:        name,
		Number:      number,
		ExpiryMonth: expiryMonth,
		ExpiryYear:  expiryYear,
		CVC:         cvc,
	}
}

// Expiration returns the expiry in MM/YYYY form. A month that is not
// a number is returned as is.
func (c *CreditCard) Expiration() string {
	month, err := strconv.Atoi(c.ExpiryMonth)
	if err != nil {
		return c.ExpiryMonth + "/" + c.ExpiryYear
	}
	return fmt.Sprintf("%02d/%s", month, c.ExpiryYear)
}

// Validate checks card fields and then the billing address.
func (c *CreditCard) Validate() error {
	const subject = "Credit Card"

	var messages []string

	if c.Name == "" {
		messages = append(messages, validationMessage(subject, "Name", "required", c.Name))
	}
	if !cardNumberRegexp.MatchString(c.Number) || luhn.Validate(c.Number) != nil {
		messages = append(messages, validationMessage(subject, "Number", "invalid", c.Number))
	}
	if month, err := strconv.Atoi(c.ExpiryMonth); err != nil || month < 1 || month > 12 {
		messages = append(messages, validationMessage(subject, "Expiry Month", "invalid, must be 1-12", c.ExpiryMonth))
	}
	if !yearRegexp.MatchString(c.ExpiryYear) {
		messages = append(messages, validationMessage(subject, "Expiry Year", "invalid, must be four digits", c.ExpiryYear))
	}
	if !cvcRegexp.MatchString(c.CVC) {
		messages = append(messages, validationMessage(subject, "CVC", "invalid", c.CVC))
	}

	if c.Address == nil {
		messages = append(messages, validationMessage(subject, "Billing Address", "required", ""))
	} else {
		messages = append(messages, errs.Messages(c.Address.Validate())...)
	}

	return errs.NewValidationError(messages)
}
