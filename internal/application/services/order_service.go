package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/KretovDmitry/ordrin-go/internal/application/errs"
	"github.com/KretovDmitry/ordrin-go/internal/application/interfaces"
	"github.com/KretovDmitry/ordrin-go/internal/application/params"
	"github.com/KretovDmitry/ordrin-go/internal/domain/entities"
	"github.com/KretovDmitry/ordrin-go/pkg/logger"
)

var (
	restaurantIDRegexp = regexp.MustCompile(`^\d+$`)
	emailRegexp        = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,4}$`)
	tipRegexp          = regexp.MustCompile(`^\$?\d*(\.\d{2})?$`)
)

type OrderService struct {
	transport interfaces.Transport
	logger    logger.Logger
}

func NewOrderService(transport interfaces.Transport, logger logger.Logger) (*OrderService, error) {
	if transport == nil {
		return nil, errors.New("nil dependency: transport")
	}
	if logger == nil {
		return nil, errors.New("nil dependency: logger")
	}
	return &OrderService{
		transport: transport,
		logger:    logger,
	}, nil
}

var _ interfaces.OrderService = (*OrderService)(nil)

// Submit validates the order and posts it to o/{restaurantID}.
// Every check runs; if any fails, a single *errs.ValidationError with all
// messages is returned and nothing is sent.
func (s *OrderService) Submit(ctx context.Context, p *params.SubmitOrder) (json.RawMessage, error) {
	if p == nil {
		return nil, errs.NewValidationError([]string{"Order Submit - Validation - Order (required) ()"})
	}

	delivery, messages := validateOrder(p)
	if err := errs.NewValidationError(messages); err != nil {
		s.logger.With(ctx, "restaurant_id", p.RestaurantID).
			Debugf("order rejected with %d validation errors", len(messages))
		return nil, err
	}

	form := map[string]string{
		"restaurant_id":   p.RestaurantID,
		"tray":            p.Tray.String(),
		"tip":             p.Tip,
		"delivery_date":   delivery.Date,
		"delivery_time":   delivery.Time,
		"first_name":      p.FirstName,
		"last_name":       p.LastName,
		"addr":            p.Address.Street,
		"city":            p.Address.City,
		"state":           p.Address.State,
		"zip":             p.Address.Zip,
		"phone":           p.Address.Phone,
		"card_name":       p.CreditCard.Name,
		"card_number":     p.CreditCard.Number,
		"card_expiry":     p.CreditCard.Expiration(),
		"card_cvc":        p.CreditCard.CVC,
		"card_bill_addr":  p.CreditCard.Address.Street,
		"card_bill_addr2": p.CreditCard.Address.Street2,
		"card_bill_city":  p.CreditCard.Address.City,
		"card_bill_state": p.CreditCard.Address.State,
		"card_bill_zip":   p.CreditCard.Address.Zip,
		"type":            entities.OrderType,
	}

	if !p.UseSessionAuth {
		form["em"] = p.Email
		if p.Password != "" {
			form["pw"] = p.Password
		}
	}

	return s.transport.Call(ctx, http.MethodPost, []string{"o", p.RestaurantID}, form, p.UseSessionAuth)
}

// validateOrder runs the checks in a fixed order: restaurant id, email,
// tip, delivery time, tray, address, card.
func validateOrder(p *params.SubmitOrder) (entities.Delivery, []string) {
	var messages []string

	if !restaurantIDRegexp.MatchString(p.RestaurantID) {
		messages = append(messages, submitMessage("Restaurant ID", "invalid, must be integer", p.RestaurantID))
	}
	if !emailRegexp.MatchString(p.Email) {
		messages = append(messages, submitMessage("Email", "invalid", p.Email))
	}
	if p.Tip == "" || !tipRegexp.MatchString(p.Tip) {
		messages = append(messages, submitMessage("Tip", "invalid", p.Tip))
	}

	delivery, err := entities.NewDelivery(p.DeliveryDateTime)
	if err != nil {
		messages = append(messages, submitMessage("Delivery Date/Time", "invalid", p.DeliveryDateTime))
	}

	if p.Tray == nil {
		messages = append(messages, submitMessage("Tray", "required", ""))
	} else {
		messages = append(messages, errs.Messages(p.Tray.Validate())...)
	}
	if p.Address == nil {
		messages = append(messages, submitMessage("Address", "required", ""))
	} else {
		messages = append(messages, errs.Messages(p.Address.Validate())...)
	}
	if p.CreditCard == nil {
		messages = append(messages, submitMessage("Credit Card", "required", ""))
	} else {
		messages = append(messages, errs.Messages(p.CreditCard.Validate())...)
	}

	return delivery, messages
}

func submitMessage(field, reason, value string) string {
	return fmt.Sprintf("Order Submit - Validation - %s (%s) (%s)", field, reason, value)
}
