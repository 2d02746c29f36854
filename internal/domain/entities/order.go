package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ASAP requests delivery as soon as possible.
const ASAP = "ASAP"

// Wire formats of the order endpoint.
const (
	DeliveryDateLayout = "01-02"
	DeliveryTimeLayout = "15:04"
)

// OrderType is the only order type the order endpoint accepts.
const OrderType = "res"

var ErrInvalidDeliveryTime = errors.New("invalid delivery date/time")

// Accepted input layouts for a scheduled delivery.
var deliveryLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"01-02 15:04",
}

// Delivery holds the requested delivery date and time as sent to the API.
type Delivery struct {
	Date string
	Time string
}

// NewDelivery splits value into date and time components.
// Any casing of "asap" yields Date "ASAP" and an empty Time.
func NewDelivery(value string) (Delivery, error) {
	value = strings.TrimSpace(value)

	if strings.EqualFold(value, ASAP) {
		return Delivery{Date: ASAP}, nil
	}

	for _, layout := range deliveryLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return DeliveryAt(t), nil
	}

	return Delivery{}, ErrInvalidDeliveryTime
}

// DeliveryAt formats t as a scheduled delivery.
func DeliveryAt(t time.Time) Delivery {
	return Delivery{
		Date: t.Format(DeliveryDateLayout),
		Time: t.Format(DeliveryTimeLayout),
	}
}

// FormatTip renders amount with exactly two decimal places.
func FormatTip(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
