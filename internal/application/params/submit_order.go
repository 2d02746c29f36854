package params

import "github.com/KretovDmitry/ordrin-go/internal/domain/entities"

// SubmitOrder holds everything needed to place one order.
type SubmitOrder struct {
	Tray       *entities.Tray       `json:"tray"`
	Address    *entities.Address    `json:"address"`
	CreditCard *entities.CreditCard `json:"credit_card"`
	// Decimal string, optionally prefixed with "$".
	Tip string `json:"tip"`
	// Either "ASAP" (any case) or a date and time.
	DeliveryDateTime string `json:"delivery_date_time"`
	RestaurantID     string `json:"restaurant_id"`
	Email            string `json:"email"`
	// Optional. Ignored with session auth.
	Password  string `json:"password,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// Authenticate with the session identity instead of Email/Password.
	UseSessionAuth bool `json:"use_session_auth"`
}
