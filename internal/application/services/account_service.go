package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KretovDmitry/ordrin-go/internal/application/errs"
	"github.com/KretovDmitry/ordrin-go/internal/application/interfaces"
	"github.com/KretovDmitry/ordrin-go/internal/application/params"
	"github.com/KretovDmitry/ordrin-go/internal/domain/entities"
	"github.com/KretovDmitry/ordrin-go/internal/domain/entities/session"
	"github.com/KretovDmitry/ordrin-go/pkg/logger"
)

// AccountService manages the account of the session identity.
type AccountService struct {
	transport interfaces.Transport
	session   *session.Session
	logger    logger.Logger
}

func NewAccountService(
	transport interfaces.Transport,
	session *session.Session,
	logger logger.Logger,
) (*AccountService, error) {
	if transport == nil {
		return nil, errors.New("nil dependency: transport")
	}
	if session == nil {
		return nil, errors.New("nil dependency: session")
	}
	if logger == nil {
		return nil, errors.New("nil dependency: logger")
	}
	return &AccountService{
		transport: transport,
		session:   session,
		logger:    logger,
	}, nil
}

var _ interfaces.AccountService = (*AccountService)(nil)

// Create registers a new account (POST u/{email}). No session is required.
func (s *AccountService) Create(ctx context.Context, email, password, firstName, lastName string) (json.RawMessage, error) {
	return s.transport.Call(ctx, http.MethodPost, []string{"u", email}, map[string]string{
		"password":   password,
		"first_name": firstName,
		"last_name":  lastName,
	}, false)
}

// Get account information (GET u/{email}).
func (s *AccountService) GetAccountInfo(ctx context.Context) (json.RawMessage, error) {
	id, err := s.identity()
	if err != nil {
		return nil, err
	}
	return s.transport.Call(ctx, http.MethodGet, []string{"u", id.Email}, map[string]string{
		"password": id.Password,
	}, true)
}

// Get one saved address, or all of them when nick is empty.
func (s *AccountService) GetAddress(ctx context.Context, nick string) (json.RawMessage, error) {
	return s.call(ctx, http.MethodGet, nil, collection("addrs", nick)...)
}

// Save addr under nick (PUT u/{email}/addrs/{nick}). The address is
// validated first.
func (s *AccountService) SetAddress(ctx context.Context, nick string, addr *entities.Address) (json.RawMessage, error) {
	if addr == nil {
		return nil, errs.NewValidationError([]string{"Address - Validation - Address (required) ()"})
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return s.call(ctx, http.MethodPut, map[string]string{
		"addr":  addr.Street,
		"addr2": addr.Street2,
		"city":  addr.City,
		"state": addr.State,
		"zip":   addr.Zip,
		"phone": addr.Phone,
	}, "addrs", nick)
}

// Delete a saved address (DELETE u/{email}/addrs/{nick}).
func (s *AccountService) DeleteAddress(ctx context.Context, nick string) (json.RawMessage, error) {
	return s.call(ctx, http.MethodDelete, nil, "addrs", nick)
}

// Get one saved card, or all of them when nick is empty.
func (s *AccountService) GetCard(ctx context.Context, nick string) (json.RawMessage, error) {
	return s.call(ctx, http.MethodGet, nil, collection("ccs", nick)...)
}

// Save a card under nick (PUT u/{email}/ccs/{nick}).
// The billing address is sent as is, without validation.
func (s *AccountService) SetCard(ctx context.Context, p *params.SetCard) (json.RawMessage, error) {
	if p == nil {
		return nil, errs.NewValidationError([]string{"Credit Card - Validation - Card (required) ()"})
	}

	addr := p.Address
	if addr == nil {
		addr = &entities.Address{}
	}

	return s.call(ctx, http.MethodPut, map[string]string{
		"name":         p.Name,
		"number":       p.Number,
		"cvc":          p.CVC,
		"expiry_month": p.ExpiryMonth,
		"expiry_year":  p.ExpiryYear,
		"bill_addr":    addr.Street,
		"bill_addr2":   addr.Street2,
		"bill_city":    addr.City,
		"bill_state":   addr.State,
		"bill_zip":     addr.Zip,
	}, "ccs", p.Nick)
}

// Delete a saved card (DELETE u/{email}/ccs/{nick}).
func (s *AccountService) DeleteCard(ctx context.Context, nick string) (json.RawMessage, error) {
	return s.call(ctx, http.MethodDelete, nil, "ccs", nick)
}

// Get one past order, or the whole history when orderID is blank.
func (s *AccountService) GetOrderHistory(ctx context.Context, orderID string) (json.RawMessage, error) {
	if !blank(orderID) {
		return s.call(ctx, http.MethodGet, nil, "order", orderID)
	}
	return s.call(ctx, http.MethodGet, nil, "orders")
}

// Change the account password (PUT u/{email}/password). On success the
// session keeps authenticating with the new password.
func (s *AccountService) UpdatePassword(ctx context.Context, password string) (json.RawMessage, error) {
	res, err := s.call(ctx, http.MethodPut, map[string]string{"password": password}, "password")
	if err != nil {
		return nil, err
	}
	s.session.SetPassword(password)
	return res, nil
}

// call sends an authenticated request to u/{email}/{segments...}.
func (s *AccountService) call(
	ctx context.Context,
	method string,
	params map[string]string,
	segments ...string,
) (json.RawMessage, error) {
	id, err := s.identity()
	if err != nil {
		return nil, err
	}
	path := append([]string{"u", id.Email}, segments...)
	return s.transport.Call(ctx, method, path, params, true)
}

func (s *AccountService) identity() (session.Identity, error) {
	id := s.session.Identity()
	if id.IsZero() {
		return id, errs.ErrNoSession
	}
	return id, nil
}

// collection selects the single resource path when nick is set
// and the listing path otherwise.
func collection(name, nick string) []string {
	if blank(nick) {
		return []string{name}
	}
	return []string{name, nick}
}

// blank reports whether a nickname or id selects nothing.
// The API treats "0" the same as an empty value.
func blank(s string) bool {
	return s == "" || s == "0"
}
