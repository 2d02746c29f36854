package params

import "github.com/KretovDmitry/ordrin-go/internal/domain/entities"

// SetCard holds a card saved under a nickname.
type SetCard struct {
	Address     *entities.Address
	Nick        string
	Name        string
	Number      string
	CVC         string
	ExpiryMonth string
	ExpiryYear  string
}
