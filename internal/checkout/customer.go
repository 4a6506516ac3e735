package checkout

import (
	"fmt"
	"strings"
)

// Address is the customer's shipping address. Every field is required.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Customer is the checkout form data. All fields are required non-empty
// strings before an order may be submitted; email/phone format checks are a
// UI concern, not enforced here.
type Customer struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

// Validate reports the first missing required field.
func (c Customer) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", c.Name},
		{"email", c.Email},
		{"phone", c.Phone},
		{"address.street", c.Address.Street},
		{"address.city", c.Address.City},
		{"address.state", c.Address.State},
		{"address.zipCode", c.Address.ZipCode},
		{"address.country", c.Address.Country},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
	}
	return nil
}

// FormattedAddress renders the shipping address as a single line, the shape
// the order emails use.
func (c Customer) FormattedAddress() string {
	a := c.Address
	return fmt.Sprintf("%s, %s, %s %s, %s", a.Street, a.City, a.State, a.ZipCode, a.Country)
}
