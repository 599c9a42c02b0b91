// Package customers implements the record store: customer records with
// duplicate-name enforcement, CRUD, free-text search, multi-key sorting,
// and destructive batch import.
package customers

import (
	"strings"
	"time"
)

// CustomerType classifies a customer record.
type CustomerType string

const (
	TypeRegular CustomerType = "regular"
	TypeVIP     CustomerType = "vip"
)

// ParseCustomerType maps arbitrary input to a known type. Unknown values
// coerce to regular.
func ParseCustomerType(s string) CustomerType {
	if strings.ToLower(strings.TrimSpace(s)) == string(TypeVIP) {
		return TypeVIP
	}
	return TypeRegular
}

// Label returns the display name of the type, also used by free-text search.
func (t CustomerType) Label() string {
	if t == TypeVIP {
		return "VIP"
	}
	return "Regular"
}

// Customer is one stored record. Field formats are validated at the edge
// before a record reaches this package; the store enforces only name
// uniqueness.
type Customer struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Address      string       `json:"address"`
	CustomerType CustomerType `json:"customer_type"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    *time.Time   `json:"updated_at,omitempty"`
}
