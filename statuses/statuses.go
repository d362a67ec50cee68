// Package statuses holds the closed status and role vocabularies. Values are
// checked once at creation; no operation moves a record between them.
package statuses

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"multiservice-api/models"
)

// Vocabulary is the allowed value set for one field of one resource kind.
type Vocabulary struct {
	Tag     string   `json:"tag"`
	Applies []string `json:"applies_to"`
	Default string   `json:"default"`
	Values  []string `json:"values"`
}

// vocabularies is the authoritative definition
var vocabularies = []Vocabulary{
	{
		Tag:     "order_status",
		Applies: []string{"order.status"},
		Default: string(models.OrderPending),
		Values: []string{
			string(models.OrderPending),
			string(models.OrderConfirmed),
			string(models.OrderPreparing),
			string(models.OrderOutForDelivery),
			string(models.OrderDelivered),
			string(models.OrderCancelled),
		},
	},
	{
		Tag:     "booking_status",
		Applies: []string{"cab_booking.status", "handyman_booking.status"},
		Default: string(models.BookingPending),
		Values: []string{
			string(models.BookingPending),
			string(models.BookingConfirmed),
			string(models.BookingInProgress),
			string(models.BookingCompleted),
			string(models.BookingCancelled),
		},
	},
	{
		Tag:     "user_role",
		Applies: []string{"user.role"},
		Default: string(models.RoleCustomer),
		Values: []string{
			string(models.RoleCustomer),
			string(models.RoleDriver),
			string(models.RoleAdmin),
			string(models.RoleVendor),
		},
	},
}

// lookup gives O(1) membership checks per tag
var lookup = func() map[string]map[string]bool {
	m := make(map[string]map[string]bool, len(vocabularies))
	for _, v := range vocabularies {
		set := make(map[string]bool, len(v.Values))
		for _, s := range v.Values {
			set[s] = true
		}
		m[v.Tag] = set
	}
	return m
}()

// Check reports whether value belongs to the vocabulary named tag. The empty
// string is accepted because it is replaced by the default on creation.
func Check(tag, value string) error {
	set, ok := lookup[tag]
	if !ok {
		return fmt.Errorf("unknown vocabulary %q", tag)
	}
	if value == "" || set[value] {
		return nil
	}
	return fmt.Errorf("invalid value %q for %s. Allowed values are: %s", value, tag, describe(tag))
}

func describe(tag string) string {
	for _, v := range vocabularies {
		if v.Tag == tag {
			return strings.Join(v.Values, ", ")
		}
	}
	return "none"
}

// All returns every vocabulary for documentation.
func All() []Vocabulary {
	return vocabularies
}

// RegisterValidators installs one validator tag per vocabulary so binding
// tags such as `binding:"order_status"` work.
func RegisterValidators(v *validator.Validate) error {
	for _, voc := range vocabularies {
		tag := voc.Tag
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return Check(tag, fl.Field().String()) == nil
		})
		if err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}
