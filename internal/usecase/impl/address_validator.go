package impl

import (
	"strings"

	"rollcall/internal/domain/entity"
)

// DefaultMinAddressLength rejects placeholder tokens shorter than any real push token.
const DefaultMinAddressLength = 10

// AddressValidator decides whether a recipient has a plausible device address.
type AddressValidator struct {
	minLength int
}

// NewAddressValidator falls back to DefaultMinAddressLength when minLength is not positive.
func NewAddressValidator(minLength int) *AddressValidator {
	if minLength <= 0 {
		minLength = DefaultMinAddressLength
	}

	return &AddressValidator{minLength: minLength}
}

// IsDeliverable reports whether recipient has an address worth sending to.
func (v *AddressValidator) IsDeliverable(recipient *entity.Recipient) bool {
	if recipient == nil {
		return false
	}

	address := strings.TrimSpace(recipient.DeviceAddress)

	return address != "" && len(address) >= v.minLength
}
