package validators

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// PetTypes accepted by the shop.
var PetTypes = []string{
	"Cane",
	"Gatto",
	"Coniglio",
	"Uccello",
	"Criceto",
	"Pesce",
	"Tartaruga",
	"Furetto",
	"Altro",
}

var hhmm = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func IsBookingTime(s string) bool {
	return hhmm.MatchString(s)
}

func IsPetType(s string) bool {
	for _, p := range PetTypes {
		if p == s {
			return true
		}
	}
	return false
}

// Register installs the custom tags on gin's validator so `binding` struct
// tags can use them.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validators: unexpected binding engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("booking_time", func(fl validator.FieldLevel) bool {
		return IsBookingTime(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("pet_type", func(fl validator.FieldLevel) bool {
		return IsPetType(fl.Field().String())
	})
}
