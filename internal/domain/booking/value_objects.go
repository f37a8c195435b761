package booking

import (
	"crypto/rand"
	"io"
	"math/big"
	"regexp"
	"strings"

	"cargo-consolidation/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	MaxQuantity          = 1000
	MaxPickupAddressLen  = 500
	MaxCustomerNameLen   = 100
	ReferenceCodeLength  = 10
	referenceCodeMinLen  = 8
	referenceCodeMaxLen  = 12
	referenceCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	whatsAppRegex = regexp.MustCompile(`^\+[1-9][0-9]{6,14}$`)
	maxWeightKg   = decimal.RequireFromString("9999.99")
	minWeightKg   = decimal.RequireFromString("0.01")
)

type Quantity struct {
	value int
}

func NewQuantity(v int) (Quantity, error) {
	if v < 1 {
		return Quantity{}, errs.Field("quantity", ErrInvalidQuantity)
	}
	if v > MaxQuantity {
		return Quantity{}, errs.Field("quantity", ErrQuantityTooLarge)
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Value() int { return q.value }

type ReferenceCode struct {
	value string
}

// GenerateReferenceCode draws ReferenceCodeLength characters uniformly from A-Z0-9.
func GenerateReferenceCode(r io.Reader) (ReferenceCode, error) {
	if r == nil {
		r = rand.Reader
	}
	max := big.NewInt(int64(len(referenceCodeCharset)))
	buf := make([]byte, ReferenceCodeLength)
	for i := range buf {
		n, err := rand.Int(r, max)
		if err != nil {
			return ReferenceCode{}, errs.Wrap(err, "failed to read random source")
		}
		buf[i] = referenceCodeCharset[n.Int64()]
	}
	return ReferenceCode{value: string(buf)}, nil
}

// ParseReferenceCode accepts lower case input; codes are stored upper case.
func ParseReferenceCode(s string) (ReferenceCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < referenceCodeMinLen || len(s) > referenceCodeMaxLen {
		return ReferenceCode{}, ErrInvalidReferenceCode
	}
	for _, c := range s {
		if !strings.ContainsRune(referenceCodeCharset, c) {
			return ReferenceCode{}, ErrInvalidReferenceCode
		}
	}
	return ReferenceCode{value: s}, nil
}

func (c ReferenceCode) String() string { return c.value }
func (c ReferenceCode) IsZero() bool   { return c.value == "" }

type PickupSlot string

const (
	SlotMorning   PickupSlot = "morning"
	SlotAfternoon PickupSlot = "afternoon"
	SlotEvening   PickupSlot = "evening"
)

func ParsePickupSlot(s string) (PickupSlot, error) {
	slot := PickupSlot(strings.ToLower(strings.TrimSpace(s)))
	switch slot {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return slot, nil
	default:
		return "", errs.Field("pickup_slot", ErrInvalidPickupSlot)
	}
}

func (s PickupSlot) String() string { return string(s) }

type Contact struct {
	name     string
	email    string
	whatsApp string
}

func NewContact(name, email, whatsApp string) (Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Contact{}, errs.Field("customer_name", ErrEmptyCustomerName)
	}
	if len(name) > MaxCustomerNameLen {
		return Contact{}, errs.Field("customer_name", ErrCustomerNameTooLong)
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Contact{}, errs.Field("customer_email", ErrInvalidEmail)
	}
	wa, err := NormalizeWhatsApp(whatsApp)
	if err != nil {
		return Contact{}, errs.Field("customer_whatsapp", err)
	}
	return Contact{name: name, email: strings.ToLower(email), whatsApp: wa}, nil
}

// NormalizeWhatsApp strips spaces, dashes and parentheses. Empty input is allowed.
func NormalizeWhatsApp(s string) (string, error) {
	s = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	if !whatsAppRegex.MatchString(s) {
		return "", ErrInvalidWhatsApp
	}
	return s, nil
}

func (c Contact) Name() string     { return c.name }
func (c Contact) Email() string    { return c.email }
func (c Contact) WhatsApp() string { return c.whatsApp }
func (c Contact) HasWhatsApp() bool {
	return c.whatsApp != ""
}

type PickupAddress struct {
	value string
}

func NewPickupAddress(s string) (PickupAddress, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PickupAddress{}, errs.Field("pickup_address", ErrEmptyPickupAddress)
	}
	if len(s) > MaxPickupAddressLen {
		return PickupAddress{}, errs.Field("pickup_address", ErrPickupAddressTooLong)
	}
	return PickupAddress{value: s}, nil
}

func (a PickupAddress) String() string { return a.value }

func ValidateWeight(w *decimal.Decimal) (*decimal.Decimal, error) {
	if w == nil {
		return nil, nil
	}
	if w.LessThan(minWeightKg) || w.GreaterThan(maxWeightKg) {
		return nil, errs.Field("weight_kg", ErrInvalidWeight)
	}
	rounded := w.Round(2)
	return &rounded, nil
}
