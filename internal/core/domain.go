package core

import (
	"errors"
	"time"
)

const (
	Rental        Category = "Rental"
	Groceries     Category = "Groceries"
	Entertainment Category = "Entertainment"
	Travel        Category = "Travel"
	Others        Category = "Others"
)

const (
	UPI        PaymentMode = "UPI"
	CreditCard PaymentMode = "Credit Card"
	NetBanking PaymentMode = "Net Banking"
	Cash       PaymentMode = "Cash"
)

type (
	Category string

	PaymentMode string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Expense is a single recorded entry. Immutable once created;
	// correcting one means delete and re-add.
	Expense struct {
		ID          string      `json:"id"`
		Amount      Money       `json:"amount_cents"`
		Category    Category    `json:"category"`
		PaymentMode PaymentMode `json:"payment_mode"`
		Date        Date        `json:"date"`
		Notes       string      `json:"notes,omitempty"`
		CreatedAt   time.Time   `json:"created_at"`
	}

	// Draft is the unvalidated input for creating an expense. Amount
	// arrives as text and is coerced during validation.
	Draft struct {
		Amount      string
		Category    Category
		PaymentMode PaymentMode
		Date        Date
		Notes       string
	}
)

var (
	ErrMissingAmount      = errors.New("missing amount")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrMissingCategory    = errors.New("missing category")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrMissingPaymentMode = errors.New("missing payment mode")
	ErrUnknownPaymentMode = errors.New("unknown payment mode")
)

// Categories returns the closed category enumeration in display order.
func Categories() []Category {
	return []Category{Rental, Groceries, Entertainment, Travel, Others}
}

// PaymentModes returns the closed payment-mode enumeration.
func PaymentModes() []PaymentMode {
	return []PaymentMode{UPI, CreditCard, NetBanking, Cash}
}

func (c Category) IsValid() bool {
	switch c {
	case Rental, Groceries, Entertainment, Travel, Others:
		return true
	}
	return false
}

func (p PaymentMode) IsValid() bool {
	switch p {
	case UPI, CreditCard, NetBanking, Cash:
		return true
	}
	return false
}

// NewDate creates a Date from year, month, day at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// MonthKey returns the YYYY-MM grouping key for this date.
func (d Date) MonthKey() string {
	return d.Format("2006-01")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.New("date must be a JSON string")
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Validate checks a draft against the creation rules. The returned
// Money holds the coerced amount when validation passes.
func (dr Draft) Validate() (Money, error) {
	amount, err := ParseAmount(dr.Amount)
	if err != nil {
		return Money{}, err
	}
	if dr.Category == "" {
		return Money{}, ErrMissingCategory
	}
	if !dr.Category.IsValid() {
		return Money{}, ErrUnknownCategory
	}
	if dr.PaymentMode == "" {
		return Money{}, ErrMissingPaymentMode
	}
	if !dr.PaymentMode.IsValid() {
		return Money{}, ErrUnknownPaymentMode
	}
	return amount, nil
}
