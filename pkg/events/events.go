package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Routing keys are versionless; adding a payload field is compatible, renaming one is not.
const (
	RKUserCreated      = "user.created"
	RKPaymentCompleted = "payment.completed"
)

// ErrMalformed marks a payload that cannot be decoded or misses a required field.
var ErrMalformed = errors.New("malformed event payload")

// UserCreated mirrors an auth-service user into downstream projections.
type UserCreated struct {
	ID        string `json:"id" validate:"required"`
	Email     string `json:"email" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	GymID     string `json:"gymId,omitempty"`
}

// PaymentCompleted is emitted once per captured transaction. Payments without a
// membership but with a sale id come from the point of sale.
type PaymentCompleted struct {
	MembershipID  string          `json:"membershipId,omitempty" validate:"required_without=SaleID"`
	UserID        string          `json:"userId,omitempty"`
	SaleID        string          `json:"saleId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency" validate:"required"`
	TransactionID string          `json:"transactionId" validate:"required"`
	CompletedAt   time.Time       `json:"completedAt"`
}

// IsSale reports whether the payment settles a point-of-sale purchase instead of a membership.
func (p PaymentCompleted) IsSale() bool {
	return p.MembershipID == "" && p.SaleID != ""
}

func (p PaymentCompleted) check() error {
	if p.CompletedAt.IsZero() {
		return errors.New("completedAt is required")
	}
	if p.Amount.IsNegative() {
		return errors.New("amount must not be negative")
	}
	return nil
}

type checker interface {
	check() error
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Decode unmarshals body into T and validates it. Unknown fields are ignored.
// Every failure wraps ErrMalformed.
func Decode[T any](body []byte) (T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := validate.Struct(out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrMalformed, describe(err))
	}
	if c, ok := any(out).(checker); ok {
		if err := c.check(); err != nil {
			var zero T
			return zero, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
	return out, nil
}

func describe(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(fields, ", ")
}
