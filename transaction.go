package braspag

import (
	"fmt"

	"github.com/pagarbem/braspag-go/internal/sanitize"
)

// Transaction types accepted by the gateway.
const (
	TypePreAuthorization              = 1
	TypeAutomaticCapture              = 2
	TypePreAuthorizationAuthenticated = 3
	TypeAutomaticCaptureAuthenticated = 4
	TypeRecurrentPreAuthorization     = 5
	TypeRecurrentAutomaticCapture     = 6
)

// Payment plans.
const (
	PaymentPlanNone   = 0 // single payment
	PaymentPlanIssuer = 2 // installments split by the card issuer
)

// PaymentMethodSimulated is the simulated BRL acquirer available on the
// homologation environment.
const PaymentMethodSimulated = 997

// TransactionOptions carries the caller-supplied data for one charge of
// an authorization request. Amounts are integer minor currency units
// (cents). Exactly one of CardNumber and CardToken must be set; with
// CardNumber, the holder, security code and expiration ("MM/YYYY") are
// required as well.
type TransactionOptions struct {
	Amount           int64
	CardHolder       string
	CardNumber       string
	CardSecurityCode string
	CardExpiration   string
	CardToken        string
	SaveCard         bool
	NumberOfPayments int
	PaymentPlan      int
	TransactionType  int
	Currency         string
	Country          string
	PaymentMethod    int
	SoftDescriptor   string
}

// Transaction is an immutable charge descriptor with all defaults
// resolved, consumed only by the request builder.
type Transaction struct {
	Amount           int64
	CardHolder       string
	CardNumber       string
	CardSecurityCode string
	CardExpiration   string
	CardToken        string
	SaveCard         bool
	NumberOfPayments int
	PaymentPlan      int
	TransactionType  int
	Currency         string
	Country          string
	PaymentMethod    int
	SoftDescriptor   string
}

// NewTransaction validates opts and resolves defaults into a
// Transaction. Validation failures are reported as
// *InvalidTransactionError.
func NewTransaction(opts TransactionOptions) (*Transaction, error) {
	if opts.CardNumber == "" && opts.CardToken == "" {
		return nil, &InvalidTransactionError{Reason: "either card_number or card_token must be supplied"}
	}
	if opts.CardNumber != "" {
		// A full card always wins over a stored token.
		opts.CardToken = ""
		required := []struct {
			name  string
			value string
		}{
			{"card_holder", opts.CardHolder},
			{"card_security_code", opts.CardSecurityCode},
			{"card_expiration", opts.CardExpiration},
		}
		for _, f := range required {
			if f.value == "" {
				return nil, &InvalidTransactionError{
					Reason: "credit card transactions require card_holder, card_security_code, card_expiration and card_number; missing " + f.name,
				}
			}
		}
	}
	if opts.NumberOfPayments < 0 {
		return nil, &InvalidTransactionError{
			Reason: fmt.Sprintf("number_of_payments must be a positive integer, got %d", opts.NumberOfPayments),
		}
	}
	if opts.NumberOfPayments == 0 {
		opts.NumberOfPayments = 1
	}
	if opts.PaymentPlan == 0 {
		if opts.NumberOfPayments > 1 {
			opts.PaymentPlan = PaymentPlanIssuer
		} else {
			opts.PaymentPlan = PaymentPlanNone
		}
	}
	if opts.Currency == "" {
		opts.Currency = "BRL"
	}
	if opts.Country == "" {
		opts.Country = "BRA"
	}
	if opts.TransactionType == 0 {
		opts.TransactionType = TypePreAuthorization
	}
	if opts.PaymentMethod == 0 {
		return nil, &InvalidTransactionError{Reason: "payment_method is required"}
	}
	return &Transaction{
		Amount:           opts.Amount,
		CardHolder:       opts.CardHolder,
		CardNumber:       opts.CardNumber,
		CardSecurityCode: opts.CardSecurityCode,
		CardExpiration:   opts.CardExpiration,
		CardToken:        opts.CardToken,
		SaveCard:         opts.SaveCard,
		NumberOfPayments: opts.NumberOfPayments,
		PaymentPlan:      opts.PaymentPlan,
		TransactionType:  opts.TransactionType,
		Currency:         opts.Currency,
		Country:          opts.Country,
		PaymentMethod:    opts.PaymentMethod,
		SoftDescriptor:   sanitize.SoftDescriptor(opts.SoftDescriptor),
	}, nil
}
