package braspag

import "github.com/shopspring/decimal"

// Transaction status codes reported by the gateway.
const (
	StatusAuthorized    = 1
	StatusCaptured      = 2
	StatusNotAuthorized = 3
	StatusVoided        = 4
	StatusRefunded      = 5
	StatusWaiting       = 6
)

var statusMessages = map[int]string{
	StatusAuthorized:    "Authorized",
	StatusCaptured:      "Captured",
	StatusNotAuthorized: "Not Authorized",
	StatusVoided:        "Voided",
	StatusRefunded:      "Refunded",
	StatusWaiting:       "Waiting for Answer",
}

// Error is one gateway-reported error entry. A populated error list
// means the request was rejected at the business level; it is not a Go
// error.
type Error struct {
	Code    string
	Message string
}

// Response carries the fields common to every decoded gateway response.
// Success is true only when the gateway flagged success and reported no
// errors.
type Response struct {
	Success       bool
	CorrelationID string
	Errors        []Error
}

// TransactionResult is one per-transaction block of an authorization
// response. Amount is the exact decimal currency value scaled from the
// gateway's integer minor units.
type TransactionResult struct {
	Amount                decimal.Decimal
	AuthorizationCode     string
	AcquirerTransactionID string
	BraspagTransactionID  string
	CardToken             string
	PaymentMethod         int
	ReturnCode            string
	ReturnMessage         string
	Status                int
	StatusMessage         string
}

type AuthorizationResponse struct {
	Response
	OrderID        string
	BraspagOrderID string
	Transactions   []TransactionResult
}

type CaptureResponse struct {
	Response
	Amount        decimal.Decimal
	ReturnCode    string
	ReturnMessage string
	Status        int
	StatusMessage string
}

type VoidResponse struct {
	Response
	Amount        decimal.Decimal
	ReturnCode    string
	ReturnMessage string
	Status        int
	StatusMessage string
}

type RefundResponse struct {
	Response
	Amount        decimal.Decimal
	ReturnCode    string
	ReturnMessage string
	Status        int
	StatusMessage string
}

// BilletResponse is the result of issuing a billet.
type BilletResponse struct {
	Response
	OrderID              string
	BraspagOrderID       string
	BraspagTransactionID string
	Amount               decimal.Decimal
	BilletURL            string
	BilletNumber         string
	ExpirationDate       string
}

// BilletDataResponse carries the stored billet details. Optional fields
// absent from the response are left empty.
type BilletDataResponse struct {
	Response
	DocumentNumber string
	ExpirationDate string
	Amount         decimal.Decimal
	BarCodeNumber  string
	DigitableLine  string
}

type OrderIDResponse struct {
	Response
	BraspagOrderID string
}

type OrderDataResponse struct {
	Response
	OrderID        string
	BraspagOrderID string
}

type CustomerDataResponse struct {
	Response
	CustomerIdentity string
	CustomerName     string
	CustomerEmail    string
}

type TransactionDataResponse struct {
	Response
	OrderID               string
	BraspagOrderID        string
	BraspagTransactionID  string
	AcquirerTransactionID string
	AuthorizationCode     string
	Amount                decimal.Decimal
	PaymentMethod         int
	NumberOfPayments      int
	Currency              string
	Country               string
	Status                int
	StatusMessage         string
	ReturnCode            string
	ReturnMessage         string
	CardToken             string
}
