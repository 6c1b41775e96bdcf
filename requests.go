package braspag

// Operation parameter structs. RequestID is optional everywhere: when
// empty a fresh GUID is generated and echoed back by the gateway as the
// response's CorrelationID.

// AuthorizeRequest authorizes one or more charges against an order.
// CustomerID is the customer's CPF/CNPJ.
type AuthorizeRequest struct {
	RequestID     string
	OrderID       string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	Transactions  []TransactionOptions
}

// CaptureRequest settles a previously authorized transaction. Amount is
// in minor currency units.
type CaptureRequest struct {
	RequestID     string
	TransactionID string
	Amount        int64
}

// VoidRequest cancels an authorized-but-unsettled transaction.
type VoidRequest struct {
	RequestID     string
	TransactionID string
	Amount        int64
}

// RefundRequest returns funds for a settled transaction. A zero Amount
// refunds the full transaction.
type RefundRequest struct {
	RequestID     string
	TransactionID string
	Amount        int64
}

// IssueBilletRequest issues a billet (boleto) for an order. Currency
// and Country default to BRL/BRA; SoftDescriptor is truncated to 13
// characters and transliterated to ASCII.
type IssueBilletRequest struct {
	RequestID      string
	OrderID        string
	CustomerID     string
	CustomerName   string
	CustomerEmail  string
	Amount         int64
	PaymentMethod  int
	Currency       string
	Country        string
	SoftDescriptor string
}

// BilletDataRequest fetches the billet issued for a transaction.
type BilletDataRequest struct {
	RequestID     string
	TransactionID string
}

// OrderIDRequest resolves a transaction id to its Braspag order id.
type OrderIDRequest struct {
	RequestID     string
	TransactionID string
}

// OrderDataRequest fetches order details.
type OrderDataRequest struct {
	RequestID string
	OrderID   string
}

// CustomerDataRequest fetches the customer attached to an order.
type CustomerDataRequest struct {
	RequestID string
	OrderID   string
}

// TransactionDataRequest fetches transaction details.
type TransactionDataRequest struct {
	RequestID     string
	TransactionID string
}
