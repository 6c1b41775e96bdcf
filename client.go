// Package braspag is a client for the Braspag Pagador web service
// (manual version 1.9): credit card authorization, capture, void and
// refund, billet issuance, and the order/customer/transaction queries.
//
// Business-level declines are not Go errors. Every operation returns a
// decoded response whose Success and Errors fields describe the
// gateway's verdict; Go errors are reserved for local validation,
// transport faults and malformed response documents.
package braspag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pagarbem/braspag-go/internal/sanitize"
	"github.com/pagarbem/braspag-go/internal/wire"
)

const (
	productionURL   = "https://www.pagador.com.br"
	homologationURL = "https://homologacao.pagador.com.br"

	transactionService = "/webservice/pagadorTransaction.asmx"
	queryService       = "/services/pagadorQuery.asmx"

	defaultTimeout = 20 * time.Second
)

// Client talks to the Pagador web services. It holds no per-call state,
// so a single Client is safe for concurrent use from multiple
// goroutines.
type Client struct {
	baseURL    string
	merchantID string
	httpClient *http.Client
	logger     *slog.Logger
}

// New builds a Client from cfg. The merchant id must be a GUID.
func New(cfg Config) (*Client, error) {
	if !sanitize.IsValidGUID(cfg.MerchantID) {
		return nil, &InvalidIdentifierError{Field: "merchant_id", Value: cfg.MerchantID}
	}

	baseURL := productionURL
	if cfg.Sandbox {
		baseURL = homologationURL
	}
	if cfg.BaseURL != "" {
		baseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		merchantID: cfg.MerchantID,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Authorize reserves funds for one or more charges against an order.
// Each entry of req.Transactions must construct a valid transaction
// descriptor or the call fails before any network I/O.
func (c *Client) Authorize(ctx context.Context, req AuthorizeRequest) (*AuthorizationResponse, error) {
	if len(req.Transactions) == 0 {
		return nil, &InvalidTransactionError{Reason: "at least one transaction is required"}
	}
	transactions := make([]wire.Transaction, 0, len(req.Transactions))
	for _, opts := range req.Transactions {
		t, err := NewTransaction(opts)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, wireTransaction(t))
	}

	body, err := wire.Authorize{
		MerchantID:    c.merchantID,
		RequestID:     requestID(req.RequestID),
		OrderID:       req.OrderID,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Transactions:  transactions,
	}.Document()
	if err != nil {
		return nil, err
	}

	raw, err := c.send(ctx, transactionService, body)
	if err != nil {
		return nil, err
	}
	return decodeAuthorization(raw)
}

// Capture settles a previously authorized transaction.
func (c *Client) Capture(ctx context.Context, req CaptureRequest) (*CaptureResponse, error) {
	raw, err := c.baseTransaction(ctx, "Capture", req.TransactionID, req.Amount, req.RequestID)
	if err != nil {
		return nil, err
	}
	return decodeCapture(raw)
}

// Void cancels a transaction authorized within the last 24 hours. Older
// transactions must be refunded instead.
func (c *Client) Void(ctx context.Context, req VoidRequest) (*VoidResponse, error) {
	raw, err := c.baseTransaction(ctx, "Void", req.TransactionID, req.Amount, req.RequestID)
	if err != nil {
		return nil, err
	}
	return decodeVoid(raw)
}

// Refund returns funds for a settled transaction. A zero amount refunds
// the full transaction.
func (c *Client) Refund(ctx context.Context, req RefundRequest) (*RefundResponse, error) {
	raw, err := c.baseTransaction(ctx, "Refund", req.TransactionID, req.Amount, req.RequestID)
	if err != nil {
		return nil, err
	}
	return decodeRefund(raw)
}

// IssueBillet issues a billet (boleto) for an order.
func (c *Client) IssueBillet(ctx context.Context, req IssueBilletRequest) (*BilletResponse, error) {
	if req.Currency == "" {
		req.Currency = "BRL"
	}
	if req.Country == "" {
		req.Country = "BRA"
	}

	body, err := wire.BilletIssuance{
		MerchantID:     c.merchantID,
		RequestID:      requestID(req.RequestID),
		OrderID:        req.OrderID,
		CustomerID:     req.CustomerID,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		Amount:         req.Amount,
		PaymentMethod:  req.PaymentMethod,
		Currency:       req.Currency,
		Country:        req.Country,
		SoftDescriptor: sanitize.SoftDescriptor(req.SoftDescriptor),
	}.Document()
	if err != nil {
		return nil, err
	}

	raw, err := c.send(ctx, transactionService, body)
	if err != nil {
		return nil, err
	}
	return decodeBillet(raw)
}

// GetBilletData fetches the billet issued for a transaction.
func (c *Client) GetBilletData(ctx context.Context, req BilletDataRequest) (*BilletDataResponse, error) {
	if !sanitize.IsValidGUID(req.TransactionID) {
		return nil, &InvalidIdentifierError{Field: "transaction_id", Value: req.TransactionID}
	}
	body, err := wire.BilletDataQuery{
		MerchantID:    c.merchantID,
		RequestID:     requestID(req.RequestID),
		TransactionID: req.TransactionID,
	}.Document()
	if err != nil {
		return nil, err
	}
	raw, err := c.send(ctx, queryService, body)
	if err != nil {
		return nil, err
	}
	return decodeBilletData(raw)
}

// GetOrderIDByTransactionID resolves a transaction id to the Braspag
// order id it belongs to.
func (c *Client) GetOrderIDByTransactionID(ctx context.Context, req OrderIDRequest) (*OrderIDResponse, error) {
	if !sanitize.IsValidGUID(req.TransactionID) {
		return nil, &InvalidIdentifierError{Field: "transaction_id", Value: req.TransactionID}
	}
	body, err := wire.OrderIDQuery{
		MerchantID:    c.merchantID,
		RequestID:     requestID(req.RequestID),
		TransactionID: req.TransactionID,
	}.Document()
	if err != nil {
		return nil, err
	}
	raw, err := c.send(ctx, queryService, body)
	if err != nil {
		return nil, err
	}
	return decodeOrderID(raw)
}

// GetOrderData fetches the details of an order.
func (c *Client) GetOrderData(ctx context.Context, req OrderDataRequest) (*OrderDataResponse, error) {
	if !sanitize.IsValidGUID(req.OrderID) {
		return nil, &InvalidIdentifierError{Field: "order_id", Value: req.OrderID}
	}
	body, err := wire.OrderDataQuery{
		MerchantID: c.merchantID,
		RequestID:  requestID(req.RequestID),
		OrderID:    req.OrderID,
	}.Document()
	if err != nil {
		return nil, err
	}
	raw, err := c.send(ctx, queryService, body)
	if err != nil {
		return nil, err
	}
	return decodeOrderData(raw)
}

// GetCustomerData fetches the customer attached to an order.
func (c *Client) GetCustomerData(ctx context.Context, req CustomerDataRequest) (*CustomerDataResponse, error) {
	if !sanitize.IsValidGUID(req.OrderID) {
		return nil, &InvalidIdentifierError{Field: "order_id", Value: req.OrderID}
	}
	body, err := wire.CustomerDataQuery{
		MerchantID: c.merchantID,
		RequestID:  requestID(req.RequestID),
		OrderID:    req.OrderID,
	}.Document()
	if err != nil {
		return nil, err
	}
	raw, err := c.send(ctx, queryService, body)
	if err != nil {
		return nil, err
	}
	return decodeCustomerData(raw)
}

// GetTransactionData fetches the details of a transaction.
func (c *Client) GetTransactionData(ctx context.Context, req TransactionDataRequest) (*TransactionDataResponse, error) {
	if !sanitize.IsValidGUID(req.TransactionID) {
		return nil, &InvalidIdentifierError{Field: "transaction_id", Value: req.TransactionID}
	}
	body, err := wire.TransactionDataQuery{
		MerchantID:    c.merchantID,
		RequestID:     requestID(req.RequestID),
		TransactionID: req.TransactionID,
	}.Document()
	if err != nil {
		return nil, err
	}
	raw, err := c.send(ctx, queryService, body)
	if err != nil {
		return nil, err
	}
	return decodeTransactionData(raw)
}

func (c *Client) baseTransaction(ctx context.Context, kind, transactionID string, amount int64, reqID string) ([]byte, error) {
	if !sanitize.IsValidGUID(transactionID) {
		return nil, &InvalidIdentifierError{Field: "transaction_id", Value: transactionID}
	}
	body, err := wire.BaseTransaction{
		MerchantID:    c.merchantID,
		RequestID:     requestID(reqID),
		TransactionID: transactionID,
		Type:          kind,
		Amount:        amount,
	}.Document()
	if err != nil {
		return nil, err
	}
	return c.send(ctx, transactionService, body)
}

// send posts body to one of the two service endpoints and returns the
// raw response. Non-2xx statuses and transport faults are reported as
// *TransportError; no retry is attempted.
func (c *Client) send(ctx context.Context, service, body string) ([]byte, error) {
	endpoint := c.baseURL + service

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=UTF-8")

	c.logger.DebugContext(ctx, "gateway request", "endpoint", endpoint, "body", body)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	c.logger.DebugContext(ctx, "gateway response", "endpoint", endpoint, "status", resp.StatusCode, "body", string(raw))
	return raw, nil
}

func wireTransaction(t *Transaction) wire.Transaction {
	return wire.Transaction{
		Amount:           t.Amount,
		CardHolder:       t.CardHolder,
		CardNumber:       t.CardNumber,
		CardSecurityCode: t.CardSecurityCode,
		CardExpiration:   t.CardExpiration,
		CardToken:        t.CardToken,
		SaveCard:         t.SaveCard,
		NumberOfPayments: t.NumberOfPayments,
		PaymentPlan:      t.PaymentPlan,
		TransactionType:  t.TransactionType,
		Currency:         t.Currency,
		Country:          t.Country,
		PaymentMethod:    t.PaymentMethod,
		SoftDescriptor:   t.SoftDescriptor,
	}
}

// requestID keeps a caller-supplied correlation id or generates a fresh
// one, per call.
func requestID(supplied string) string {
	if supplied != "" {
		return supplied
	}
	return uuid.NewString()
}
