// Package wire builds the outbound XML documents accepted by the
// Pagador web services. Each operation has its own typed builder, so a
// document with missing structure cannot be expressed. Text content is
// escaped by etree on serialization.
package wire

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/pagarbem/braspag-go/internal/sanitize"
)

const (
	transactionNamespace = "https://www.pagador.com.br/webservice/pagadorTransaction"
	queryNamespace       = "https://www.pagador.com.br/webservice/pagadorQuery"

	version = "1.0"
)

// Transaction is one charge of an authorization document, fully
// defaulted and validated by the caller.
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

// Authorize is the credit card authorization document.
type Authorize struct {
	MerchantID    string
	RequestID     string
	OrderID       string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	Transactions  []Transaction
}

func (r Authorize) Document() (string, error) {
	doc, root := newDocument("PagadorTransactionRequest", transactionNamespace)
	writeHeader(root, r.RequestID, r.MerchantID)

	order := root.CreateElement("OrderData")
	text(order, "OrderId", r.OrderID)

	customer := root.CreateElement("CustomerData")
	text(customer, "CustomerIdentity", r.CustomerID)
	text(customer, "CustomerName", r.CustomerName)
	text(customer, "CustomerEmail", r.CustomerEmail)

	payments := root.CreateElement("PaymentDataCollection")
	for _, t := range r.Transactions {
		p := payments.CreateElement("PaymentDataRequest")
		p.CreateAttr("xsi:type", "CreditCardDataRequest")
		text(p, "PaymentMethod", strconv.Itoa(t.PaymentMethod))
		text(p, "Amount", strconv.FormatInt(t.Amount, 10))
		text(p, "Currency", t.Currency)
		text(p, "Country", t.Country)
		text(p, "NumberOfPayments", strconv.Itoa(t.NumberOfPayments))
		text(p, "PaymentPlan", strconv.Itoa(t.PaymentPlan))
		text(p, "TransactionType", strconv.Itoa(t.TransactionType))
		if t.CardToken != "" {
			text(p, "CreditCardToken", t.CardToken)
		} else {
			text(p, "CardHolder", t.CardHolder)
			text(p, "CardNumber", t.CardNumber)
			text(p, "CardSecurityCode", t.CardSecurityCode)
			text(p, "CardExpirationDate", t.CardExpiration)
		}
		text(p, "SaveCreditCard", strconv.FormatBool(t.SaveCard))
		if t.SoftDescriptor != "" {
			text(p, "SoftDescriptor", t.SoftDescriptor)
		}
	}
	return serialize(doc)
}

// BaseTransaction is the shared capture/void/refund document,
// distinguished by Type.
type BaseTransaction struct {
	MerchantID    string
	RequestID     string
	TransactionID string
	Type          string // Capture, Void or Refund
	Amount        int64
}

func (r BaseTransaction) Document() (string, error) {
	doc, root := newDocument("PagadorTransactionRequest", transactionNamespace)
	writeHeader(root, r.RequestID, r.MerchantID)
	text(root, "TransactionType", r.Type)

	data := root.CreateElement("TransactionData")
	text(data, "BraspagTransactionId", r.TransactionID)
	text(data, "Amount", strconv.FormatInt(r.Amount, 10))
	return serialize(doc)
}

// BilletIssuance is the billet (boleto) issuance document.
type BilletIssuance struct {
	MerchantID     string
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

func (r BilletIssuance) Document() (string, error) {
	doc, root := newDocument("PagadorTransactionRequest", transactionNamespace)
	writeHeader(root, r.RequestID, r.MerchantID)

	order := root.CreateElement("OrderData")
	text(order, "OrderId", r.OrderID)

	customer := root.CreateElement("CustomerData")
	text(customer, "CustomerIdentity", r.CustomerID)
	text(customer, "CustomerName", r.CustomerName)
	text(customer, "CustomerEmail", r.CustomerEmail)

	payments := root.CreateElement("PaymentDataCollection")
	p := payments.CreateElement("PaymentDataRequest")
	p.CreateAttr("xsi:type", "BoletoDataRequest")
	text(p, "PaymentMethod", strconv.Itoa(r.PaymentMethod))
	text(p, "Amount", strconv.FormatInt(r.Amount, 10))
	text(p, "Currency", r.Currency)
	text(p, "Country", r.Country)
	if r.SoftDescriptor != "" {
		text(p, "SoftDescriptor", r.SoftDescriptor)
	}
	return serialize(doc)
}

// BilletDataQuery fetches billet details for a transaction.
type BilletDataQuery struct {
	MerchantID    string
	RequestID     string
	TransactionID string
}

func (q BilletDataQuery) Document() (string, error) {
	return queryDocument("GetBilletDataRequest", "TransactionId", q.TransactionID, q.MerchantID, q.RequestID)
}

// OrderIDQuery resolves a transaction id to its Braspag order id.
type OrderIDQuery struct {
	MerchantID    string
	RequestID     string
	TransactionID string
}

func (q OrderIDQuery) Document() (string, error) {
	return queryDocument("GetBraspagOrderIdRequest", "TransactionId", q.TransactionID, q.MerchantID, q.RequestID)
}

// OrderDataQuery fetches order details.
type OrderDataQuery struct {
	MerchantID string
	RequestID  string
	OrderID    string
}

func (q OrderDataQuery) Document() (string, error) {
	return queryDocument("GetBraspagOrderDataRequest", "OrderId", q.OrderID, q.MerchantID, q.RequestID)
}

// CustomerDataQuery fetches the customer attached to an order.
type CustomerDataQuery struct {
	MerchantID string
	RequestID  string
	OrderID    string
}

func (q CustomerDataQuery) Document() (string, error) {
	return queryDocument("GetCustomerDataRequest", "OrderId", q.OrderID, q.MerchantID, q.RequestID)
}

// TransactionDataQuery fetches transaction details.
type TransactionDataQuery struct {
	MerchantID    string
	RequestID     string
	TransactionID string
}

func (q TransactionDataQuery) Document() (string, error) {
	return queryDocument("GetTransactionDataRequest", "TransactionId", q.TransactionID, q.MerchantID, q.RequestID)
}

func queryDocument(rootName, idTag, id, merchantID, requestID string) (string, error) {
	doc, root := newDocument(rootName, queryNamespace)
	writeHeader(root, requestID, merchantID)
	text(root, idTag, id)
	return serialize(doc)
}

func newDocument(rootName, namespace string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement(rootName)
	root.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")
	root.CreateAttr("xmlns:xsd", "http://www.w3.org/2001/XMLSchema")
	root.CreateAttr("xmlns", namespace)
	return doc, root
}

func writeHeader(root *etree.Element, requestID, merchantID string) {
	text(root, "Version", version)
	text(root, "RequestId", requestID)
	text(root, "MerchantId", merchantID)
}

func text(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}

func serialize(doc *etree.Document) (string, error) {
	s, err := doc.WriteToString()
	if err != nil {
		return "", err
	}
	return sanitize.Spaceless(s), nil
}
