package braspag

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
)

// Decoders turn raw response bodies into typed results. They never
// perform I/O and never fail on business-level declines; only an
// unparseable or structurally broken document is an error.

func decodeAuthorization(body []byte) (*AuthorizationResponse, error) {
	doc, common, err := decodeDocument(body)
	if err != nil {
		return nil, err
	}
	resp := &AuthorizationResponse{
		Response:       common,
		OrderID:        elementText(doc, "//OrderData/OrderId"),
		BraspagOrderID: elementText(doc, "//BraspagOrderId"),
	}
	for _, e := range doc.FindElements("//TransactionDataCollection/TransactionDataResponse") {
		status := childInt(e, "Status")
		resp.Transactions = append(resp.Transactions, TransactionResult{
			Amount:                centsToDecimal(childText(e, "Amount")),
			AuthorizationCode:     childText(e, "AuthorizationCode"),
			AcquirerTransactionID: childText(e, "AcquirerTransactionId"),
			BraspagTransactionID:  childText(e, "BraspagTransactionId"),
			CardToken:             childText(e, "CreditCardToken"),
			PaymentMethod:         childInt(e, "PaymentMethod"),
			ReturnCode:            childText(e, "ReturnCode"),
			ReturnMessage:         childText(e, "ReturnMessage"),
			Status:                status,
			StatusMessage:         statusText(e, status),
		})
	}
	return resp, nil
}

func decodeCapture(body []byte) (*CaptureResponse, error) {
	doc, common, err := decodeDocument(body)
	if err != nil {
		return nil, err
	}
	o := outcome(doc)
	return &CaptureResponse{
		Response:      common,
		Amount:        o.amount,
		ReturnCode:    o.returnCode,
		ReturnMessage: o.returnMessage,
		Status:        o.status,
		StatusMessage: o.statusMessage,
	}, nil
}

func decodeVoid(body []byte) (*VoidResponse, error) {
	doc, common, err := decodeDocument(body)
	if err != nil {
		return nil, err
	}
	o := outcome(doc)
	return &VoidResponse{
		Response:      common,
		Amount:        o.amount,
		ReturnCode:    o.returnCode,
		ReturnMessage: o.returnMessage,
		Status:        o.status,
		StatusMessage: o.statusMessage,
	}, nil
}

func decodeRefund(body []byte) (*RefundResponse, error) {
	doc, common, err := decodeDocument(body)
	if err != nil {
		return nil, err
	}
	o := outcome(doc)
	return &RefundResponse{
		Response:      common,
		Amount:        o.amount,
		ReturnCode:    o.returnCode,
		ReturnMessage: o.returnMessage,
		Status:        o.status,
		StatusMessage: o.statusMessage,
	}, nil
}

func decodeBillet(body []byte) (*BilletResponse, error) {
	doc, common, err := decodeDocument(body)
	if err != nil {
		return nil, err
	}
	return &BilletResponse{
		Response:             common,
		OrderID:              elementText(doc, "//OrderData/OrderId"),
		BraspagOrderID:       elementText(doc, "//BraspagOrderId"),
		BraspagTransactionID: elementText(doc, "//BraspagTransactionId"),
		Amount:               centsToDecimal(elementText(doc, "//Amount")),
		BilletURL:            elementText(doc, "//BoletoUrl"),
		BilletNumber:         elementText(doc, "//BoletoNumber"),
		ExpirationDate:       elementText(doc, "//BoletoExpirationDate"),
	}, nil
}

func decodeBilletData(body []byte) (*BilletDataResponse, error) {
	doc, common, err := decodeDocument(body)
	if err != nil {
		return nil, err
	}
	return &BilletDataResponse{
		Response:       common,
		DocumentNumber: elementText(doc, "//DocumentNumber"),
		ExpirationDate: elementText(doc, "//BoletoExpirationDate"),
		Amount:         centsToDecimal(elementText(doc, "//Amount")),
		BarCodeNumber:  elementText(doc, "//BarCodeNumber"),
		DigitableLine:  elementText(doc, "//DigitableLine"),
	}, nil
}

func decodeOrderID(body []byte) (*OrderIDResponse, error) {
	doc, common, err := decodeDocument(body)
	if err != nil {
		return nil, err
	}
	return &OrderIDResponse{
		Response:       common,
		BraspagOrderID: elementText(doc, "//BraspagOrderId"),
	}, nil
}

func decodeOrderData(body []byte) (*OrderDataResponse, error) {
	doc, common, err := decodeDocument(body)
	if err != nil {
		return nil, err
	}
	return &OrderDataResponse{
		Response:       common,
		OrderID:        elementText(doc, "//OrderId"),
		BraspagOrderID: elementText(doc, "//BraspagOrderId"),
	}, nil
}

func decodeCustomerData(body []byte) (*CustomerDataResponse, error) {
	doc, common, err := decodeDocument(body)
	if err != nil {
		return nil, err
	}
	return &CustomerDataResponse{
		Response:         common,
		CustomerIdentity: elementText(doc, "//CustomerIdentity"),
		CustomerName:     elementText(doc, "//CustomerName"),
		CustomerEmail:    elementText(doc, "//CustomerEmail"),
	}, nil
}

func decodeTransactionData(body []byte) (*TransactionDataResponse, error) {
	doc, common, err := decodeDocument(body)
	if err != nil {
		return nil, err
	}
	status, _ := strconv.Atoi(elementText(doc, "//Status"))
	statusMessage := elementText(doc, "//StatusMessage")
	if statusMessage == "" {
		statusMessage = statusMessages[status]
	}
	return &TransactionDataResponse{
		Response:              common,
		OrderID:               elementText(doc, "//OrderId"),
		BraspagOrderID:        elementText(doc, "//BraspagOrderId"),
		BraspagTransactionID:  elementText(doc, "//BraspagTransactionId"),
		AcquirerTransactionID: elementText(doc, "//AcquirerTransactionId"),
		AuthorizationCode:     elementText(doc, "//AuthorizationCode"),
		Amount:                centsToDecimal(elementText(doc, "//Amount")),
		PaymentMethod:         intText(doc, "//PaymentMethod"),
		NumberOfPayments:      intText(doc, "//NumberOfPayments"),
		Currency:              elementText(doc, "//Currency"),
		Country:               elementText(doc, "//Country"),
		Status:                status,
		StatusMessage:         statusMessage,
		ReturnCode:            elementText(doc, "//ReturnCode"),
		ReturnMessage:         elementText(doc, "//ReturnMessage"),
		CardToken:             elementText(doc, "//CreditCardToken"),
	}, nil
}

// decodeDocument parses the body and extracts the common envelope:
// success flag, correlation id and the ordered error list.
func decodeDocument(body []byte) (*etree.Document, Response, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, Response{}, &MalformedResponseError{Reason: "response is not well-formed XML", Err: err}
	}
	if doc.Root() == nil {
		return nil, Response{}, &MalformedResponseError{Reason: "response has no root element"}
	}
	success := doc.FindElement("//Success")
	if success == nil {
		return nil, Response{}, &MalformedResponseError{Reason: "response is missing the Success element"}
	}

	common := Response{
		CorrelationID: elementText(doc, "//CorrelationId"),
	}
	for _, e := range doc.FindElements("//ErrorDataCollection/ErrorData") {
		common.Errors = append(common.Errors, Error{
			Code:    childText(e, "ErrorCode"),
			Message: childText(e, "ErrorMessage"),
		})
	}
	common.Success = strings.EqualFold(strings.TrimSpace(success.Text()), "true") && len(common.Errors) == 0
	return doc, common, nil
}

type transactionOutcome struct {
	amount        decimal.Decimal
	returnCode    string
	returnMessage string
	status        int
	statusMessage string
}

func outcome(doc *etree.Document) transactionOutcome {
	status, _ := strconv.Atoi(elementText(doc, "//Status"))
	statusMessage := elementText(doc, "//StatusMessage")
	if statusMessage == "" {
		statusMessage = statusMessages[status]
	}
	return transactionOutcome{
		amount:        centsToDecimal(elementText(doc, "//Amount")),
		returnCode:    elementText(doc, "//ReturnCode"),
		returnMessage: elementText(doc, "//ReturnMessage"),
		status:        status,
		statusMessage: statusMessage,
	}
}

func elementText(doc *etree.Document, path string) string {
	if e := doc.FindElement(path); e != nil {
		return strings.TrimSpace(e.Text())
	}
	return ""
}

func intText(doc *etree.Document, path string) int {
	n, _ := strconv.Atoi(elementText(doc, path))
	return n
}

func childText(e *etree.Element, tag string) string {
	if c := e.FindElement(tag); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}

func childInt(e *etree.Element, tag string) int {
	n, _ := strconv.Atoi(childText(e, tag))
	return n
}

func statusText(e *etree.Element, status int) string {
	if msg := childText(e, "StatusMessage"); msg != "" {
		return msg
	}
	return statusMessages[status]
}

// centsToDecimal scales an integer minor-unit amount to its exact
// decimal currency value. It never goes through floating point.
func centsToDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Decimal{}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return decimal.Decimal{}
	}
	return decimal.New(n, -2)
}
