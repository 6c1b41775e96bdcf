package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagarbem/braspag-go/internal/wire"
)

const (
	merchantID = "f9b44052-4ae0-e311-9406-0026b939d54b"
	reqID      = "782a56e2-2dae-11e2-b3ee-080027d29772"
)

func cardTransaction() wire.Transaction {
	return wire.Transaction{
		Amount:           10000,
		CardHolder:       "Jose da Silva",
		CardNumber:       "0000000000000001",
		CardSecurityCode: "123",
		CardExpiration:   "05/2028",
		SaveCard:         true,
		NumberOfPayments: 1,
		PaymentPlan:      0,
		TransactionType:  1,
		Currency:         "BRL",
		Country:          "BRA",
		PaymentMethod:    997,
	}
}

func TestAuthorizeDocument(t *testing.T) {
	doc, err := wire.Authorize{
		MerchantID:    merchantID,
		RequestID:     reqID,
		OrderID:       "2cf84e51-c45b-45d9-9f64-554a6e088668",
		CustomerID:    "12345678900",
		CustomerName:  "José da Silva",
		CustomerEmail: "jose123@dasilva.com.br",
		Transactions:  []wire.Transaction{cardTransaction()},
	}.Document()
	require.NoError(t, err)

	assert.Contains(t, doc, "<RequestId>"+reqID+"</RequestId>")
	assert.Contains(t, doc, "<MerchantId>"+merchantID+"</MerchantId>")
	assert.Contains(t, doc, "<OrderId>2cf84e51-c45b-45d9-9f64-554a6e088668</OrderId>")
	assert.Contains(t, doc, "<CustomerName>José da Silva</CustomerName>")
	assert.Contains(t, doc, "<CardNumber>0000000000000001</CardNumber>")
	assert.Contains(t, doc, "<CardExpirationDate>05/2028</CardExpirationDate>")
	assert.Contains(t, doc, "<SaveCreditCard>true</SaveCreditCard>")
	assert.Contains(t, doc, "<NumberOfPayments>1</NumberOfPayments>")
	assert.Contains(t, doc, "<PaymentPlan>0</PaymentPlan>")
	assert.NotContains(t, doc, "CreditCardToken")
	assert.NotRegexp(t, `>\s+<`, doc)
}

func TestAuthorizeDocumentEscapesUserText(t *testing.T) {
	tx := cardTransaction()
	doc, err := wire.Authorize{
		MerchantID:    merchantID,
		RequestID:     reqID,
		OrderID:       "2cf84e51-c45b-45d9-9f64-554a6e088668",
		CustomerID:    "12345678900",
		CustomerName:  "José & Silva <Filho>",
		CustomerEmail: "jose@dasilva.com.br",
		Transactions:  []wire.Transaction{tx},
	}.Document()
	require.NoError(t, err)

	assert.Contains(t, doc, "José &amp; Silva &lt;Filho&gt;")
	assert.NotContains(t, doc, "<Filho>")
}

func TestAuthorizeDocumentWithToken(t *testing.T) {
	tx := cardTransaction()
	tx.CardNumber = ""
	tx.CardHolder = ""
	tx.CardSecurityCode = ""
	tx.CardExpiration = ""
	tx.CardToken = "08fc9329-2c7e-4f6a-9df4-96b483346305"

	doc, err := wire.Authorize{
		MerchantID:   merchantID,
		RequestID:    reqID,
		OrderID:      "2cf84e51-c45b-45d9-9f64-554a6e088668",
		Transactions: []wire.Transaction{tx},
	}.Document()
	require.NoError(t, err)

	assert.Contains(t, doc, "<CreditCardToken>08fc9329-2c7e-4f6a-9df4-96b483346305</CreditCardToken>")
	assert.NotContains(t, doc, "<CardNumber>")
	assert.NotContains(t, doc, "<CardHolder>")
}

func TestBaseTransactionDocument(t *testing.T) {
	for _, kind := range []string{"Capture", "Void", "Refund"} {
		t.Run(kind, func(t *testing.T) {
			doc, err := wire.BaseTransaction{
				MerchantID:    merchantID,
				RequestID:     reqID,
				TransactionID: "0dfc078c-4c8b-454a-af0f-1f02023a4141",
				Type:          kind,
				Amount:        10000,
			}.Document()
			require.NoError(t, err)

			assert.Contains(t, doc, "<TransactionType>"+kind+"</TransactionType>")
			assert.Contains(t, doc, "<BraspagTransactionId>0dfc078c-4c8b-454a-af0f-1f02023a4141</BraspagTransactionId>")
			assert.Contains(t, doc, "<Amount>10000</Amount>")
			assert.NotRegexp(t, `>\s+<`, doc)
		})
	}
}

func TestBilletIssuanceDocument(t *testing.T) {
	doc, err := wire.BilletIssuance{
		MerchantID:     merchantID,
		RequestID:      reqID,
		OrderID:        "2cf84e51-c45b-45d9-9f64-554a6e088668",
		CustomerID:     "12345678900",
		CustomerName:   "Jose da Silva",
		CustomerEmail:  "jose123@dasilva.com.br",
		Amount:         10000,
		PaymentMethod:  6,
		Currency:       "BRL",
		Country:        "BRA",
		SoftDescriptor: "Loja do Ze",
	}.Document()
	require.NoError(t, err)

	assert.Contains(t, doc, `xsi:type="BoletoDataRequest"`)
	assert.Contains(t, doc, "<PaymentMethod>6</PaymentMethod>")
	assert.Contains(t, doc, "<SoftDescriptor>Loja do Ze</SoftDescriptor>")
}

func TestQueryDocuments(t *testing.T) {
	transactionID := "0dfc078c-4c8b-454a-af0f-1f02023a4141"
	orderID := "2cf84e51-c45b-45d9-9f64-554a6e088668"

	tests := []struct {
		name    string
		builder interface{ Document() (string, error) }
		root    string
		idTag   string
		idValue string
	}{
		{
			"billet data",
			wire.BilletDataQuery{MerchantID: merchantID, RequestID: reqID, TransactionID: transactionID},
			"GetBilletDataRequest", "TransactionId", transactionID,
		},
		{
			"order id",
			wire.OrderIDQuery{MerchantID: merchantID, RequestID: reqID, TransactionID: transactionID},
			"GetBraspagOrderIdRequest", "TransactionId", transactionID,
		},
		{
			"order data",
			wire.OrderDataQuery{MerchantID: merchantID, RequestID: reqID, OrderID: orderID},
			"GetBraspagOrderDataRequest", "OrderId", orderID,
		},
		{
			"customer data",
			wire.CustomerDataQuery{MerchantID: merchantID, RequestID: reqID, OrderID: orderID},
			"GetCustomerDataRequest", "OrderId", orderID,
		},
		{
			"transaction data",
			wire.TransactionDataQuery{MerchantID: merchantID, RequestID: reqID, TransactionID: transactionID},
			"GetTransactionDataRequest", "TransactionId", transactionID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := tt.builder.Document()
			require.NoError(t, err)

			assert.Contains(t, doc, "<"+tt.root+" ")
			assert.Contains(t, doc, "</"+tt.root+">")
			assert.Contains(t, doc, "<"+tt.idTag+">"+tt.idValue+"</"+tt.idTag+">")
			assert.Contains(t, doc, "<MerchantId>"+merchantID+"</MerchantId>")
			assert.NotRegexp(t, `>\s+<`, doc)
		})
	}
}
