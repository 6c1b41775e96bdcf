// Command pagador-demo authorizes two simulated card transactions
// against the homologation environment and captures them. It expects
// BRASPAG_MERCHANT_ID in the environment or a .env file.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	braspag "github.com/pagarbem/braspag-go"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	cfg, err := braspag.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	cfg.Sandbox = true

	client, err := braspag.New(*cfg)
	if err != nil {
		slog.Error("failed to build client", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	auth, err := client.Authorize(ctx, braspag.AuthorizeRequest{
		OrderID:       uuid.NewString(),
		CustomerID:    "12345678900",
		CustomerName:  "José da Silva",
		CustomerEmail: "jose123@dasilva.com.br",
		Transactions: []braspag.TransactionOptions{
			{
				Amount:           10000,
				CardHolder:       "Jose da Silva",
				CardNumber:       "0000000000000001",
				CardSecurityCode: "123",
				CardExpiration:   "05/2028",
				SaveCard:         true,
				PaymentMethod:    braspag.PaymentMethodSimulated,
			},
			{
				Amount:           20000,
				CardHolder:       "Paulo da Silva",
				CardNumber:       "9000000000000001",
				CardSecurityCode: "123",
				CardExpiration:   "01/2028",
				PaymentMethod:    braspag.PaymentMethodSimulated,
			},
		},
	})
	if err != nil {
		slog.Error("authorize failed", "error", err)
		os.Exit(1)
	}
	if !auth.Success {
		for _, e := range auth.Errors {
			slog.Error("authorization declined", "code", e.Code, "message", e.Message)
		}
		os.Exit(1)
	}
	slog.Info("authorized", "braspag_order_id", auth.BraspagOrderID, "correlation_id", auth.CorrelationID)

	for _, t := range auth.Transactions {
		capture, err := client.Capture(ctx, braspag.CaptureRequest{
			TransactionID: t.BraspagTransactionID,
			Amount:        t.Amount.Mul(decimal.New(100, 0)).IntPart(),
		})
		if err != nil {
			slog.Error("capture failed", "transaction_id", t.BraspagTransactionID, "error", err)
			os.Exit(1)
		}
		slog.Info("captured",
			"transaction_id", t.BraspagTransactionID,
			"success", capture.Success,
			"status", capture.StatusMessage,
		)
	}
}
