package paymentgateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"storefront-backend/config"
	circuitbreaker "storefront-backend/internal/infrastructure/circuit-breaker"
	"storefront-backend/pkg/errs"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

// MidtransGateway wraps both Midtrans clients: Snap for token creation and
// the Core API status endpoint for transaction inquiry. The status inquiry
// doubles as webhook verification since the response comes from the gateway
// itself rather than the inbound payload.
type MidtransGateway struct {
	snapClient    snap.Client
	coreClient    coreapi.Client
	tokenBreaker  *gobreaker.CircuitBreaker[string]
	statusBreaker *gobreaker.CircuitBreaker[*coreapi.TransactionStatusResponse]
}

func CreateMidtransGateway(config *config.Config) *MidtransGateway {
	env := midtrans.Sandbox
	if config.MidtransConfig.Environment == "production" {
		env = midtrans.Production
	}

	g := &MidtransGateway{
		tokenBreaker:  circuitbreaker.CreateCircuitBreaker[string]("midtrans-token"),
		statusBreaker: circuitbreaker.CreateCircuitBreaker[*coreapi.TransactionStatusResponse]("midtrans-status"),
	}
	g.snapClient.New(config.MidtransConfig.ServerKey, env)
	g.coreClient.New(config.MidtransConfig.ServerKey, env)

	return g
}

func (g *MidtransGateway) CreateTransactionToken(ctx context.Context, req *snap.Request) (string, error) {
	token, err := g.tokenBreaker.Execute(func() (string, error) {
		token, midErr := g.snapClient.CreateTransactionToken(req)
		if midErr != nil {
			return "", midErr
		}

		return token, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CreateTransactionToken").Msg("")
		return "", fmt.Errorf("%w: %v", errs.ErrGateway, err)
	}

	return token, nil
}

// CheckTransaction accepts either a transaction id or a gateway order id;
// the status endpoint resolves both.
func (g *MidtransGateway) CheckTransaction(ctx context.Context, id string) (*coreapi.TransactionStatusResponse, error) {
	status, err := g.statusBreaker.Execute(func() (*coreapi.TransactionStatusResponse, error) {
		status, midErr := g.coreClient.CheckTransaction(id)
		if midErr != nil {
			if midErr.StatusCode == http.StatusNotFound {
				return nil, errs.ErrTransactionNotFound
			}

			return nil, midErr
		}

		return status, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CheckTransaction").Msg("")
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %v", errs.ErrGateway, err)
	}

	return status, nil
}
