package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-backend/internal/dto"
	"storefront-backend/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentService struct {
	verified     bool
	verifiedErr  error
	token        string
	tokenErr     error
	status       *coreapi.TransactionStatusResponse
	statusErr    error
	notification dto.PaymentNotification
}

func (s *fakePaymentService) GetEmailVerified(ctx context.Context, uid string) (bool, error) {
	return s.verified, s.verifiedErr
}

func (s *fakePaymentService) CreateTransactionToken(ctx context.Context, req dto.ChargeRequest) (string, error) {
	return s.token, s.tokenErr
}

func (s *fakePaymentService) GetTransactionDetail(ctx context.Context, transactionID string) (*coreapi.TransactionStatusResponse, error) {
	return s.status, s.statusErr
}

func (s *fakePaymentService) HandleNotification(ctx context.Context, req dto.PaymentNotification) (*coreapi.TransactionStatusResponse, error) {
	s.notification = req
	return s.status, s.statusErr
}

func (s *fakePaymentService) ReconcilePendingPayments() {}

func createTestServer(svc *fakePaymentService) *echo.Echo {
	e := echo.New()
	CreatePaymentController(e, svc)
	return e
}

func TestGetEmailVerificationStatus(t *testing.T) {
	e := createTestServer(&fakePaymentService{verified: true})

	req := httptest.NewRequest(http.MethodGet, "/status/uid-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status_code":"200","emailVerified":true}`, rec.Body.String())
}

func TestGetEmailVerificationStatus_UnknownUser(t *testing.T) {
	e := createTestServer(&fakePaymentService{verifiedErr: errs.ErrUserNotFound})

	req := httptest.NewRequest(http.MethodGet, "/status/no-such-uid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status_code":"404","error_message":"User record not found"}`, rec.Body.String())
}

func TestCharge(t *testing.T) {
	e := createTestServer(&fakePaymentService{token: "snap-token-123"})

	body := `{"customers":{"email":"john@example.com"},"items":[{"id":"p1","price":1000,"quantity":2,"name":"Coffee"}],"order_id":"42","url":"https://store.example.com/finish"}`
	req := httptest.NewRequest(http.MethodPost, "/charge", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"snap-token-123"}`, rec.Body.String())
}

func TestCharge_GatewayFailure(t *testing.T) {
	e := createTestServer(&fakePaymentService{tokenErr: errs.ErrGateway})

	req := httptest.NewRequest(http.MethodPost, "/charge", strings.NewReader(`{"order_id":"42"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status_code":"404","error_message":"Payment gateway request failed"}`, rec.Body.String())
}

func TestGetTransactionDetail(t *testing.T) {
	e := createTestServer(&fakePaymentService{status: &coreapi.TransactionStatusResponse{
		OrderID:           "order-id-42",
		TransactionStatus: "settlement",
		StatusCode:        "200",
	}})

	req := httptest.NewRequest(http.MethodGet, "/det/trx-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"transaction_status":"settlement"`)
	assert.Contains(t, rec.Body.String(), `"order_id":"order-id-42"`)
}

func TestGetTransactionDetail_UnknownTransaction(t *testing.T) {
	e := createTestServer(&fakePaymentService{statusErr: errs.ErrTransactionNotFound})

	req := httptest.NewRequest(http.MethodGet, "/det/trx-unknown", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status_code":"404","status_message":"Transaction id not found"}`, rec.Body.String())
}

func TestHandleNotification(t *testing.T) {
	svc := &fakePaymentService{status: &coreapi.TransactionStatusResponse{
		OrderID:           "order-id-42",
		TransactionStatus: "settlement",
	}}
	e := createTestServer(svc)

	body := `{"order_id":"order-id-42","transaction_status":"settlement","fraud_status":""}`
	req := httptest.NewRequest(http.MethodPost, "/notification_handler", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "order-id-42", svc.notification.OrderID)
	assert.Contains(t, rec.Body.String(), `"transaction_status":"settlement"`)
}

func TestHandleNotification_VerificationFailure(t *testing.T) {
	e := createTestServer(&fakePaymentService{statusErr: errs.ErrTransactionNotFound})

	req := httptest.NewRequest(http.MethodPost, "/notification_handler", strings.NewReader(`{"order_id":"bogus"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status_code":"404","status_message":"Transaction id not found"}`, rec.Body.String())
}
