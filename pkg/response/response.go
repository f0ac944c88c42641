package response

import (
	"net/http"
	"strconv"

	"storefront-backend/pkg/errs"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	StatusCode   string `json:"status_code"`
	ErrorMessage string `json:"error_message"`
}

type TransactionNotFoundResponse struct {
	StatusCode    string `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

type VerificationResponse struct {
	StatusCode    string `json:"status_code"`
	EmailVerified bool   `json:"emailVerified"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{
		StatusCode:   strconv.Itoa(statusCode),
		ErrorMessage: err.Error(),
	}

	return c.JSON(statusCode, resp)
}

func WriteTransactionNotFoundResponse(c echo.Context) error {
	return c.JSON(http.StatusNotFound, TransactionNotFoundResponse{
		StatusCode:    "404",
		StatusMessage: "Transaction id not found",
	})
}
