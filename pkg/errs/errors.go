package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
	ErrBadGateway           = http.StatusBadGateway
)

var (
	ErrInternalServer      = errors.New("Internal server error")
	ErrClient              = errors.New("Bad request")
	ErrNotFound            = errors.New("Resource not found")
	ErrUserNotFound        = errors.New("User record not found")
	ErrOrderNotFound       = errors.New("Order not found")
	ErrTransactionNotFound = errors.New("Transaction id not found")
	ErrGateway             = errors.New("Payment gateway request failed")
	ErrIdentity            = errors.New("Identity provider lookup failed")
)

// ErrGateway and ErrIdentity map to 404 on purpose: the storefront client
// expects the 404-style error body on every adapter failure.
var errorMap = map[error]int{
	ErrInternalServer:      ErrStatusInternalServer,
	ErrClient:              ErrStatusClient,
	ErrNotFound:            ErrStatusNotFound,
	ErrUserNotFound:        ErrStatusNotFound,
	ErrOrderNotFound:       ErrStatusNotFound,
	ErrTransactionNotFound: ErrStatusNotFound,
	ErrGateway:             ErrStatusNotFound,
	ErrIdentity:            ErrStatusNotFound,
}

func GetErrorStatusCode(err error) int {
	for sentinel, statusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return statusCode
		}
	}

	return errorMap[ErrInternalServer]
}
