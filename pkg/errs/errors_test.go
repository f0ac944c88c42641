package errs

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetErrorStatusCode(ErrUserNotFound))
	assert.Equal(t, http.StatusNotFound, GetErrorStatusCode(ErrTransactionNotFound))
	assert.Equal(t, http.StatusNotFound, GetErrorStatusCode(ErrGateway))
	assert.Equal(t, http.StatusNotFound, GetErrorStatusCode(ErrIdentity))
	assert.Equal(t, http.StatusInternalServerError, GetErrorStatusCode(fmt.Errorf("unmapped")))
}

func TestGetErrorStatusCode_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("%w: uid-1", ErrUserNotFound)
	assert.Equal(t, http.StatusNotFound, GetErrorStatusCode(wrapped))
}
