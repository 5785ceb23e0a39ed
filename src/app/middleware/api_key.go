package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"employeedir/src/app/http/response"
	"employeedir/src/core/domain"
)

// APIKeyHeader carries the shared secret on every request.
const APIKeyHeader = "x-api-key"

// APIKey rejects any request whose x-api-key header does not match the
// configured key. It must run before any handler.
func APIKey(expected string) gin.HandlerFunc {
	want := []byte(expected)

	return func(c *gin.Context) {
		if err := checkAPIKey(c.GetHeader(APIKeyHeader), want); err != nil {
			response.FromDomainError(c, err, GetRequestID(c))
			c.Abort()
			return
		}

		c.Next()
	}
}

func checkAPIKey(got string, want []byte) error {
	if got == "" {
		return domain.NewUnauthorizedError("API Key was not provided")
	}
	if subtle.ConstantTimeCompare([]byte(got), want) != 1 {
		return domain.NewUnauthorizedError("Unauthorized client.")
	}
	return nil
}
