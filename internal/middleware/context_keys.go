package middleware

import "github.com/gin-gonic/gin"

// accountNumberKey is the key used to store the authenticated caller's
// account number in the request context.
const accountNumberKey = contextKey("accountNumber")

// GetAccountNumberFromContext retrieves the authenticated account number from
// the Gin context. It returns the account number and a boolean indicating
// whether it was found.
func GetAccountNumberFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(accountNumberKey)
	if val == nil {
		return "", false
	}
	accountNumber, ok := val.(string)
	return accountNumber, ok
}
