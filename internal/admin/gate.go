package admin

// The gate is a placeholder, not a security boundary: one fixed credential
// pair, exact match, no lockout and no retry limit. It must stay this way.
const (
	gateLogin    = "admin"
	gatePassword = "admin123"
)

// RejectionMessage is the user-visible notice shown on a credential mismatch.
const RejectionMessage = "Неверные данные для входа"

// Check reports whether the supplied pair matches the administrator
// credentials exactly. Anything else is denied.
func Check(username, password string) bool {
	return username == gateLogin && password == gatePassword
}
