package domain

// StoreProfile holds the public information about the store itself. There is
// exactly one instance per running session.
type StoreProfile struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	WorkingHours string `json:"workingHours"`
	Description  string `json:"description"`
}
