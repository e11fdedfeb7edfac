// Package models contains the server-side domain entities.
package models

// Account is an identity known to the service. Immutable here; account
// management happens through separate flows.
type Account struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Username  string
	Role      string
}

// Credential holds the verification material for one account. Exactly one
// credential row exists per account; the salt never changes after creation.
type Credential struct {
	AccountID  string
	SaltedHash []byte
	Salt       []byte
}
