package model

import "time"

// Customer represents a registered guest as stored in the CUSTOMERS
// table. Name columns follow the four-part convention of the original
// registry (first name, optional middle name, paternal and maternal
// surnames). Only the bcrypt hash of the password is stored.
//
// Fields:
//  ID            – primary key identifier.
//  FirstName     – given name.
//  SecondName    – middle name, may be empty.
//  LastName      – paternal surname.
//  SecondLastName – maternal surname, may be empty.
//  Phone         – contact phone number.
//  Email         – unique email address used for login.
//  State         – state of residence.
//  CURP          – national population registry code.
//  PasswordHash  – bcrypt hashed password.
type Customer struct {
	ID             uint64 `json:"id"`               // customers.customer_id
	FirstName      string `json:"first_name"`       // customers.first_name
	SecondName     string `json:"second_name"`      // customers.second_name
	LastName       string `json:"last_name"`        // customers.last_name
	SecondLastName string `json:"second_last_name"` // customers.second_last_name
	Phone          string `json:"phone"`            // customers.phone
	Email          string `json:"email"`            // customers.email
	State          string `json:"state"`            // customers.state
	CURP           string `json:"curp"`             // customers.curp
	PasswordHash   string `json:"-"`                // customers.password_hash, never serialized
}

// RefreshToken models an entry in the refresh_tokens table. Only the
// SHA-256 hash of the raw token is stored. The Subject column tells
// whether the owning id points into CUSTOMERS or EMPLOYEES.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token (customer or employee id).
//  Subject   – GUEST or STAFF.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp.
//  RevokedAt – when the token was revoked (nil if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	Subject   string     // refresh_tokens.subject
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
