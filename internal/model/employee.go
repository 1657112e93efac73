package model

// Employee is a staff record as stored in the EMPLOYEES table. The role
// column is a discriminator string (FRONT_DESK, PORTER, STAFF) that the
// domain maps onto a capability set; there is no per-role table or
// subclassing.
//
// Fields:
//  ID           – primary key identifier.
//  FirstName    – given name.
//  LastName     – surname.
//  Email        – unique email address used for staff login.
//  Role         – behavioural discriminator.
//  PasswordHash – bcrypt hashed password.
type Employee struct {
	ID           uint64 `json:"id"`         // employees.employee_id
	FirstName    string `json:"first_name"` // employees.first_name
	LastName     string `json:"last_name"`  // employees.last_name
	Email        string `json:"email"`      // employees.email
	Role         string `json:"role"`       // employees.role
	PasswordHash string `json:"-"`          // employees.password_hash, never serialized
}
