package models

// Account is a local password account backing self-issued sessions.
// Accounts exist for users the identity provider does not manage
// (admins, developers); a successful password login encodes the account
// into a self-issued session envelope.
type Account struct {
	UserID       string   `json:"userId" db:"user_id"`
	Email        string   `json:"email" db:"email"`
	Name         string   `json:"name" db:"name"`
	PasswordHash string   `json:"-" db:"password_hash"`
	Type         UserType `json:"type" db:"user_type"`
	IsHOD        bool     `json:"isHOD" db:"is_hod"`
	Labels       []string `json:"labels" db:"labels"`
}
