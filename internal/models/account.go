package models

import "github.com/google/uuid"

// Account is a registered establishment operator. Accounts live in the
// persisted key-value credential table, not in a relational table, so this
// is a plain JSON record rather than a GORM model.
type Account struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	EstablishmentName string    `json:"establishment_name"`
	ContactName       string    `json:"contact_name"`
	Phone             string    `json:"phone"`
}
