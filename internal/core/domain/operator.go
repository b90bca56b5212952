package domain

import (
	"github.com/google/uuid"
)

type OperatorRole string

const (
	Admin  OperatorRole = "admin"
	Editor OperatorRole = "editor"
)

// Operator is a staff account allowed to manage the content cache.
type Operator struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email" validate:"required,email"`
	PasswordHash string       `json:"-"`
	Role         OperatorRole `json:"role"`
}
