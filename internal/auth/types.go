package auth

import (
	"time"

	"council-archive/internal/model"
)

// --- UseCase Inputs ---

type CallbackInput struct {
	State string
	Code  string
}

// --- UseCase Outputs ---

type LoginOutput struct {
	URL   string
	State string
}

type CallbackOutput struct {
	Token     string
	ExpiresAt time.Time
	User      model.Scope
}
