package service

import (
	"errors"

	"github.com/okian/scout/internal/adapters/session"
)

// Sentinel errors of the service layer.
var (
	ErrNotStarted        = errors.New("service not started")
	ErrInvalidRequest    = errors.New("invalid analysis request")
	ErrProfileNotOffered = errors.New("profile not offered for position")
	ErrSessionNotFound   = session.ErrNotFound
)
