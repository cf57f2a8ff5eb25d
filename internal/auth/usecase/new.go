package usecase

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"council-archive/internal/auth"
	"council-archive/pkg/googleauth"
	"council-archive/pkg/log"
	"council-archive/pkg/scope"
)

const (
	stateTTL      = 10 * time.Minute
	maxOpenStates = 10000
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	l           log.Logger
	google      googleauth.IGoogleAuth
	jwtManager  scope.Manager
	sessionTTL  time.Duration
	adminEmails map[string]bool
	states      *expirable.LRU[string, struct{}]
	now         func() time.Time
}

// New creates a new auth UseCase implementation.
// An empty adminEmails list makes every signed-in user an admin.
func New(l log.Logger, google googleauth.IGoogleAuth, jwtManager scope.Manager, sessionTTL time.Duration, adminEmails []string) auth.UseCase {
	admins := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		admins[strings.ToLower(strings.TrimSpace(e))] = true
	}
	return &implUseCase{
		l:           l,
		google:      google,
		jwtManager:  jwtManager,
		sessionTTL:  sessionTTL,
		adminEmails: admins,
		states:      expirable.NewLRU[string, struct{}](maxOpenStates, nil, stateTTL),
		now:         time.Now,
	}
}
