package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"council-archive/internal/auth"
	"council-archive/internal/model"
	"council-archive/pkg/scope"
)

// Login issues a one-time state and the Google consent URL bound to it.
func (uc *implUseCase) Login(ctx context.Context) (auth.LoginOutput, error) {
	state := uuid.NewString()
	uc.states.Add(state, struct{}{})
	return auth.LoginOutput{
		URL:   uc.google.AuthCodeURL(state),
		State: state,
	}, nil
}

// Callback consumes the state, resolves the Google identity and issues a session token.
func (uc *implUseCase) Callback(ctx context.Context, input auth.CallbackInput) (auth.CallbackOutput, error) {
	if _, ok := uc.states.Get(input.State); !ok || !uc.states.Remove(input.State) {
		return auth.CallbackOutput{}, auth.ErrInvalidState
	}
	if input.Code == "" {
		return auth.CallbackOutput{}, auth.ErrMissingCode
	}

	identity, err := uc.google.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Callback google.Exchange: %v", err)
		return auth.CallbackOutput{}, auth.ErrExchangeFailed
	}
	if !identity.VerifiedEmail {
		return auth.CallbackOutput{}, auth.ErrUnverifiedEmail
	}

	user := model.Scope{
		UserID:  identity.ID,
		Email:   identity.Email,
		Name:    identity.Name,
		IsAdmin: uc.isAdmin(identity.Email),
	}
	token, err := uc.jwtManager.CreateToken(scope.Payload{
		UserID:  user.UserID,
		Email:   user.Email,
		Name:    user.Name,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Callback jwtManager.CreateToken: %v", err)
		return auth.CallbackOutput{}, auth.ErrIssueToken
	}

	uc.l.Infof(ctx, "uc.Callback: %s signed in (admin=%t)", user.Email, user.IsAdmin)
	return auth.CallbackOutput{
		Token:     token,
		ExpiresAt: uc.now().Add(uc.sessionTTL),
		User:      user,
	}, nil
}

func (uc *implUseCase) isAdmin(email string) bool {
	if len(uc.adminEmails) == 0 {
		return true
	}
	return uc.adminEmails[strings.ToLower(email)]
}
