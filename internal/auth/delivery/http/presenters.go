package http

import (
	"time"

	"council-archive/internal/auth"
	"council-archive/internal/model"
)

// --- Request DTOs ---

type callbackReq struct {
	State string `form:"state"`
	Code  string `form:"code"`
	Error string `form:"error"`
}

func (r callbackReq) validate() error {
	if r.Error != "" {
		return auth.ErrExchangeFailed
	}
	return nil
}

func (r callbackReq) toInput() auth.CallbackInput {
	return auth.CallbackInput{State: r.State, Code: r.Code}
}

// --- Response DTOs ---

type userResp struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

func newUserResp(sc model.Scope) userResp {
	return userResp{
		ID:      sc.UserID,
		Email:   sc.Email,
		Name:    sc.Name,
		IsAdmin: sc.IsAdmin,
	}
}

type callbackResp struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      userResp  `json:"user"`
}

func (h *handler) newCallbackResp(out auth.CallbackOutput) callbackResp {
	return callbackResp{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		User:      newUserResp(out.User),
	}
}

type meResp struct {
	User userResp `json:"user"`
}
