package dto

import "time"

type BasicResponse struct {
	Ok        bool      `json:"ok"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBasicResponse(ok bool, details string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// RedirectResponse tells the UI collaborator where to navigate; the service
// itself never redirects.
type RedirectResponse struct {
	Ok         bool   `json:"ok"`
	Details    string `json:"details"`
	RedirectTo string `json:"redirect_to"`
}

func NewRedirectResponse(details string, redirectTo string) RedirectResponse {
	return RedirectResponse{
		Ok:         false,
		Details:    details,
		RedirectTo: redirectTo,
	}
}
