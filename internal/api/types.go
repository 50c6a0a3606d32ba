// Package api defines the JSON request and response types shared by the
// HTTP handlers.
package api

// ErrorResponse is the envelope for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a generic success message.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed JWT after a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupRequest is the payload for user registration.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CandleResponse is one OHLCV data point in a candles listing.
type CandleResponse struct {
	Time   string  `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// SymbolResponse is one entry in the symbol listing.
type SymbolResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Market string `json:"market"`
}
