package dto

import "time"

// IssueVerificationCodeRequest asks for a new one-time code for key.
type IssueVerificationCodeRequest struct {
	Key string `json:"key" binding:"required,max=255"`
}

// VerifyCodeRequest checks a one-time code.
type VerifyCodeRequest struct {
	Key  string `json:"key" binding:"required,max=255"`
	Code string `json:"code" binding:"required,len=6,numeric"`
}

// VerificationCodeResponse returns an issued code. Delivery to the user is the caller's job.
type VerificationCodeResponse struct {
	Key       string    `json:"key"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// VerifyCodeResponse reports whether the code was accepted.
type VerifyCodeResponse struct {
	Valid bool `json:"valid"`
}
