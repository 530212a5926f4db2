package dto

// MessageResponse は人間可読のメッセージのみを持つレスポンスボディです。
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse は/signin成功時のレスポンスボディです。
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
