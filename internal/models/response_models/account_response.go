package response_models

type SessionResponse struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	IsGuest bool   `json:"is_guest"`
	Token   string `json:"token"`
}
