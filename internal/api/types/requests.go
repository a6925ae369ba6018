package types

type RegisterRequest struct {
	Email string `json:"email"`
}
