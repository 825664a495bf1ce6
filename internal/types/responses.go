package types

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
