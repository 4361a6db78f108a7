package responses

type RegisteredUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Provider bool   `json:"provider"`
}

type Login struct {
	Token string         `json:"token"`
	User  RegisteredUser `json:"user"`
}
