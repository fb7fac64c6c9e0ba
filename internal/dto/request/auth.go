package request

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Email     string `json:"email" validate:"required,email"`
	Password1 string `json:"password1" validate:"required,min=8"`
	Password2 string `json:"password2" validate:"required,eqfield=Password1"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateAdminRequest backs the create-admin subcommand.
type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Echo returns the form without its secrets for re-rendering.
func (r RegisterRequest) Echo() RegisterRequest {
	r.Password1 = ""
	r.Password2 = ""
	return r
}

func (r LoginRequest) Echo() LoginRequest {
	r.Password = ""
	return r
}
