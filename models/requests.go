package models

// SignUpRequest is the body of the sign-up endpoint.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// SignInRequest is the body of the sign-in endpoint.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// ChangePasswordRequest is the body of the change-password endpoint.
// Password is the new plaintext password.
type ChangePasswordRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// SignedInUser is the outcome of a successful sign-in: the public user
// projection plus the signed bearer token issued for it.
type SignedInUser struct {
	User  UserData
	Token Token
}
