package dto

// SignupReq represents the request body for the /api/v1/auth/signup endpoint.
// Role, region and name are optional; the lifecycle manager applies defaults.
type SignupReq struct {
	Name     string `json:"name"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
	Region   string `json:"region"`
}
