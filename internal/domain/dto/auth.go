// Package dto defines Data Transfer Objects for authentication.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate an operator
// @Example {"email": "operator@example.com", "password": "password123"}
type LoginRequest struct {
	// Email is the operator's email address.
	Email string `json:"email" binding:"required,email" example:"operator@example.com"`
	// Password is the operator's password.
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with a JWT token
type LoginResponse struct {
	// Token is the JWT access token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"3600"`
	// User contains the authenticated operator information.
	User UserResponse `json:"user"`
} // @name LoginResponse

// Claims represents JWT claims carried by access tokens.
type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name"`
}

// UserResponse represents operator information in API responses.
type UserResponse struct {
	// Email is the operator's email address.
	Email string `json:"email" example:"operator@example.com"`
	// Name is the operator's full name.
	Name string `json:"name,omitempty" example:"Jane Doe"`
} // @name UserResponse

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{
			Field:   "email",
			Message: "email is required",
		}
	}
	if len(r.Password) < 6 {
		return &ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		}
	}
	return nil
}
