package author

import (
	"BlogPlatform/internal/entity"
	"BlogPlatform/internal/validation"
	"strings"
	"time"
)

type RegisterAuthorRequest struct {
	FirstName string `json:"fname" validate:"nonempty"`
	LastName  string `json:"lname" validate:"nonempty"`
	Title     string `json:"title" validate:"nonempty,honorific"`
	Email     string `json:"email" validate:"nonempty,blogemail"`
	Password  string `json:"password" validate:"nonempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"nonempty,blogemail"`
	Password string `json:"password" validate:"nonempty"`
}

// NormalizeEmail returns the stored form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Normalize folds the email before validation so surrounding blanks and
// letter case never reject an address.
func (r *RegisterAuthorRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

func (r *LoginRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

var RegisterMessages = validation.Messages{
	"fname.nonempty":    "First name is required",
	"lname.nonempty":    "Last name is required",
	"title.nonempty":    "Title is required",
	"title.honorific":   "Title should be one of " + strings.Join(validation.Titles(), ", "),
	"email.nonempty":    "Email is required",
	"email.blogemail":   "Email should be a valid email address",
	"password.nonempty": "Password is required",
}

var LoginMessages = validation.Messages{
	"email.nonempty":    "Email is required",
	"email.blogemail":   "Email should be a valid email address",
	"password.nonempty": "Password is required",
}

// AuthorResponse never carries the password hash.
type AuthorResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"fname"`
	LastName  string    `json:"lname"`
	Title     string    `json:"title"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	AuthorID  string `json:"authorId"`
	ExpiresAt int64  `json:"expiresAt"`
}

func MakeAuthorResponse(a entity.Author) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Title:     a.Title,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
