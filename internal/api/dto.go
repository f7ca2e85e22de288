package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateChecklistRequest carries the form fields for creating a checklist.
type CreateChecklistRequest struct {
	Title       string
	Description string
}

func checklistRequestFromForm(r *http.Request) CreateChecklistRequest {
	return CreateChecklistRequest{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
	}
}

// Validate enforces the required-title invariant.
func (r CreateChecklistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
	)
}

// ItemRequest carries the form fields for creating or updating an item.
type ItemRequest struct {
	Title string
	Notes string
}

func itemRequestFromForm(r *http.Request) ItemRequest {
	return ItemRequest{
		Title: r.PostFormValue("title"),
		Notes: r.PostFormValue("notes"),
	}
}

// Validate enforces the required-title invariant.
func (r ItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
	)
}

// SignInRequest carries sign-in credentials.
type SignInRequest struct {
	Email    string
	Password string
}

// Validate checks that both credentials are present.
func (r SignInRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
	)
}

// SignUpRequest carries the fields for creating an account.
type SignUpRequest struct {
	Email    string
	Name     string
	Password string
}

// Validate checks the signup fields.
func (r SignUpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 0)),
	)
}
