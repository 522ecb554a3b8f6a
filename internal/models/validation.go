package models

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// notBlank rejects empty and whitespace-only strings.
var notBlank = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
})

// Normalize trims the email and lowercases it. The password is kept verbatim.
func (c *Credentials) Normalize() {
	c.Email = normalizeEmail(c.Email)
}

// Validate checks that email is a well-formed address and password is present.
func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required, is.Email),
		validation.Field(&c.Password, notBlank),
	)
}

func (p *UserPatch) Normalize() {
	if p.Email != nil {
		e := normalizeEmail(*p.Email)
		p.Email = &e
	}
	p.FirstName = trimPtr(p.FirstName)
	p.LastName = trimPtr(p.LastName)
}

func (p UserPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.NilOrNotEmpty, is.Email),
		validation.Field(&p.FirstName, validation.Length(0, 200)),
		validation.Field(&p.LastName, validation.Length(0, 200)),
	)
}

func (in *BookmarkInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Link = strings.TrimSpace(in.Link)
	in.Description = trimPtr(in.Description)
}

// Validate requires title and link; description is optional.
func (in BookmarkInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&in.Link, validation.Required, validation.Length(1, 2048)),
	)
}

func (p *BookmarkPatch) Normalize() {
	p.Title = trimPtr(p.Title)
	p.Link = trimPtr(p.Link)
	p.Description = trimPtr(p.Description)
}

// Validate allows any field to be omitted but rejects supplied blanks for title and link.
func (p BookmarkPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NilOrNotEmpty, validation.Length(1, 500)),
		validation.Field(&p.Link, validation.NilOrNotEmpty, validation.Length(1, 2048)),
	)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
