package models

import (
	"encoding/json"
	"sort"
)

// User is the profile record returned by the auth endpoints.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	FullName  string `json:"fullName,omitempty"`
	Role      string `json:"role,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

// DisplayName picks the most readable name available.
func (u *User) DisplayName() string {
	switch {
	case u == nil:
		return ""
	case u.FullName != "":
		return u.FullName
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.Username != "":
		return u.Username
	default:
		return u.Email
	}
}

// Merge returns a copy of u with the named JSON fields of patch applied,
// empty values included. With no fields every field of patch is applied.
// A nil receiver yields a copy of patch.
func (u *User) Merge(patch *User, fields ...string) *User {
	if patch == nil {
		if u == nil {
			return nil
		}
		c := *u
		return &c
	}
	var out User
	if u != nil {
		out = *u
	}
	if len(fields) == 0 {
		fields = userFields
	}
	src := *patch
	for _, f := range fields {
		if dst := out.field(f); dst != nil {
			*dst = *src.field(f)
		}
	}
	return &out
}

var userFields = []string{"id", "username", "email", "firstName", "lastName", "fullName", "role", "avatar", "bio"}

func (u *User) field(name string) *string {
	switch name {
	case "id":
		return &u.ID
	case "username":
		return &u.Username
	case "email":
		return &u.Email
	case "firstName":
		return &u.FirstName
	case "lastName":
		return &u.LastName
	case "fullName":
		return &u.FullName
	case "role":
		return &u.Role
	case "avatar":
		return &u.Avatar
	case "bio":
		return &u.Bio
	}
	return nil
}

// LoginRequest is the body of POST /auth/login. Identifier is an email or
// a username.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// ProfileUpdate is the partial body of PUT /auth/profile. Nil fields are
// omitted from the request.
type ProfileUpdate struct {
	FirstName       *string `json:"firstName,omitempty"`
	LastName        *string `json:"lastName,omitempty"`
	Email           *string `json:"email,omitempty"`
	Username        *string `json:"username,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	Avatar          *string `json:"avatar,omitempty"`
	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     *string `json:"newPassword,omitempty"`
}

// AuthData is the data payload of login and register.
type AuthData struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// ProfileData is the data payload of profile endpoints. Fields lists the
// user keys present in the decoded payload, so a field the server cleared
// can be told apart from one it left out.
type ProfileData struct {
	User   *User    `json:"user"`
	Fields []string `json:"-"`
}

func (d *ProfileData) UnmarshalJSON(b []byte) error {
	var raw struct {
		User json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	d.User, d.Fields = nil, nil
	if len(raw.User) == 0 || string(raw.User) == "null" {
		return nil
	}
	var u User
	if err := json.Unmarshal(raw.User, &u); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw.User, &keys); err != nil {
		return err
	}
	d.User = &u
	for k := range keys {
		d.Fields = append(d.Fields, k)
	}
	sort.Strings(d.Fields)
	return nil
}

type (
	AuthResponse    = Envelope[AuthData]
	ProfileResponse = Envelope[ProfileData]
)
