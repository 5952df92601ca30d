package model

import "encoding/json"

// Role distinguishes the two kinds of accounts on the platform
type Role string

const (
	RoleDesigner Role = "designer"
	RolePlayer   Role = "player"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleDesigner || r == RolePlayer
}

// Identity is the authenticated user's profile snapshot.
// It is replaced wholesale on every profile fetch, never mutated in place.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Points   int    `json:"points,omitempty"`
}

// User is a platform user as listed by the users and follow endpoints
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Points   int    `json:"points,omitempty"`
}

// The backend emits Mongo-style "_id" on some endpoints and "id" on others.
// Accept both on decode; always emit "id".

type userAlias User

type userWire struct {
	userAlias
	MongoID string `json:"_id"`
}

// UnmarshalJSON decodes a user, accepting either "id" or "_id"
func (u *User) UnmarshalJSON(data []byte) error {
	var w userWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*u = User(w.userAlias)
	if u.ID == "" {
		u.ID = w.MongoID
	}
	return nil
}

type identityAlias Identity

type identityWire struct {
	identityAlias
	MongoID string `json:"_id"`
}

// UnmarshalJSON decodes an identity, accepting either "id" or "_id"
func (id *Identity) UnmarshalJSON(data []byte) error {
	var w identityWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*id = Identity(w.identityAlias)
	if id.ID == "" {
		id.ID = w.MongoID
	}
	return nil
}
