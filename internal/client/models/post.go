package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Author references the user who wrote a post. The backend serializes it
// either as a bare user ID string or, when the record is populated, as an
// embedded user object. Both forms decode into the same value.
type Author struct {
	ID   string
	User *User
}

func (a *Author) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Author{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("failed to decode author id: %w", err)
		}
		*a = Author{ID: id}
		return nil
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return fmt.Errorf("failed to decode author object: %w", err)
	}
	*a = Author{ID: u.ID, User: &u}
	return nil
}

func (a Author) MarshalJSON() ([]byte, error) {
	if a.User != nil {
		return json.Marshal(a.User)
	}
	return json.Marshal(a.ID)
}

// Post is a single blog entry. Posts are replaced, not patched, on update.
type Post struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Image     string `json:"image,omitempty"`
	Author    Author `json:"author"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// OwnedBy reports whether u is the author of the post, matching either the
// direct author ID or the embedded user's ID. This is a UX guard only; the
// server enforces ownership independently.
func (p *Post) OwnedBy(u *User) bool {
	if u == nil || u.ID == "" {
		return false
	}
	if p.Author.ID == u.ID {
		return true
	}
	return p.Author.User != nil && p.Author.User.ID == u.ID
}
