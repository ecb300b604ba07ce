package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthor_UnmarshalString(t *testing.T) {
	var p Post
	err := json.Unmarshal([]byte(`{"_id":"p1","title":"t","content":"c","author":"u1"}`), &p)
	require.NoError(t, err)

	assert.Equal(t, "u1", p.Author.ID)
	assert.Nil(t, p.Author.User)
}

func TestAuthor_UnmarshalObject(t *testing.T) {
	var p Post
	err := json.Unmarshal([]byte(`{"_id":"p1","title":"t","content":"c","author":{"_id":"u1","name":"Alice"}}`), &p)
	require.NoError(t, err)

	assert.Equal(t, "u1", p.Author.ID)
	require.NotNil(t, p.Author.User)
	assert.Equal(t, "Alice", p.Author.User.Name)
}

func TestAuthor_UnmarshalNull(t *testing.T) {
	var p Post
	err := json.Unmarshal([]byte(`{"_id":"p1","author":null}`), &p)
	require.NoError(t, err)
	assert.Empty(t, p.Author.ID)
}

func TestAuthor_MarshalRoundTrip(t *testing.T) {
	p := Post{ID: "p1", Title: "t", Content: "c", Author: Author{ID: "u1"}}
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got Post
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "u1", got.Author.ID)
}

func TestPost_OwnedBy(t *testing.T) {
	alice := &User{ID: "u1", Name: "Alice"}

	tests := []struct {
		name string
		post Post
		user *User
		want bool
	}{
		{"direct id match", Post{Author: Author{ID: "u1"}}, alice, true},
		{"embedded user match", Post{Author: Author{User: &User{ID: "u1"}}}, alice, true},
		{"other author", Post{Author: Author{ID: "u2"}}, alice, false},
		{"nil user", Post{Author: Author{ID: "u1"}}, nil, false},
		{"empty user id", Post{Author: Author{ID: ""}}, &User{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.post.OwnedBy(tc.user))
		})
	}
}
