package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Author is the minimal projection attached to feed items and comments.
// It is nil when the underlying user row could not be resolved.
type Author struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
}

type Post struct {
	ID            uuid.UUID `json:"id"`
	AuthorID      uuid.UUID `json:"author_id"`
	Content       string    `json:"content"`
	Images        []string  `json:"images"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	Author        *Author   `json:"author"`
}

type CreatePostParams struct {
	AuthorID uuid.UUID
	Content  string
	Images   []string
}

// DecodeImageList normalizes the stored images column into a list. Historic
// rows held a bare string, null, or junk; all of those degrade to a usable
// value instead of failing the read.
func DecodeImageList(raw string) []string {
	if raw == "" || raw == "null" {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		out := make([]string, 0, len(list))
		for _, img := range list {
			if img != "" {
				out = append(out, img)
			}
		}
		return out
	}

	var single string
	if err := json.Unmarshal([]byte(raw), &single); err == nil {
		if single == "" {
			return []string{}
		}
		return []string{single}
	}

	return []string{}
}

// EncodeImageList serializes the canonical list form written to storage.
func EncodeImageList(images []string) string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if img != "" {
			out = append(out, img)
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "[]"
	}
	return string(data)
}
