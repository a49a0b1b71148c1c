package toolcontent

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentRecord is a generated-tool-output document. Output payloads differ
// per tool so they are stored schemaless.
type ContentRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"        json:"id"`
	UserID    string             `bson:"user_id"              json:"user_id"`
	ToolID    string             `bson:"tool_id"              json:"tool_id"`
	Title     string             `bson:"title,omitempty"      json:"title,omitempty"`
	Input     interface{}        `bson:"input"                json:"input"`
	Output    interface{}        `bson:"output"               json:"output"`
	Favorite  bool               `bson:"favorite"             json:"favorite"`
	CreatedAt time.Time          `bson:"created_at"           json:"created"`
	UpdatedAt time.Time          `bson:"updated_at"           json:"modified"`
}

var (
	errNotFound     = errors.New("content not found")
	ErrSavedLimit   = errors.New("saved content limit reached")
	ErrInvalidObjID = errors.New("invalid content id")
)

// IsNotFound reports whether err means the record does not exist or belongs
// to another user.
func IsNotFound(err error) bool { return errors.Is(err, errNotFound) }
