package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity is implemented by every persisted document type. It supplies the
// collection the type lives in and the primary key mapped to _id.
type Entity interface {
	Collection() string
	GetID() string
}

// Enum is implemented by typed enumeration fields. The persistence layer
// flattens implementers to their underlying primitive before writing, since
// the document store only holds storage-native values.
type Enum interface {
	EnumValue() any
}

// Model carries the fields shared by every document: primary key,
// timestamps, and the soft-delete flag reads filter on.
type Model struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	Deleted   bool      `bson:"deleted" json:"-"`
}

// NewModel assigns a fresh id and creation timestamps.
func NewModel() Model {
	now := time.Now().UTC()
	return Model{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetID returns the primary key.
func (m Model) GetID() string { return m.ID }
