package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// priority is a struct-wrapped enumeration, the shape the document store
// cannot hold directly.
type priority struct {
	name  string
	level int
}

func (p priority) EnumValue() any { return p.name }

func TestNormalizeValueFlattensEnums(t *testing.T) {
	high := priority{name: "high", level: 3}

	assert.Equal(t, "high", normalizeValue(high))
	assert.Equal(t, "plain", normalizeValue("plain"))
	assert.Equal(t, 42, normalizeValue(42))
}

func TestNormalizeValueWalksNestedShapes(t *testing.T) {
	in := map[string]any{
		"priority": priority{name: "low", level: 1},
		"nested": bson.M{
			"priority": priority{name: "high", level: 3},
			"count":    2,
		},
		"history": []any{priority{name: "low", level: 1}, "kept"},
	}
	got := normalizeValue(in).(map[string]any)

	assert.Equal(t, "low", got["priority"])
	assert.Equal(t, bson.M{"priority": "high", "count": 2}, got["nested"])
	assert.Equal(t, []any{"low", "kept"}, got["history"])
}

func TestNotDeletedMergesFilter(t *testing.T) {
	filter := notDeleted(bson.M{"_id": "abc"})
	assert.Equal(t, bson.M{"deleted": false, "_id": "abc"}, filter)

	// The base filter alone still pins the soft-delete flag.
	assert.Equal(t, bson.M{"deleted": false}, notDeleted(nil))
}
