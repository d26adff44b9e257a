package mongo

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/FabianaArciniegas/joker-task/internal/domain"
	domerrors "github.com/FabianaArciniegas/joker-task/internal/domain/errors"
)

// Repository provides the shared document operations for one entity type.
// Reads filter on the soft-delete flag; every write restamps updated_at.
// The entity id is immutable and mapped to _id on every write path.
type Repository[T domain.Entity] struct {
	coll *mongo.Collection
}

// NewRepository binds the entity type to its collection.
func NewRepository[T domain.Entity](db *mongo.Database) *Repository[T] {
	var zero T
	return &Repository[T]{coll: db.Collection(zero.Collection())}
}

// notDeleted is the live-record filter applied to every read.
func notDeleted(extra bson.M) bson.M {
	filter := bson.M{"deleted": false}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

// Create inserts the entity with its id as the primary key. The document
// encoder flattens typed fields through their bson mapping; map-shaped
// values pass through normalizeValue first.
func (r *Repository[T]) Create(ctx context.Context, entity T) error {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("collection", r.coll.Name()).Str("id", entity.GetID()).Msg("creating instance")
	if _, err := r.coll.InsertOne(ctx, entity); err != nil {
		return err
	}
	log.Debug().Str("collection", r.coll.Name()).Msg("instance created")
	return nil
}

// GetByID returns the live entity, or a not-found error. Callers that
// tolerate absence check errors.Is against the not-found kind.
func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var out T
	err := r.coll.FindOne(ctx, notDeleted(bson.M{"_id": id})).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return out, domerrors.New(domerrors.NotFound, domerrors.LocationPath, "instance %s not found in %s", id, r.coll.Name())
	}
	if err != nil {
		return out, err
	}
	return out, nil
}

// GetAll returns every live entity; an empty result set is a not-found
// error, suppressible the same way as GetByID.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	cursor, err := r.coll.Find(ctx, notDeleted(nil))
	if err != nil {
		return nil, err
	}
	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, domerrors.New(domerrors.NotFound, domerrors.LocationPath, "there are no instances in %s", r.coll.Name())
	}
	return out, nil
}

// Patch applies only the supplied fields to the live entity, restamps
// updated_at, and returns the updated document. The id and creation
// timestamp are immutable and stripped if present.
func (r *Repository[T]) Patch(ctx context.Context, id string, fields map[string]any) (T, error) {
	var out T
	zerolog.Ctx(ctx).Debug().Str("collection", r.coll.Name()).Str("id", id).Msg("patching instance")
	set := bson.M{}
	for k, v := range fields {
		switch k {
		case "_id", "id", "created_at":
			continue
		}
		set[k] = normalizeValue(v)
	}
	set["updated_at"] = time.Now().UTC()
	err := r.coll.FindOneAndUpdate(
		ctx,
		notDeleted(bson.M{"_id": id}),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return out, domerrors.New(domerrors.NotFound, domerrors.LocationPath, "instance %s not found in %s", id, r.coll.Name())
	}
	if err != nil {
		return out, err
	}
	return out, nil
}

// Delete soft-deletes: the flag is set and reads stop returning the
// document. Records are never physically removed.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	zerolog.Ctx(ctx).Debug().Str("collection", r.coll.Name()).Str("id", id).Msg("deleting instance")
	res, err := r.coll.UpdateOne(
		ctx,
		notDeleted(bson.M{"_id": id}),
		bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domerrors.New(domerrors.NotFound, domerrors.LocationPath, "instance %s not found in %s", id, r.coll.Name())
	}
	return nil
}

// countLive counts live documents matching the filter; used by the
// uniqueness guards.
func (r *Repository[T]) countLive(ctx context.Context, filter bson.M) (int64, error) {
	return r.coll.CountDocuments(ctx, notDeleted(filter))
}

// normalizeValue flattens enumeration wrappers (and any nested maps or
// slices holding them) to their storage primitive. The document store only
// holds native values.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case domain.Enum:
		return val.EnumValue()
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeValue(item)
		}
		return out
	case bson.M:
		out := make(bson.M, len(val))
		for k, item := range val {
			out[k] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}
