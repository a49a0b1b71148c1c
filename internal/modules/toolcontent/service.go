package toolcontent

import (
	"context"
	"errors"
	"time"

	"github.com/meritlives/tools-core/internal/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "tool_contents"

// Service stores generated tool content in MongoDB.
type Service struct {
	mc *mongodb.Client
}

func NewService(mc *mongodb.Client) *Service { return &Service{mc: mc} }

func (s *Service) collection() *mongo.Collection {
	return s.mc.Collection(collectionName)
}

// Save persists a generation result. savedLimit < 0 means unlimited; otherwise
// the user's existing document count is checked first.
func (s *Service) Save(ctx context.Context, rec ContentRecord, savedLimit int) (string, error) {
	if savedLimit >= 0 {
		count, err := s.CountByUser(ctx, rec.UserID)
		if err != nil {
			return "", err
		}
		if count >= int64(savedLimit) {
			return "", ErrSavedLimit
		}
	}

	now := time.Now()
	rec.ID = primitive.NewObjectID()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if _, err := s.collection().InsertOne(ctx, rec); err != nil {
		return "", err
	}
	return rec.ID.Hex(), nil
}

// List returns the user's saved content newest first, optionally filtered by
// tool and favorites.
func (s *Service) List(ctx context.Context, userID, toolID string, favoritesOnly bool, page, size int) ([]ContentRecord, int64, error) {
	filter := bson.M{"user_id": userID}
	if toolID != "" {
		filter["tool_id"] = toolID
	}
	if favoritesOnly {
		filter["favorite"] = true
	}

	total, err := s.collection().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size))

	cursor, err := s.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	records := make([]ContentRecord, 0, size)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// Get fetches one record owned by userID.
func (s *Service) Get(ctx context.Context, userID, id string) (*ContentRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjID
	}

	var rec ContentRecord
	err = s.collection().FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes one record owned by userID.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidObjID
	}
	res, err := s.collection().DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errNotFound
	}
	return nil
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (s *Service) ToggleFavorite(ctx context.Context, userID, id string) (bool, error) {
	rec, err := s.Get(ctx, userID, id)
	if err != nil {
		return false, err
	}

	next := !rec.Favorite
	_, err = s.collection().UpdateOne(ctx,
		bson.M{"_id": rec.ID, "user_id": userID},
		bson.M{"$set": bson.M{"favorite": next, "updated_at": time.Now()}},
	)
	if err != nil {
		return false, err
	}
	return next, nil
}

// CountByUser counts all saved documents for a user.
func (s *Service) CountByUser(ctx context.Context, userID string) (int64, error) {
	return s.collection().CountDocuments(ctx, bson.M{"user_id": userID})
}
