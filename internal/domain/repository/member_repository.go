package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gym_admin/internal/common"
	"gym_admin/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MemberFilters narrows member list queries. Search matches first name, last
// name, email and phone case-insensitively.
type MemberFilters struct {
	Search string
	Status model.MemberStatus
	Limit  int
	Offset int
}

type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	FindByID(ctx context.Context, id string) (*model.Member, error)
	FindByEmail(ctx context.Context, email string) (*model.Member, error)
	List(ctx context.Context, filters MemberFilters) ([]model.Member, int64, error)
	Update(ctx context.Context, member *model.Member) error
	UpdateStatus(ctx context.Context, id string, status model.MemberStatus) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.MemberStatus) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	Recent(ctx context.Context, limit int) ([]model.Member, error)
}

type mongoMemberRepository struct {
	coll *mongo.Collection
}

func NewMongoMemberRepository(db *mongo.Database) MemberRepository {
	return &mongoMemberRepository{coll: db.Collection("members")}
}

func (r *mongoMemberRepository) Create(ctx context.Context, member *model.Member) error {
	if _, err := r.coll.InsertOne(ctx, member); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("member with given email already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("mongoMemberRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoMemberRepository) FindByID(ctx context.Context, id string) (*model.Member, error) {
	member := &model.Member{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoMemberRepository.FindByID: %w", err)
	}
	return member, nil
}

func (r *mongoMemberRepository) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	member := &model.Member{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoMemberRepository.FindByEmail: %w", err)
	}
	return member, nil
}

func (r *mongoMemberRepository) List(ctx context.Context, filters MemberFilters) ([]model.Member, int64, error) {
	query := bson.M{}
	if filters.Search != "" {
		regex := bson.M{"$regex": filters.Search, "$options": "i"}
		query["$or"] = []bson.M{
			{"first_name": regex},
			{"last_name": regex},
			{"email": regex},
			{"phone": regex},
		}
	}
	if filters.Status != "" {
		query["status"] = filters.Status
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("mongoMemberRepository.List: count: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filters.Offset)).
		SetLimit(int64(filters.Limit))
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("mongoMemberRepository.List: %w", err)
	}
	members := []model.Member{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, 0, fmt.Errorf("mongoMemberRepository.List: decode: %w", err)
	}
	return members, total, nil
}

func (r *mongoMemberRepository) Update(ctx context.Context, member *model.Member) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": member.ID}, member)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("member with given email already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("mongoMemberRepository.Update: %w", err)
	}
	if result.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *mongoMemberRepository) UpdateStatus(ctx context.Context, id string, status model.MemberStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("mongoMemberRepository.UpdateStatus: %w", err)
	}
	if result.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *mongoMemberRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongoMemberRepository.Delete: %w", err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *mongoMemberRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("mongoMemberRepository.Count: %w", err)
	}
	return total, nil
}

func (r *mongoMemberRepository) CountByStatus(ctx context.Context, status model.MemberStatus) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("mongoMemberRepository.CountByStatus: %w", err)
	}
	return total, nil
}

func (r *mongoMemberRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	query := bson.M{"created_at": bson.M{"$gte": from, "$lt": to}}
	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("mongoMemberRepository.CountCreatedBetween: %w", err)
	}
	return total, nil
}

func (r *mongoMemberRepository) Recent(ctx context.Context, limit int) ([]model.Member, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongoMemberRepository.Recent: %w", err)
	}
	members := []model.Member{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("mongoMemberRepository.Recent: decode: %w", err)
	}
	return members, nil
}
