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

type MembershipFilters struct {
	Status   model.MembershipStatus
	MemberID string
	Limit    int
	Offset   int
}

// PackageUsage is one row of the per-package usage aggregation: how many
// non-cancelled memberships reference the package and what they earned.
type PackageUsage struct {
	PackageID string  `json:"package_id" bson:"_id"`
	Name      string  `json:"name" bson:"name"`
	Count     int64   `json:"count" bson:"count"`
	Revenue   float64 `json:"revenue" bson:"revenue"`
}

type MembershipRepository interface {
	Create(ctx context.Context, membership *model.Membership) error
	FindByID(ctx context.Context, id string) (*model.Membership, error)
	List(ctx context.Context, filters MembershipFilters) ([]model.Membership, int64, error)
	Update(ctx context.Context, membership *model.Membership) error
	UpdateStatus(ctx context.Context, id string, status model.MembershipStatus) (*model.Membership, error)
	CountByStatus(ctx context.Context, status model.MembershipStatus) (int64, error)
	FindExpiring(ctx context.Context, from, to time.Time, limit int) ([]model.Membership, error)
	FindActiveByMember(ctx context.Context, memberID string) (*model.Membership, error)
	RevenueBetween(ctx context.Context, from, to time.Time) (float64, error)
	PackageUsage(ctx context.Context) ([]PackageUsage, error)
}

type mongoMembershipRepository struct {
	coll *mongo.Collection
}

func NewMongoMembershipRepository(db *mongo.Database) MembershipRepository {
	return &mongoMembershipRepository{coll: db.Collection("memberships")}
}

func (r *mongoMembershipRepository) Create(ctx context.Context, membership *model.Membership) error {
	if _, err := r.coll.InsertOne(ctx, membership); err != nil {
		return fmt.Errorf("mongoMembershipRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoMembershipRepository) FindByID(ctx context.Context, id string) (*model.Membership, error) {
	membership := &model.Membership{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(membership)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoMembershipRepository.FindByID: %w", err)
	}
	return membership, nil
}

func (r *mongoMembershipRepository) List(ctx context.Context, filters MembershipFilters) ([]model.Membership, int64, error) {
	query := bson.M{}
	if filters.Status != "" {
		query["status"] = filters.Status
	}
	if filters.MemberID != "" {
		query["member_id"] = filters.MemberID
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("mongoMembershipRepository.List: count: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filters.Offset)).
		SetLimit(int64(filters.Limit))
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("mongoMembershipRepository.List: %w", err)
	}
	memberships := []model.Membership{}
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, 0, fmt.Errorf("mongoMembershipRepository.List: decode: %w", err)
	}
	return memberships, total, nil
}

func (r *mongoMembershipRepository) Update(ctx context.Context, membership *model.Membership) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": membership.ID}, membership)
	if err != nil {
		return fmt.Errorf("mongoMembershipRepository.Update: %w", err)
	}
	if result.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *mongoMembershipRepository) UpdateStatus(ctx context.Context, id string, status model.MembershipStatus) (*model.Membership, error) {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	membership := &model.Membership{}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(membership)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoMembershipRepository.UpdateStatus: %w", err)
	}
	return membership, nil
}

func (r *mongoMembershipRepository) CountByStatus(ctx context.Context, status model.MembershipStatus) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("mongoMembershipRepository.CountByStatus: %w", err)
	}
	return total, nil
}

func (r *mongoMembershipRepository) FindExpiring(ctx context.Context, from, to time.Time, limit int) ([]model.Membership, error) {
	query := bson.M{
		"status":   model.MembershipStatusActive,
		"end_date": bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "end_date", Value: 1}}).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("mongoMembershipRepository.FindExpiring: %w", err)
	}
	memberships := []model.Membership{}
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, fmt.Errorf("mongoMembershipRepository.FindExpiring: decode: %w", err)
	}
	return memberships, nil
}

func (r *mongoMembershipRepository) FindActiveByMember(ctx context.Context, memberID string) (*model.Membership, error) {
	query := bson.M{"member_id": memberID, "status": model.MembershipStatusActive}
	opts := options.FindOne().SetSort(bson.D{{Key: "end_date", Value: -1}})

	membership := &model.Membership{}
	err := r.coll.FindOne(ctx, query, opts).Decode(membership)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoMembershipRepository.FindActiveByMember: %w", err)
	}
	return membership, nil
}

func (r *mongoMembershipRepository) RevenueBetween(ctx context.Context, from, to time.Time) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"created_at": bson.M{"$gte": from, "$lt": to},
			"status":     bson.M{"$ne": model.MembershipStatusCancelled},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$price"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("mongoMembershipRepository.RevenueBetween: %w", err)
	}
	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("mongoMembershipRepository.RevenueBetween: decode: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *mongoMembershipRepository) PackageUsage(ctx context.Context) ([]PackageUsage, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"status": bson.M{"$ne": model.MembershipStatusCancelled},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     "$package_id",
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$price"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "packages",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "package_info",
		}}},
		bson.D{{Key: "$unwind", Value: "$package_info"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":     1,
			"count":   1,
			"revenue": 1,
			"name":    "$package_info.name",
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"count": -1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("mongoMembershipRepository.PackageUsage: %w", err)
	}
	usage := []PackageUsage{}
	if err := cursor.All(ctx, &usage); err != nil {
		return nil, fmt.Errorf("mongoMembershipRepository.PackageUsage: decode: %w", err)
	}
	return usage, nil
}
