package repository

import (
	"context"
	"errors"
	"fmt"

	"gym_admin/internal/common"
	"gym_admin/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *model.Package) error
	FindByID(ctx context.Context, id string) (*model.Package, error)
	List(ctx context.Context, isActive *bool) ([]model.Package, error)
	Update(ctx context.Context, pkg *model.Package) error
	Delete(ctx context.Context, id string) error
}

type mongoPackageRepository struct {
	coll *mongo.Collection
}

func NewMongoPackageRepository(db *mongo.Database) PackageRepository {
	return &mongoPackageRepository{coll: db.Collection("packages")}
}

func (r *mongoPackageRepository) Create(ctx context.Context, pkg *model.Package) error {
	if _, err := r.coll.InsertOne(ctx, pkg); err != nil {
		return fmt.Errorf("mongoPackageRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoPackageRepository) FindByID(ctx context.Context, id string) (*model.Package, error) {
	pkg := &model.Package{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(pkg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoPackageRepository.FindByID: %w", err)
	}
	return pkg, nil
}

func (r *mongoPackageRepository) List(ctx context.Context, isActive *bool) ([]model.Package, error) {
	query := bson.M{}
	if isActive != nil {
		query["is_active"] = *isActive
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("mongoPackageRepository.List: %w", err)
	}
	packages := []model.Package{}
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("mongoPackageRepository.List: decode: %w", err)
	}
	return packages, nil
}

func (r *mongoPackageRepository) Update(ctx context.Context, pkg *model.Package) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": pkg.ID}, pkg)
	if err != nil {
		return fmt.Errorf("mongoPackageRepository.Update: %w", err)
	}
	if result.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *mongoPackageRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongoPackageRepository.Delete: %w", err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}
