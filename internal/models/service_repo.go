package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) CreateService(ctx context.Context, service *Service) (*Service, error) {
	col, err := mdb.GetCollection(ctx, ServiceColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now
	if service.ID.IsZero() {
		service.ID = primitive.NewObjectID()
	}

	if _, err := col.InsertOne(ctx, service); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, NewValidationError("service with this name already exists")
		}
		return nil, fmt.Errorf("error inserting service: %v", err)
	}

	return service, nil
}

func (mdb *MongodbRepo) GetServiceByID(ctx context.Context, id primitive.ObjectID) (*Service, error) {
	col, err := mdb.GetCollection(ctx, ServiceColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var service Service
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&service)
	if err == mongo.ErrNoDocuments {
		return nil, NewNotFoundError("service not found")
	}
	if err != nil {
		return nil, fmt.Errorf("error finding service by ID: %v", err)
	}

	return &service, nil
}

func (mdb *MongodbRepo) ListServices(ctx context.Context, filter ServiceFilter) ([]*Service, error) {
	col, err := mdb.GetCollection(ctx, ServiceColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	query := bson.M{}
	if filter.Category != nil {
		query["category"] = *filter.Category
	}
	if filter.IsActive != nil {
		query["is_active"] = *filter.IsActive
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding services: %v", err)
	}
	defer cursor.Close(ctx)

	var services []*Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %v", err)
	}

	return services, nil
}

func (mdb *MongodbRepo) UpdateService(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*Service, error) {
	col, err := mdb.GetCollection(ctx, ServiceColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	set := bson.M{"updated_at": time.Now()}
	for k, v := range update {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var service Service
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&service)
	if err == mongo.ErrNoDocuments {
		return nil, NewNotFoundError("service not found")
	}
	if err != nil {
		return nil, fmt.Errorf("error updating service: %v", err)
	}

	return &service, nil
}

func (mdb *MongodbRepo) DeleteService(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, ServiceColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting service: %v", err)
	}
	if res.DeletedCount == 0 {
		return NewNotFoundError("service not found")
	}
	return nil
}

func (mdb *MongodbRepo) SetServiceActive(ctx context.Context, id primitive.ObjectID, active bool) (*Service, error) {
	return mdb.UpdateService(ctx, id, map[string]interface{}{"is_active": active})
}

func (mdb *MongodbRepo) CountActiveServices(ctx context.Context) (int64, error) {
	col, err := mdb.GetCollection(ctx, ServiceColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}
	return col.CountDocuments(ctx, bson.M{"is_active": true})
}
