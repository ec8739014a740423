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

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}

	if _, err := col.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("error inserting booking: %v", err)
	}

	return booking, nil
}

func (mdb *MongodbRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var booking Booking
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, NewNotFoundError("booking not found")
	}
	if err != nil {
		return nil, fmt.Errorf("error finding booking by ID: %v", err)
	}

	return &booking, nil
}

// GetBookingForUser folds ownership into existence: a booking owned by
// someone else is indistinguishable from a missing one.
func (mdb *MongodbRepo) GetBookingForUser(ctx context.Context, id, userID primitive.ObjectID) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var booking Booking
	err = col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, NewNotFoundError("booking not found")
	}
	if err != nil {
		return nil, fmt.Errorf("error finding booking: %v", err)
	}

	return &booking, nil
}

func (mdb *MongodbRepo) ListBookingsByUser(ctx context.Context, userID primitive.ObjectID, skip, limit int) ([]*Booking, int64, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"user_id": userID}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []*Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("error decoding bookings: %v", err)
	}

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting bookings: %v", err)
	}

	return bookings, total, nil
}

func (mdb *MongodbRepo) SetBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking Booking
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, NewNotFoundError("booking not found")
	}
	if err != nil {
		return nil, fmt.Errorf("error updating booking status: %v", err)
	}

	return &booking, nil
}

// bookingOwnerLookup joins owner name/email from the users collection into
// each booking document, mirroring the admin views.
var bookingOwnerLookup = []bson.M{
	{"$lookup": bson.M{
		"from":         UserColName,
		"localField":   "user_id",
		"foreignField": "_id",
		"as":           "user",
	}},
	{"$unwind": bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}},
	{"$addFields": bson.M{"user": bson.M{"name": "$user.name", "email": "$user.email"}}},
}

func (mdb *MongodbRepo) ListAllBookings(ctx context.Context) ([]*AdminBooking, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	pipeline := []bson.M{
		{"$sort": bson.M{"created_at": -1}},
	}
	pipeline = append(pipeline, bookingOwnerLookup...)

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []*AdminBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %v", err)
	}

	return bookings, nil
}

func (mdb *MongodbRepo) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*AdminBooking, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}
	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("error updating booking status: %v", err)
	}
	if res.MatchedCount == 0 {
		return nil, NewNotFoundError("booking not found")
	}

	pipeline := []bson.M{
		{"$match": bson.M{"_id": id}},
	}
	pipeline = append(pipeline, bookingOwnerLookup...)

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error fetching updated booking: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []*AdminBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding updated booking: %v", err)
	}
	if len(bookings) == 0 {
		return nil, NewNotFoundError("booking not found")
	}

	return bookings[0], nil
}

func (mdb *MongodbRepo) CountBookings(ctx context.Context) (int64, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}
	return col.CountDocuments(ctx, bson.M{})
}

func (mdb *MongodbRepo) CountBookingsByStatus(ctx context.Context, status string) (int64, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}
	return col.CountDocuments(ctx, bson.M{"status": status})
}

// SumRevenue totals amounts over confirmed and completed bookings only.
func (mdb *MongodbRepo) SumRevenue(ctx context.Context) (float64, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	pipeline := []bson.M{
		{"$match": bson.M{"status": bson.M{"$in": []string{StatusConfirmed, StatusCompleted}}}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$total_amount"}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("error aggregating revenue: %v", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding revenue: %v", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
