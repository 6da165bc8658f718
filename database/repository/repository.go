package repository

import (
	"context"

	bookingRepo "eazywed/database/repository/booking"
	catalogRepo "eazywed/database/repository/catalog"
	estimationRepo "eazywed/database/repository/estimation"
	reviewRepo "eazywed/database/repository/review"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces and constructors.
type EstimationRepository = estimationRepo.EstimationRepository

var NewMongoEstimationRepo = estimationRepo.NewMongoEstimationRepo

type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

type ReviewRepository = reviewRepo.ReviewRepository

var NewMongoReviewRepo = reviewRepo.NewMongoReviewRepo

type CatalogRepository = catalogRepo.CatalogRepository

var NewMongoCatalogRepo = catalogRepo.NewMongoCatalogRepo

// EnsureIndexes creates the indexes of every collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, ensure := range []func(context.Context, *mongo.Database) error{
		estimationRepo.EnsureIndexes,
		bookingRepo.EnsureIndexes,
		reviewRepo.EnsureIndexes,
		catalogRepo.EnsureIndexes,
	} {
		if err := ensure(ctx, db); err != nil {
			return err
		}
	}
	return nil
}
