package database

import (
	"eazywed/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PageFindOptions returns find options for one page sorted newest first.
func PageFindOptions(q models.PageQuery) *options.FindOptions {
	p := models.Pagination{Page: q.Page, Limit: q.Limit}
	return options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(q.Limit))
}
