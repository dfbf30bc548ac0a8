package schedules

import (
	"context"

	"mbote-service/internal/app/contracts"
	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScheduleMongoRepository struct {
	Collection *mongo.Collection
}

func NewScheduleMongoRepository(db *mongo.Client, dbName string) contracts.ScheduleRepository {
	return &ScheduleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSchedules),
	}
}

func (r *ScheduleMongoRepository) CreateSchedule(ctx context.Context, schedule *models.Schedule) (string, error) {
	if schedule.ID == "" {
		schedule.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, schedule)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return schedule.ID, nil
}

func (r *ScheduleMongoRepository) FindScheduleByDoctorID(ctx context.Context, doctorID string) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.Collection.FindOne(ctx, bson.M{"doctorId": doctorID}).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &schedule, nil
}

func (r *ScheduleMongoRepository) UpdateSchedule(ctx context.Context, schedule *models.Schedule) error {
	filter := bson.M{"_id": schedule.ID}
	update := bson.M{"$set": schedule}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
