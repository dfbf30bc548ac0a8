package appointments

import (
	"context"
	"time"

	"mbote-service/internal/app/contracts"
	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/exceptions"
	"mbote-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	if appointment.ID == "" {
		appointment.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return appointment.ID, nil
}

func (r *AppointmentMongoRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindAppointmentsByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) ([]models.Appointment, error) {
	day := utils.DateOnly(date)
	return r.findMany(ctx, bson.M{
		"doctorId": doctorID,
		"date":     bson.M{"$gte": day, "$lt": day.AddDate(0, 0, 1)},
	})
}

func (r *AppointmentMongoRepository) FindAppointmentsByDoctorBetween(ctx context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{
		"doctorId": doctorID,
		"date":     bson.M{"$gte": utils.DateOnly(from), "$lt": utils.DateOnly(to).AddDate(0, 0, 1)},
	})
}

func (r *AppointmentMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) FindAppointmentsByPatientID(ctx context.Context, patientID, status string, pagination *requests.Pagination) ([]models.Appointment, int64, error) {
	filter := bson.M{"patientId": patientID}
	if status != "" {
		filter["status"] = status
	}
	return r.findPaged(ctx, filter, pagination)
}

func (r *AppointmentMongoRepository) FindAppointmentsByDoctorID(ctx context.Context, doctorID, status string, pagination *requests.Pagination) ([]models.Appointment, int64, error) {
	filter := bson.M{"doctorId": doctorID}
	if status != "" {
		filter["status"] = status
	}
	return r.findPaged(ctx, filter, pagination)
}

func (r *AppointmentMongoRepository) findPaged(ctx context.Context, filter bson.M, pagination *requests.Pagination) ([]models.Appointment, int64, error) {
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((pagination.Page - 1) * pagination.PageSize)).
		SetLimit(int64(pagination.PageSize)).
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "startTime", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, total, nil
}

func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	filter := bson.M{"_id": appointment.ID}
	update := bson.M{"$set": appointment}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
