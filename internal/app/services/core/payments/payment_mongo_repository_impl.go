package payments

import (
	"context"

	"mbote-service/internal/app/contracts"
	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentMongoRepository struct {
	Collection *mongo.Collection
}

func NewPaymentMongoRepository(db *mongo.Client, dbName string) contracts.PaymentRepository {
	return &PaymentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPayments),
	}
}

func (r *PaymentMongoRepository) CreatePayment(ctx context.Context, payment *models.Payment) (string, error) {
	if payment.ID == "" {
		payment.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, payment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return payment.ID, nil
}

func (r *PaymentMongoRepository) FindPaymentByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	return r.findOne(ctx, bson.M{"_id": paymentID})
}

func (r *PaymentMongoRepository) FindPaymentByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error) {
	return r.findOne(ctx, bson.M{"appointmentId": appointmentID})
}

func (r *PaymentMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Payment, error) {
	var payment models.Payment
	err := r.Collection.FindOne(ctx, filter).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &payment, nil
}

func (r *PaymentMongoRepository) FindPaymentsByPatientID(ctx context.Context, patientID string, pagination *requests.Pagination) ([]models.Payment, int64, error) {
	filter := bson.M{"patientId": patientID}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((pagination.Page - 1) * pagination.PageSize)).
		SetLimit(int64(pagination.PageSize)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return payments, total, nil
}

func (r *PaymentMongoRepository) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	filter := bson.M{"_id": payment.ID}
	update := bson.M{"$set": payment}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
