package patients

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

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	if patient.ID == "" {
		patient.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, patient)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return patient.ID, nil
}

func (r *PatientMongoRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"_id": patientID})
}

func (r *PatientMongoRepository) FindPatientByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *PatientMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, filter).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	filter := bson.M{"_id": patient.ID}
	update := bson.M{"$set": patient}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
