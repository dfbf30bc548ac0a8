package doctors

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

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	if doctor.ID == "" {
		doctor.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, doctor)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return doctor.ID, nil
}

func (r *DoctorMongoRepository) FindDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return r.findOne(ctx, bson.M{"_id": doctorID})
}

func (r *DoctorMongoRepository) FindDoctorByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *DoctorMongoRepository) FindDoctorByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Doctor, error) {
	return r.findOne(ctx, bson.M{"licenseNumber": licenseNumber})
}

func (r *DoctorMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, filter).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	filter := bson.M{"_id": doctor.ID}
	update := bson.M{"$set": doctor}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// SearchDoctors filters approved doctors only. Name and geo filtering happen
// in the usecase since names live on the user document and stored locations
// are plain lat/lng pairs, not geo indexes. A nil pagination returns the
// whole result set so the usecase can paginate after its own filters.
func (r *DoctorMongoRepository) SearchDoctors(ctx context.Context, searchFilter *requests.SearchDoctors, pagination *requests.Pagination) ([]models.Doctor, int64, error) {
	filter := bson.M{"registrationStatus": constvars.RegistrationStatusApproved}
	if searchFilter.Specialization != "" {
		filter["specialization"] = bson.M{"$regex": searchFilter.Specialization, "$options": "i"}
	}
	if searchFilter.Language != "" {
		filter["languages"] = bson.M{"$regex": searchFilter.Language, "$options": "i"}
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "rating.average", Value: -1}})
	if pagination != nil {
		findOptions = findOptions.
			SetSkip(int64((pagination.Page - 1) * pagination.PageSize)).
			SetLimit(int64(pagination.PageSize))
	}

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, total, nil
}
