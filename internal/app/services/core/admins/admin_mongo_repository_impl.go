package admins

import (
	"context"

	"mbote-service/internal/app/contracts"
	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminMongoRepository struct {
	Collection *mongo.Collection
}

func NewAdminMongoRepository(db *mongo.Client, dbName string) contracts.AdminRepository {
	return &AdminMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAdmins),
	}
}

func (r *AdminMongoRepository) CreateAdmin(ctx context.Context, admin *models.Admin) (string, error) {
	if admin.ID == "" {
		admin.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, admin)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return admin.ID, nil
}

func (r *AdminMongoRepository) FindAdminByUserID(ctx context.Context, userID string) (*models.Admin, error) {
	var admin models.Admin
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &admin, nil
}

func (r *AdminMongoRepository) AppendActivity(ctx context.Context, adminID string, activity models.AdminActivity) error {
	filter := bson.M{"_id": adminID}
	update := bson.M{
		"$push": bson.M{"activityLog": activity},
		"$set":  bson.M{"lastActivity": activity.Timestamp},
	}
	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
