package files

import (
	"barbero-service/internal/app/contracts"
	"barbero-service/internal/app/models"
	"barbero-service/internal/pkg/constvars"
	"barbero-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FileMongoRepository struct {
	Collection *mongo.Collection
}

func NewFileMongoRepository(db *mongo.Client, dbName string) contracts.FileRepository {
	return &FileMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFiles),
	}
}

func (r *FileMongoRepository) CreateFile(ctx context.Context, file *models.File) (string, error) {
	result, err := r.Collection.InsertOne(ctx, file)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *FileMongoRepository) FindByID(ctx context.Context, fileID string) (*models.File, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var file models.File
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&file)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &file, nil
}
