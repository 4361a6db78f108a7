package database

import (
	"barbero-service/internal/app/config"
	"barbero-service/internal/pkg/constvars"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoDB(driverConfig *config.DriverConfig, log *logrus.Logger) *mongo.Client {
	connectionString := fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)
	dbOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(context.TODO(), dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(context.TODO(), nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}

// EnsureIndexes creates the partial unique index that guarantees at most one
// active appointment per provider per slot. The insert path relies on it to
// close the check-then-act race between concurrent bookings.
func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string, log *logrus.Logger) {
	appointments := client.Database(dbName).Collection(constvars.MongoCollectionAppointments)

	_, err := appointments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "providerId", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().
			SetName(constvars.MongoIndexProviderSlot).
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"canceledAt": bson.M{"$type": "null"}}),
	})
	if err != nil {
		log.Fatalf("Failed to create appointment slot index: %s", err.Error())
	}
	log.Println("Appointment slot unique index is in place")
}
