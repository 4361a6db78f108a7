package storage

import (
	"barbero-service/internal/app/config"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

func NewMinioClient(driverConfig *config.DriverConfig, log *logrus.Logger) *minio.Client {
	endpoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.AccessKey, driverConfig.Minio.SecretKey, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize minio client: %s", err.Error())
	}

	exists, err := client.BucketExists(context.Background(), driverConfig.Minio.BucketName)
	if err != nil {
		log.Fatalf("Failed to check minio bucket: %s", err.Error())
	}
	if !exists {
		err = client.MakeBucket(context.Background(), driverConfig.Minio.BucketName, minio.MakeBucketOptions{})
		if err != nil {
			log.Fatalf("Failed to create minio bucket: %s", err.Error())
		}
	}
	log.Println("Successfully connected to minio")
	return client
}
