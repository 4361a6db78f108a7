package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Logger         *zap.Logger
		BootstrapLog   *logrus.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App App
		JWT JWT
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		SMTP     SMTP
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		BaseURL                   string
		MaxRequests               int
		ShutdownTimeout           int
		AvatarMaxUploadSizeInMB   int64
		WorkerMailsPerSecond      int
		WorkerMaxDeliveryAttempts int
	}

	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	Minio struct {
		Host       string
		Port       string
		AccessKey  string
		SecretKey  string
		BucketName string
		PublicURL  string
		UseSSL     bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
