package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort    string
	MetricsPort    string
	Environment    string
	MongoDBConfig  MongoDBConfig
	MidtransConfig MidtransConfig
	FirebaseConfig FirebaseConfig
	KafkaConfig    KafkaConfig
	TracingConfig  TracingConfig
}

type MongoDBConfig struct {
	URI    string
	DBName string
}

type MidtransConfig struct {
	ServerKey   string
	ClientKey   string
	Environment string
}

// FirebaseConfig carries the service-account bundle, one env var per field.
type FirebaseConfig struct {
	Type                string
	ProjectID           string
	PrivateKeyID        string
	PrivateKey          string
	ClientEmail         string
	ClientID            string
	AuthURI             string
	TokenURI            string
	AuthProviderCertURL string
	ClientCertURL       string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	brokerPartition, _ := strconv.Atoi(os.Getenv("BROKER_PARTITION"))

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		MongoDBConfig: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: os.Getenv("MONGODB_DB_NAME"),
		},
		MidtransConfig: MidtransConfig{
			ServerKey:   os.Getenv("MIDTRANS_SERVER_KEY"),
			ClientKey:   os.Getenv("MIDTRANS_CLIENT_KEY"),
			Environment: os.Getenv("MIDTRANS_ENVIRONMENT"),
		},
		FirebaseConfig: FirebaseConfig{
			Type:                os.Getenv("FIREBASE_TYPE"),
			ProjectID:           os.Getenv("FIREBASE_PROJECT_ID"),
			PrivateKeyID:        os.Getenv("FIREBASE_PRIVATE_KEY_ID"),
			PrivateKey:          os.Getenv("FIREBASE_PRIVATE_KEY"),
			ClientEmail:         os.Getenv("FIREBASE_CLIENT_EMAIL"),
			ClientID:            os.Getenv("FIREBASE_CLIENT_ID"),
			AuthURI:             os.Getenv("FIREBASE_AUTH_URI"),
			TokenURI:            os.Getenv("FIREBASE_TOKEN_URI"),
			AuthProviderCertURL: os.Getenv("FIREBASE_AUTH_PROVIDER_X509_CERT_URL"),
			ClientCertURL:       os.Getenv("FIREBASE_CLIENT_X509_CERT_URL"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress:   os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:     os.Getenv("BROKER_TOPIC"),
			BrokerPartition: brokerPartition,
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	return &conf
}
