package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	dbName = "FlourishDB"

	UniversityCollection      *mongo.Collection
	SessionCollection         *mongo.Collection
	DemographicsCollection    *mongo.Collection
	FlourishingCollection     *mongo.Collection
	SchoolWellbeingCollection *mongo.Collection
	TextResponseCollection    *mongo.Collection
	TensionCollection         *mongo.Collection
	EnablerBarrierCollection  *mongo.Collection
	AdminCollection           *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}
	if name := os.Getenv("MONGO_DB"); name != "" {
		dbName = name
	}

	once.Do(func() { // ✅ Run only once
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		// ตรวจสอบการเชื่อมต่อ
		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")

		db := client.Database(dbName)
		UniversityCollection = db.Collection("Universities")
		SessionCollection = db.Collection("Survey_Sessions")
		DemographicsCollection = db.Collection("Demographics")
		FlourishingCollection = db.Collection("Flourishing_Scores")
		SchoolWellbeingCollection = db.Collection("School_Wellbeing")
		TextResponseCollection = db.Collection("Text_Responses")
		TensionCollection = db.Collection("Tension_Assessments")
		EnablerBarrierCollection = db.Collection("Enabler_Barrier_Selections")
		AdminCollection = db.Collection("Admins")
	})

	return connectErr
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
