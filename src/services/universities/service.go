package universities

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	DB "Backend-Flourish-Campus/src/database"
	"Backend-Flourish-Campus/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrSlugTaken = errors.New("university slug already in use")
var ErrNotFound = errors.New("university not found")

// CreateUniversity สร้าง tenant ใหม่ — slug ต้อง unique
func CreateUniversity(uni *models.University) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// ตรวจสอบ slug ซ้ำ
	count, err := DB.UniversityCollection.CountDocuments(ctx, bson.M{"slug": uni.Slug})
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if count > 0 {
		return ErrSlugTaken
	}

	uni.ID = primitive.NewObjectID()
	uni.IsActive = true
	uni.SurveyActive = false
	uni.CreatedAt = time.Now()
	uni.UpdatedAt = uni.CreatedAt

	if _, err := DB.UniversityCollection.InsertOne(ctx, uni); err != nil {
		return fmt.Errorf("failed to create university: %w", err)
	}

	log.Printf("✅ University created: %s (%s)", uni.Name, uni.Slug)
	return nil
}

// GetUniversities ดึง tenant ทั้งหมดแบบแบ่งหน้า + ค้นหาจากชื่อ/slug
func GetUniversities(params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter = bson.M{"$or": []bson.M{
			{"name": bson.M{"$regex": params.Search, "$options": "i"}},
			{"slug": bson.M{"$regex": params.Search, "$options": "i"}},
		}}
	}

	total, err := DB.UniversityCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count universities: %w", err)
	}

	sortOrder := bson.D{}
	for field, order := range params.GetSortOrder() {
		sortOrder = append(sortOrder, bson.E{Key: field, Value: order})
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(sortOrder)

	cursor, err := DB.UniversityCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch universities: %w", err)
	}
	defer cursor.Close(ctx)

	var universities []models.University
	if err = cursor.All(ctx, &universities); err != nil {
		return nil, fmt.Errorf("failed to decode universities: %w", err)
	}

	return models.NewPaginatedResponse(universities, total, params), nil
}

// GetUniversityBySlug ดึง tenant ตาม slug (ใช้ตอน bootstrap หน้า survey)
func GetUniversityBySlug(slug string) (*models.University, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var uni models.University
	err := DB.UniversityCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&uni)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find university: %w", err)
	}
	return &uni, nil
}

// UpdateUniversity แก้ไขชื่อ/อีเมล admin ของ tenant (slug แก้ไม่ได้ — analytics key อยู่บน slug)
func UpdateUniversity(id string, name, adminEmail string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":       name,
		"adminEmail": adminEmail,
		"updatedAt":  time.Now(),
	}}
	result, err := DB.UniversityCollection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update university: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetActive เปิด/ปิด tenant ทั้งระบบ (ปิดแล้ว survey ก็หยุดรับด้วย)
func SetActive(id string, active bool) error {
	return setFlag(id, "isActive", active)
}

// SetSurveyActive เปิด/ปิดรับ survey ของ tenant
func SetSurveyActive(id string, active bool) error {
	return setFlag(id, "surveyActive", active)
}

func setFlag(id, field string, value bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{"$set": bson.M{field: value, "updatedAt": time.Now()}}
	result, err := DB.UniversityCollection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update university: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUniversity ลบ tenant (ข้อมูล survey raw ของ tenant ยังอยู่ — ลบเฉพาะตัว tenant)
func DeleteUniversity(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := DB.UniversityCollection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete university: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	log.Printf("✅ University deleted: %s", id)
	return nil
}
