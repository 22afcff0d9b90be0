package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	DB "Backend-Flourish-Campus/src/database"
	"Backend-Flourish-Campus/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateAdmin ตรวจ email+password กับ bcrypt hash ใน DB
func AuthenticateAdmin(email, password string) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var admin models.Admin
	err := DB.AdminCollection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &admin, nil
}

// GetAdminByID ดึง admin ตาม ObjectID hex
func GetAdminByID(id string) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	var admin models.Admin
	err = DB.AdminCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}

// CreateAdmin สร้าง admin ใหม่ (superadmin console)
func CreateAdmin(admin *models.Admin, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := DB.AdminCollection.CountDocuments(ctx, bson.M{"email": admin.Email})
	if err != nil {
		return fmt.Errorf("failed to check admin email: %w", err)
	}
	if count > 0 {
		return errors.New("admin email already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin.ID = primitive.NewObjectID()
	admin.Password = string(hash)
	if _, err := DB.AdminCollection.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// SeedSuperAdmin สร้าง superadmin คนแรกจาก ENV ถ้ายังไม่มี (รันตอน start)
func SeedSuperAdmin() {
	email := os.Getenv("SUPERADMIN_EMAIL")
	password := os.Getenv("SUPERADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := DB.AdminCollection.CountDocuments(ctx, bson.M{"role": models.RoleSuperAdmin})
	if err != nil || count > 0 {
		return
	}

	admin := &models.Admin{Email: email, Name: "Super Admin", Role: models.RoleSuperAdmin}
	if err := CreateAdmin(admin, password); err != nil {
		log.Println("❌ Failed to seed superadmin:", err)
		return
	}
	log.Println("✅ Superadmin seeded:", email)
}

// ---- login rate limiting (in-memory ต่อ instance) ----

const maxAttempts = 5
const cooldown = 15 * time.Minute

type attemptInfo struct {
	Count     int
	LastTried time.Time
}

var (
	attemptsMu sync.Mutex
	attempts   = map[string]*attemptInfo{}
)

// IsRateLimited เกิน 5 ครั้งภายใน cooldown = โดนล็อก
func IsRateLimited(email string) bool {
	attemptsMu.Lock()
	defer attemptsMu.Unlock()

	info, ok := attempts[email]
	if !ok {
		return false
	}
	if time.Since(info.LastTried) > cooldown {
		delete(attempts, email)
		return false
	}
	return info.Count >= maxAttempts
}

// GetRemainingCooldownTime เวลาที่เหลือก่อนลองใหม่ได้
func GetRemainingCooldownTime(email string) time.Duration {
	attemptsMu.Lock()
	defer attemptsMu.Unlock()

	info, ok := attempts[email]
	if !ok {
		return 0
	}
	remaining := cooldown - time.Since(info.LastTried)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// LogLoginAttempt บันทึกผล login — สำเร็จแล้วเคลียร์ตัวนับ
func LogLoginAttempt(email, ip string, success bool) {
	attemptsMu.Lock()
	defer attemptsMu.Unlock()

	if success {
		delete(attempts, email)
		log.Printf("✅ Login success: %s (%s)", email, ip)
		return
	}

	info, ok := attempts[email]
	if !ok {
		info = &attemptInfo{}
		attempts[email] = info
	}
	info.Count++
	info.LastTried = time.Now()
	log.Printf("⚠️ Login failed: %s (%s) attempt %d", email, ip, info.Count)
}
