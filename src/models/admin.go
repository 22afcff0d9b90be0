package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role ของ admin user
const (
	RoleAdmin      = "admin"      // ดู analytics ได้เฉพาะ tenant ตัวเอง
	RoleSuperAdmin = "superadmin" // จัดการ tenant ทั้งหมด
)

// Admin ผู้ดูแลระบบ
type Admin struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password,omitempty" json:"-"` // bcrypt hash, ไม่ส่งกลับ
	Name           string             `bson:"name" json:"name"`
	Role           string             `bson:"role" json:"role"`
	UniversitySlug string             `bson:"universitySlug,omitempty" json:"universitySlug,omitempty"` // ว่างสำหรับ superadmin
}
