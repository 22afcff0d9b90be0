package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// University มหาวิทยาลัย (tenant) หนึ่งแห่ง — ทุก query ของ analytics จะ scope ด้วย slug
type University struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Slug         string             `bson:"slug" json:"slug" validate:"required,lowercase"` // unique
	AdminEmail   string             `bson:"adminEmail" json:"adminEmail" validate:"required,email"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	SurveyActive bool               `bson:"surveyActive" json:"surveyActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
