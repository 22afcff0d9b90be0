package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Demographics ข้อมูลประชากรของ respondent (optional — มีได้ 0..1 ต่อ session)
type Demographics struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID        string             `bson:"sessionId" json:"sessionId"`
	UniversitySlug   string             `bson:"universitySlug" json:"universitySlug"`
	YearInSchool     string             `bson:"yearInSchool,omitempty" json:"yearInSchool,omitempty"`
	GenderIdentity   string             `bson:"genderIdentity,omitempty" json:"genderIdentity,omitempty"`
	RaceEthnicity    []string           `bson:"raceEthnicity,omitempty" json:"raceEthnicity,omitempty"` // multi-valued
	EmploymentStatus string             `bson:"employmentStatus,omitempty" json:"employmentStatus,omitempty"`
	LivingSituation  string             `bson:"livingSituation,omitempty" json:"livingSituation,omitempty"`
	FirstGeneration  string             `bson:"firstGeneration,omitempty" json:"firstGeneration,omitempty"`
}
