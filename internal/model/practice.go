package model

import "time"

// PracticeQuestion belongs to one pattern's practice quiz. No gate, no timer.
type PracticeQuestion struct {
	BaseModel
	PatternID     uint   `gorm:"index;not null" json:"patternId"`
	Prompt        string `gorm:"type:text;not null" json:"prompt"`
	OptionA       string `gorm:"size:255;not null" json:"optionA"`
	OptionB       string `gorm:"size:255;not null" json:"optionB"`
	OptionC       string `gorm:"size:255" json:"optionC"`
	OptionD       string `gorm:"size:255" json:"optionD"`
	CorrectOption string `gorm:"size:1;not null" json:"-"`
	Explanation   string `gorm:"type:text" json:"explanation"`
}

func (PracticeQuestion) TableName() string {
	return "practice_questions"
}

type PracticeSubmission struct {
	BaseModel
	StudentID   uint      `gorm:"index;not null" json:"studentId"`
	PatternID   uint      `gorm:"index;not null" json:"patternId"`
	Score       int       `gorm:"not null" json:"score"`
	Total       int       `gorm:"not null" json:"total"`
	CompletedAt time.Time `json:"completedAt"`
}

func (PracticeSubmission) TableName() string {
	return "practice_submissions"
}
