package model

import "time"

// QuizAttempt is one student's run at the timed final quiz.
type QuizAttempt struct {
	UUIDBase
	StudentID   uint       `gorm:"index;not null" json:"studentId"`
	StartedAt   time.Time  `json:"startedAt"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`

	Student *User `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// FinalQuizQuestion is the question bank for the final quiz.
type FinalQuizQuestion struct {
	BaseModel
	PatternID     uint   `gorm:"index" json:"patternId"`
	Prompt        string `gorm:"type:text;not null" json:"prompt"`
	OptionA       string `gorm:"size:255;not null" json:"optionA"`
	OptionB       string `gorm:"size:255;not null" json:"optionB"`
	OptionC       string `gorm:"size:255" json:"optionC"`
	OptionD       string `gorm:"size:255" json:"optionD"`
	CorrectOption string `gorm:"size:1;not null" json:"-"`
}

func (FinalQuizQuestion) TableName() string {
	return "final_quiz_questions"
}

// FinalQuizResult is the pass/fail record that gates retakes.
type FinalQuizResult struct {
	BaseModel
	StudentID uint   `gorm:"index;not null" json:"studentId"`
	AttemptID string `gorm:"size:36;index;not null" json:"attemptId"`
	Score     int    `gorm:"not null" json:"score"`
	Total     int    `gorm:"not null" json:"total"`
	Passed    bool   `gorm:"default:false" json:"passed"`

	// CheatSheetUses is computed from the access log, not stored.
	CheatSheetUses int64 `gorm:"-" json:"cheatSheetUses"`
}

func (FinalQuizResult) TableName() string {
	return "final_quiz_results"
}

// FinalAttemptCheatSheetAccess logs cheat-sheet use during an attempt.
// Insert-only, never updated or deleted.
type FinalAttemptCheatSheetAccess struct {
	BaseModel
	AttemptID string `gorm:"size:36;index;not null" json:"attemptId"`
	PatternID uint   `gorm:"index" json:"patternId"`
}

func (FinalAttemptCheatSheetAccess) TableName() string {
	return "final_attempt_cheat_sheet_accesses"
}
