package model

// DesignPattern is static catalog data seeded at migration time.
// swagger:model DesignPattern
type DesignPattern struct {
	BaseModel
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"design_pattern"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"size:50" json:"category"`
	CheatSheet  string `gorm:"type:text" json:"cheatSheet"`
}

func (DesignPattern) TableName() string {
	return "design_patterns"
}

// StudentPatternLearningProfile tracks one student's progress on one pattern.
type StudentPatternLearningProfile struct {
	BaseModel
	StudentID               uint `gorm:"index:idx_student_pattern,unique;not null" json:"studentId"`
	PatternID               uint `gorm:"index:idx_student_pattern,unique;not null" json:"patternId"`
	HasCompletedReflection  bool `gorm:"default:false" json:"hasCompletedReflection"`
	PracticeQuestionsPassed int  `gorm:"default:0" json:"practiceQuestionsPassed"`

	Pattern *DesignPattern `gorm:"foreignKey:PatternID" json:"pattern,omitempty"`
}

func (StudentPatternLearningProfile) TableName() string {
	return "student_pattern_learning_profiles"
}
