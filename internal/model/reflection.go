package model

// ReflectiveForm is a survey instrument tied to a design pattern. Exactly one
// form per pattern carries is_active=true at any time; forms are authored by
// educators and read-only to students.
type ReflectiveForm struct {
	BaseModel
	PatternID uint   `gorm:"index;not null" json:"patternId"`
	Title     string `gorm:"size:255;not null" json:"title"`
	IsActive  bool   `gorm:"index;default:false" json:"isActive"`

	Pattern *DesignPattern `gorm:"foreignKey:PatternID" json:"pattern,omitempty"`
}

func (ReflectiveForm) TableName() string {
	return "reflective_forms"
}

type ReflectiveQuestionInstance struct {
	BaseModel
	FormID       uint   `gorm:"index;not null" json:"formId"`
	QuestionText string `gorm:"type:text;not null" json:"questionText"`
	Position     int    `gorm:"not null" json:"position"`
}

func (ReflectiveQuestionInstance) TableName() string {
	return "reflective_question_instances"
}

// ReflectiveScaleOption is the rating scale shared by all forms.
type ReflectiveScaleOption struct {
	BaseModel
	Label string `gorm:"size:100;not null" json:"label"`
	Value int    `gorm:"not null" json:"value"`
	Order int    `gorm:"column:scale_order;not null" json:"order"`
}

func (ReflectiveScaleOption) TableName() string {
	return "reflective_scale_options"
}

// ReflectiveResponse is one student's answer to one question instance.
type ReflectiveResponse struct {
	BaseModel
	StudentID  uint `gorm:"index:idx_student_question,unique;not null" json:"studentId"`
	FormID     uint `gorm:"index;not null" json:"formId"`
	QuestionID uint `gorm:"index:idx_student_question,unique;not null" json:"questionId"`
	ScaleValue int  `gorm:"not null" json:"scaleValue"`
}

func (ReflectiveResponse) TableName() string {
	return "reflective_responses"
}
