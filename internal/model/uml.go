package model

// UmlExercise asks the student to diagram a pattern; submissions are uploaded
// images referenced by object path.
type UmlExercise struct {
	BaseModel
	PatternID uint   `gorm:"index;not null" json:"patternId"`
	Title     string `gorm:"size:255;not null" json:"title"`
	Prompt    string `gorm:"type:text;not null" json:"prompt"`

	Pattern *DesignPattern `gorm:"foreignKey:PatternID" json:"pattern,omitempty"`
}

func (UmlExercise) TableName() string {
	return "uml_exercises"
}

type UmlSubmission struct {
	BaseModel
	StudentID  uint   `gorm:"index;not null" json:"studentId"`
	ExerciseID uint   `gorm:"index;not null" json:"exerciseId"`
	ImagePath  string `gorm:"size:255;not null" json:"imagePath"`
	Note       string `gorm:"type:text" json:"note"`

	Student  *User        `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Exercise *UmlExercise `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
}

func (UmlSubmission) TableName() string {
	return "uml_submissions"
}
