package database

import (
	"fmt"
	"log"

	"pattern_edu_backend/internal/config"
	"pattern_edu_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Account{},
		&model.User{},
		&model.DesignPattern{},
		&model.StudentPatternLearningProfile{},
		&model.QuizAttempt{},
		&model.FinalQuizQuestion{},
		&model.FinalQuizResult{},
		&model.FinalAttemptCheatSheetAccess{},
		&model.ReflectiveForm{},
		&model.ReflectiveQuestionInstance{},
		&model.ReflectiveScaleOption{},
		&model.ReflectiveResponse{},
		&model.PracticeQuestion{},
		&model.PracticeSubmission{},
		&model.UmlExercise{},
		&model.UmlSubmission{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedPatterns(db)
	seedScaleOptions(db)

	return db, nil
}

// seedPatterns inserts the static catalog when the table is empty.
func seedPatterns(db *gorm.DB) {
	var count int64
	db.Model(&model.DesignPattern{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.DesignPattern{
		{Name: "Observer", Category: "behavioral", Description: "Defines a one-to-many dependency so that when one object changes state, all its dependents are notified."},
		{Name: "Strategy", Category: "behavioral", Description: "Defines a family of algorithms, encapsulates each one, and makes them interchangeable."},
		{Name: "Factory Method", Category: "creational", Description: "Defines an interface for creating an object, letting subclasses decide which class to instantiate."},
		{Name: "Singleton", Category: "creational", Description: "Ensures a class has only one instance and provides a global point of access to it."},
		{Name: "Decorator", Category: "structural", Description: "Attaches additional responsibilities to an object dynamically."},
		{Name: "Adapter", Category: "structural", Description: "Converts the interface of a class into another interface clients expect."},
	}
	for _, p := range defaults {
		db.Create(&p)
	}
}

// seedScaleOptions inserts the shared Likert scale when the table is empty.
func seedScaleOptions(db *gorm.DB) {
	var count int64
	db.Model(&model.ReflectiveScaleOption{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.ReflectiveScaleOption{
		{Label: "Strongly disagree", Value: 1, Order: 1},
		{Label: "Disagree", Value: 2, Order: 2},
		{Label: "Neutral", Value: 3, Order: 3},
		{Label: "Agree", Value: 4, Order: 4},
		{Label: "Strongly agree", Value: 5, Order: 5},
	}
	for _, o := range defaults {
		db.Create(&o)
	}
}
