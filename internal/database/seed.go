package database

import (
	"encoding/json"
	"log"
	"os"

	"quiz-bot-backend/internal/models"

	"gorm.io/gorm"
)

type seedQuestion struct {
	Text          string `json:"text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
}

// Seed loads questions from a JSON file into an empty question pool. A
// non-empty pool is left untouched.
func Seed(db *gorm.DB, path string) {
	if path == "" {
		return
	}

	var count int64
	db.Model(&models.Question{}).Count(&count)
	if count > 0 {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("seed: read %s: %v", path, err)
		return
	}

	var seeds []seedQuestion
	if err := json.Unmarshal(data, &seeds); err != nil {
		log.Printf("seed: parse %s: %v", path, err)
		return
	}

	inserted := 0
	for _, s := range seeds {
		q := models.Question{
			Text:          s.Text,
			OptionA:       s.OptionA,
			OptionB:       s.OptionB,
			OptionC:       s.OptionC,
			OptionD:       s.OptionD,
			CorrectAnswer: s.CorrectAnswer,
		}
		if err := db.Create(&q).Error; err != nil {
			log.Printf("seed: insert question: %v", err)
			continue
		}
		inserted++
	}
	log.Printf("seed: inserted %d questions from %s", inserted, path)
}
