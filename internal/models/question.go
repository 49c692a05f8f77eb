package models

type Question struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Text          string `gorm:"type:text;not null" json:"text"`
	OptionA       string `gorm:"size:500;not null" json:"option_a"`
	OptionB       string `gorm:"size:500;not null" json:"option_b"`
	OptionC       string `gorm:"size:500;not null" json:"option_c"`
	OptionD       string `gorm:"size:500;not null" json:"option_d"`
	CorrectAnswer string `gorm:"size:1;not null" json:"correct_answer"`
}
