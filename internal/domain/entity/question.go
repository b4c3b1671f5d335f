package entity

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   int    `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// InCategory проверяет принадлежность вопроса категории.
// categoryID == 0 означает "все категории".
func (q *Question) InCategory(categoryID uint) bool {
	return categoryID == 0 || q.Category == int(categoryID)
}
