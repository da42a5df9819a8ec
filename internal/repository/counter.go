package repository

import (
	"gorm.io/gorm"
)

// counterModel is the atomic sequence source for human-readable request
// ids. A single UPDATE ... value = value + 1 keeps the increment atomic
// on both postgres and sqlite, unlike the count-the-rows approach it
// replaces.
type counterModel struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value int64  `gorm:"column:value"`
}

func (counterModel) TableName() string { return "counters" }

func nextSequence(tx *gorm.DB, name string) (int64, error) {
	res := tx.Model(&counterModel{}).Where("name = ?", name).
		Update("value", gorm.Expr("value + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		c := counterModel{Name: name, Value: 1}
		if err := tx.Create(&c).Error; err != nil {
			return 0, err
		}
		return c.Value, nil
	}

	var c counterModel
	if err := tx.Where("name = ?", name).First(&c).Error; err != nil {
		return 0, err
	}
	return c.Value, nil
}
