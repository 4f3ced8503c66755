package model

type Building struct {
	Id        int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Address   string  `gorm:"type:varchar(500);not null;index" json:"address"`
	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`

	Organizations []Organization `gorm:"foreignKey:BuildingId;constraint:OnDelete:CASCADE" json:"organizations,omitempty"`
}

func (Building) TableName() string {
	return "building"
}
