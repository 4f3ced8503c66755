package model

type OrganizationPhone struct {
	Id             int    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrganizationId int    `gorm:"not null;index" json:"-"`
	PhoneNumber    string `gorm:"type:varchar(50);not null;index" json:"phone_number"`
	IsPrimary      bool   `json:"is_primary"`

	Organization *Organization `gorm:"foreignKey:OrganizationId;constraint:OnDelete:CASCADE" json:"-"`
}

func (OrganizationPhone) TableName() string {
	return "organizationphone"
}

type Organization struct {
	Id         int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"type:varchar(255);not null;index" json:"name"`
	BuildingId int    `gorm:"not null;index" json:"building_id"`

	Building   *Building           `gorm:"foreignKey:BuildingId" json:"building,omitempty"`
	Phones     []OrganizationPhone `gorm:"foreignKey:OrganizationId;constraint:OnDelete:CASCADE" json:"phones"`
	Activities []Activity          `gorm:"many2many:organization_activity" json:"activities"`
}

func (Organization) TableName() string {
	return "organization"
}
