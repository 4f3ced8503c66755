package model

// Activity is a node in the business-category taxonomy. The parent reference
// forms a forest: every node has at most one parent and roots have none.
type Activity struct {
	Id       int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	ParentId *int       `gorm:"index" json:"parent_id,omitempty"`
	Parent   *Activity  `gorm:"foreignKey:ParentId" json:"-"`
	Children []Activity `gorm:"foreignKey:ParentId;constraint:OnDelete:CASCADE" json:"children,omitempty"`

	Organizations []Organization `gorm:"many2many:organization_activity" json:"-"`
}

func (Activity) TableName() string {
	return "activity"
}
