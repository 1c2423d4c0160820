package model

type Wallet struct {
	Id      string `gorm:"primaryKey;type:uuid" json:"id"`
	UserId  string `gorm:"not null;type:uuid" json:"user_id"`
	Tag     string `json:"tag"`
	Chain   string `gorm:"not null" json:"chain"`
	Address string `gorm:"uniqueIndex;not null" json:"address"`
}

func (Wallet) TableName() string {
	return "wallets"
}
