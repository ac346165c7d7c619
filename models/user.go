package models

import "time"

// Role represents the account type chosen at registration
type Role string

const (
	RoleProdutor   Role = "PRODUTOR"
	RoleConsumidor Role = "CONSUMIDOR"
)

// Group names used for role-based authorization
const (
	GroupProdutores   = "Produtores"
	GroupConsumidores = "Consumidores"
	GroupModeradores  = "Moderadores"
)

// GroupName maps a registration role to its membership group
func (r Role) GroupName() string {
	switch r {
	case RoleProdutor:
		return GroupProdutores
	case RoleConsumidor:
		return GroupConsumidores
	}
	return ""
}

// User represents an account in the system
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Password    string    `json:"-" gorm:"not null"` // bcrypt hash, never exposed in JSON
	IsSuperuser bool      `json:"is_superuser" gorm:"default:false"`
	Groups      []Group   `json:"groups" gorm:"many2many:user_groups;"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Group is a named membership set users belong to
type Group struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:150;not null"`
}

// GroupNames returns the names of the groups the user belongs to
func (u *User) GroupNames() []string {
	names := make([]string, 0, len(u.Groups))
	for _, g := range u.Groups {
		names = append(names, g.Name)
	}
	return names
}

// InGroup reports whether the user belongs to the named group
func (u *User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

// IsModerador reports whether the user can manage accounts
func (u *User) IsModerador() bool {
	return u.IsSuperuser || u.InGroup(GroupModeradores)
}
