package domain

import "time"

// Cliente is a consulting client. One cliente owns zero or more projetos.
type Cliente struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  *string   `json:"telefone,omitempty"`
	Empresa   *string   `json:"empresa,omitempty"`
	Ativo     bool      `json:"ativo" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Cliente) TableName() string { return "clientes" }
