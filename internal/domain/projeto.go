package domain

import "time"

// Projeto is a consulting engagement. Creating one instantiates the full
// fixed timeline (one entry per etapa of the catalog) in the same
// transaction as the projeto row.
type Projeto struct {
	ID              string     `json:"id" gorm:"primaryKey"`
	ClienteID       string     `json:"cliente_id" gorm:"index"`
	Nome            string     `json:"nome"`
	Descricao       *string    `json:"descricao,omitempty"`
	DataInicio      time.Time  `json:"data_inicio"`
	DataFimPrevista *time.Time `json:"data_fim_prevista,omitempty"`
	Ativo           bool       `json:"ativo" gorm:"default:true"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Cliente  *Cliente        `json:"cliente,omitempty" gorm:"foreignKey:ClienteID"`
	Timeline []TimelineEntry `json:"timeline,omitempty" gorm:"foreignKey:ProjetoID"`
}

func (Projeto) TableName() string { return "projetos" }
