package domain

import "time"

// SistemaConfigID is the fixed id of the singleton branding row.
const SistemaConfigID = "00000000-0000-0000-0000-000000000000"

// SistemaConfig holds global branding; it is not project data.
type SistemaConfig struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	LogoURL       *string   `json:"logo_url,omitempty"`
	LogoPath      *string   `json:"logo_path,omitempty"`
	FaviconURL    *string   `json:"favicon_url,omitempty"`
	FaviconPath   *string   `json:"favicon_path,omitempty"`
	AtualizadoPor *string   `json:"atualizado_por,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (SistemaConfig) TableName() string { return "sistema_config" }
