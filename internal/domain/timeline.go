package domain

import "time"

type FaseNome string

const (
	FaseDiagnostico    FaseNome = "diagnostico"
	FasePosicionamento FaseNome = "posicionamento"
	FaseTracao         FaseNome = "tracao"
)

type StatusEtapa string

const (
	StatusPendente    StatusEtapa = "pendente"
	StatusEmAndamento StatusEtapa = "em_andamento"
	StatusConcluido   StatusEtapa = "concluido"
)

// Valid reports whether s is one of the three known statuses.
func (s StatusEtapa) Valid() bool {
	switch s {
	case StatusPendente, StatusEmAndamento, StatusConcluido:
		return true
	}
	return false
}

// Fase is one of the three fixed phases, seeded once and never edited.
type Fase struct {
	ID    string   `json:"id" gorm:"primaryKey"`
	Nome  FaseNome `json:"nome" gorm:"uniqueIndex"`
	Ordem int      `json:"ordem"`
}

func (Fase) TableName() string { return "fases" }

// Etapa is a fixed catalog step inside a fase.
type Etapa struct {
	ID        string  `json:"id" gorm:"primaryKey"`
	FaseID    string  `json:"fase_id" gorm:"index"`
	Nome      string  `json:"nome"`
	Descricao *string `json:"descricao,omitempty"`
	Ordem     int     `json:"ordem"`

	Fase *Fase `json:"fase,omitempty" gorm:"foreignKey:FaseID"`
}

func (Etapa) TableName() string { return "etapas" }

// TimelineEntry is the mutable projeto x etapa state. Exactly one entry
// exists per pair, created in bulk when the projeto is created.
//
// DataInicio is stamped on the first transition into em_andamento and never
// overwritten; DataConclusao is (re)stamped on every transition into
// concluido. Forward-only movement is not enforced.
type TimelineEntry struct {
	ID            string      `json:"id" gorm:"primaryKey"`
	ProjetoID     string      `json:"projeto_id" gorm:"index:idx_projeto_etapa,unique"`
	EtapaID       string      `json:"etapa_id" gorm:"index:idx_projeto_etapa,unique"`
	Status        StatusEtapa `json:"status" gorm:"default:pendente"`
	Observacoes   *string     `json:"observacoes,omitempty"`
	DataInicio    *time.Time  `json:"data_inicio,omitempty"`
	DataConclusao *time.Time  `json:"data_conclusao,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	Etapa    *Etapa    `json:"etapa,omitempty" gorm:"foreignKey:EtapaID"`
	Arquivos []Arquivo `json:"arquivos,omitempty" gorm:"foreignKey:ProjetoTimelineID"`
}

func (TimelineEntry) TableName() string { return "projeto_timeline" }
