package domain

import "time"

type TipoArquivo string

const (
	TipoPDF  TipoArquivo = "pdf"
	TipoDoc  TipoArquivo = "doc"
	TipoDocx TipoArquivo = "docx"
	TipoXlsx TipoArquivo = "xlsx"
	TipoCSV  TipoArquivo = "csv"
	TipoLink TipoArquivo = "link"
)

// MaxFileSize is the upload ceiling, enforced before any storage call.
const MaxFileSize = 10 * 1024 * 1024 // 10MB

// Storage buckets. "arquivos" is private and served through signed URLs,
// "sistema" is public branding assets.
const (
	BucketArquivos = "arquivos"
	BucketSistema  = "sistema"
)

// MIMETypes maps allowed upload content types to the stored tipo.
var MIMETypes = map[string]TipoArquivo{
	"application/pdf":    TipoPDF,
	"application/msword": TipoDoc,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": TipoDocx,
	"application/vnd.ms-excel": TipoXlsx,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": TipoXlsx,
	"text/csv": TipoCSV,
}

// Arquivo is an attachment on a timeline entry: either an uploaded object
// (bucket + storage path) or an external link (raw URL, no storage path).
type Arquivo struct {
	ID                string      `json:"id" gorm:"primaryKey"`
	ProjetoTimelineID string      `json:"projeto_timeline_id" gorm:"index"`
	Nome              string      `json:"nome"`
	Tipo              TipoArquivo `json:"tipo"`
	Tamanho           *int64      `json:"tamanho,omitempty"`
	BucketName        *string     `json:"bucket_name,omitempty"`
	StoragePath       *string     `json:"storage_path,omitempty"`
	URL               *string     `json:"url,omitempty"`
	UploadedBy        string      `json:"uploaded_by"`
	CreatedAt         time.Time   `json:"created_at"`

	// SignedURL is minted lazily when listing; never persisted.
	SignedURL string `json:"signed_url,omitempty" gorm:"-"`
}

func (Arquivo) TableName() string { return "arquivos" }

func (a *Arquivo) IsLink() bool { return a.Tipo == TipoLink }
