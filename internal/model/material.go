package model

// MaterialKind is the file type of a support material.
type MaterialKind string

// Material kinds.
const (
	MaterialPDF   MaterialKind = "PDF"
	MaterialVideo MaterialKind = "Video"
	MaterialZIP   MaterialKind = "ZIP"
)

// Material is a sales support resource offered to partners.
type Material struct {
	Title       string
	Description string
	Kind        MaterialKind
	DownloadURL string
	PreviewURL  string
	ID          int64
}

// HasPreview reports whether the material can be previewed online.
func (m Material) HasPreview() bool {
	return m.PreviewURL != ""
}
