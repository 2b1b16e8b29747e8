package models

import (
	"github.com/pgvector/pgvector-go"
)

// EmbeddingDimensions is the fixed length of every stored embedding (all-MiniLM-L6-v2).
const EmbeddingDimensions = 384

// Content is one item a user has stored: a link, a note or an uploaded image.
type Content struct {
	BaseModel
	OwnerID         string           `json:"owner_id" gorm:"size:64;not null;index"`
	Link            string           `json:"link" gorm:"size:2000"`
	Type            string           `json:"type" gorm:"size:40;not null"`
	Title           string           `json:"title" gorm:"size:200;not null"`
	Description     string           `json:"description" gorm:"type:text;not null"`
	Tags            []Tag            `json:"tags" gorm:"many2many:content_tags;constraint:OnDelete:CASCADE"`
	Embedding       *pgvector.Vector `json:"-" gorm:"type:vector(384)"`
	FileURL         string           `json:"file_url" gorm:"size:2000"`
	FileDescription string           `json:"file_description" gorm:"type:text"`

	// Indexed is filled by reads that skip the embedding column
	Indexed bool `json:"-" gorm:"->;-:migration"`
}

// TableName returns the table name for Content
func (Content) TableName() string {
	return "contents"
}

// HasEmbedding reports whether an embedding is stored
func (c *Content) HasEmbedding() bool {
	return c.Indexed || (c.Embedding != nil && len(c.Embedding.Slice()) > 0)
}

// EmbeddingSlice returns the stored embedding or nil
func (c *Content) EmbeddingSlice() []float32 {
	if c.Embedding == nil {
		return nil
	}
	return c.Embedding.Slice()
}

// SetEmbedding stores vec, or clears the column when vec is empty
func (c *Content) SetEmbedding(vec []float32) {
	if len(vec) == 0 {
		c.Embedding = nil
		return
	}
	v := pgvector.NewVector(vec)
	c.Embedding = &v
}

// ScoredContent is a nearest-neighbor hit with its cosine similarity to the query
type ScoredContent struct {
	Content
	Score float64 `json:"score"`
}
