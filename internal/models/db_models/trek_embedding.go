package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type TrekEmbedding struct {
	TrekID     string `gorm:"primaryKey;column:trek_id"`
	Name       string
	Region     string
	Difficulty string
	Highlights pq.StringArray  `gorm:"type:text[]"`
	Embedding  pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}
