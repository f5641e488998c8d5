package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type QuoteFile struct{ ent.Schema }

func (QuoteFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "quote_files"},
	}
}

func (QuoteFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so the repository can query by comparison directly
		field.UUID("comparison_id", uuid.UUID{}).Immutable(),
		field.String("filename").NotEmpty().Immutable(),
		field.String("storage_path").NotEmpty().Immutable(),
		field.Int64("file_size").NonNegative().Immutable(),
		field.Int("vendor_slot").Optional().Nillable().Immutable(),
		field.Time("uploaded_at").Default(time.Now).Immutable(),
	}
}

func (QuoteFile) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY files -> ONE comparison
		edge.From("comparison", Comparison.Type).
			Ref("files").
			Field("comparison_id").
			Required().
			Unique().
			Immutable(),
	}
}

func (QuoteFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("comparison_id", "uploaded_at"),
	}
}
