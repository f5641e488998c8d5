package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/harshmriduhash/iq-procure-assist/constants"
	"github.com/harshmriduhash/iq-procure-assist/db/ent/schema/utils"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
)

type Comparison struct{ ent.Schema }

func (Comparison) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "comparisons"},
	}
}

func (Comparison) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("title").NotEmpty(),
		// submitted | processing | completed | failed; transitions are
		// guarded by predicated updates in the repository.
		field.String("status").
			Default(string(constants.StatusSubmitted)).
			Validate(utils.EnumValidator(constants.StatusStrings(constants.AllStatuses)...)),
		field.JSON("items", []entity.ComparisonItem{}).
			Optional(),
		field.JSON("vendors", []entity.VendorRef{}).
			Optional(),
		field.Int64("total_cents").Default(0),
		field.Int("item_count").Default(0).NonNegative(),
		field.Int("vendor_count").Default(0).NonNegative(),
		field.String("memo").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("failure_reason").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Comparison) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE comparison -> MANY quote files
		edge.To("files", QuoteFile.Type),
	}
}

func (Comparison) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "updated_at"),
		index.Fields("created_at"),
	}
}
