// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ComparisonsColumns holds the columns for the "comparisons" table.
	ComparisonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "submitted"},
		{Name: "items", Type: field.TypeJSON, Nullable: true},
		{Name: "vendors", Type: field.TypeJSON, Nullable: true},
		{Name: "total_cents", Type: field.TypeInt64, Default: 0},
		{Name: "item_count", Type: field.TypeInt, Default: 0},
		{Name: "vendor_count", Type: field.TypeInt, Default: 0},
		{Name: "memo", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ComparisonsTable holds the schema information for the "comparisons" table.
	ComparisonsTable = &schema.Table{
		Name:       "comparisons",
		Columns:    ComparisonsColumns,
		PrimaryKey: []*schema.Column{ComparisonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "comparison_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ComparisonsColumns[2], ComparisonsColumns[11]},
			},
			{
				Name:    "comparison_created_at",
				Unique:  false,
				Columns: []*schema.Column{ComparisonsColumns[10]},
			},
		},
	}
	// QuoteFilesColumns holds the columns for the "quote_files" table.
	QuoteFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "vendor_slot", Type: field.TypeInt, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "comparison_id", Type: field.TypeUUID},
	}
	// QuoteFilesTable holds the schema information for the "quote_files" table.
	QuoteFilesTable = &schema.Table{
		Name:       "quote_files",
		Columns:    QuoteFilesColumns,
		PrimaryKey: []*schema.Column{QuoteFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quote_files_comparisons_files",
				Columns:    []*schema.Column{QuoteFilesColumns[6]},
				RefColumns: []*schema.Column{ComparisonsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quotefile_comparison_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{QuoteFilesColumns[6], QuoteFilesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ComparisonsTable,
		QuoteFilesTable,
	}
)

func init() {
	ComparisonsTable.Annotation = &entsql.Annotation{
		Table: "comparisons",
	}
	QuoteFilesTable.ForeignKeys[0].RefTable = ComparisonsTable
	QuoteFilesTable.Annotation = &entsql.Annotation{
		Table: "quote_files",
	}
}
