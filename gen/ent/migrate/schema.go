// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BillsColumns holds the columns for the "bills" table.
	BillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "vendor_name", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "due_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "paid", Type: field.TypeBool, Default: false},
		{Name: "paid_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Unique: true},
	}
	// BillsTable holds the schema information for the "bills" table.
	BillsTable = &schema.Table{
		Name:       "bills",
		Columns:    BillsColumns,
		PrimaryKey: []*schema.Column{BillsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bills_documents_bill",
				Columns:    []*schema.Column{BillsColumns[10]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeEnum, Enums: []string{"RECEIPT", "BILL", "OTHER"}, Default: "OTHER"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"DRAFT", "PROCESSED", "EXPORTED"}, Default: "DRAFT"},
		{Name: "vendor_name", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "document_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "payment_method_id", Type: field.TypeUUID, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
	}
	// ExtractJobsColumns holds the columns for the "extract_jobs" table.
	ExtractJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true, SchemaType: map[string]string{"postgres": "real"}},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ExtractJobsTable holds the schema information for the "extract_jobs" table.
	ExtractJobsTable = &schema.Table{
		Name:       "extract_jobs",
		Columns:    ExtractJobsColumns,
		PrimaryKey: []*schema.Column{ExtractJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_jobs_documents_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[9]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// PaymentMethodsColumns holds the columns for the "payment_methods" table.
	PaymentMethodsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "method_type", Type: field.TypeEnum, Enums: []string{"credit_card", "debit_card", "bank_account"}},
		{Name: "card_type", Type: field.TypeString, Nullable: true},
		{Name: "last_four", Type: field.TypeString},
		{Name: "nickname", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PaymentMethodsTable holds the schema information for the "payment_methods" table.
	PaymentMethodsTable = &schema.Table{
		Name:       "payment_methods",
		Columns:    PaymentMethodsColumns,
		PrimaryKey: []*schema.Column{PaymentMethodsColumns[0]},
	}
	// ReceiptsColumns holds the columns for the "receipts" table.
	ReceiptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "vendor_name", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "receipt_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Unique: true},
		{Name: "payment_method_id", Type: field.TypeUUID, Nullable: true},
	}
	// ReceiptsTable holds the schema information for the "receipts" table.
	ReceiptsTable = &schema.Table{
		Name:       "receipts",
		Columns:    ReceiptsColumns,
		PrimaryKey: []*schema.Column{ReceiptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipts_documents_receipt",
				Columns:    []*schema.Column{ReceiptsColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "receipts_payment_methods_receipts",
				Columns:    []*schema.Column{ReceiptsColumns[9]},
				RefColumns: []*schema.Column{PaymentMethodsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BillsTable,
		DocumentsTable,
		ExtractJobsTable,
		PaymentMethodsTable,
		ReceiptsTable,
	}
)

func init() {
	BillsTable.ForeignKeys[0].RefTable = DocumentsTable
	BillsTable.Annotation = &entsql.Annotation{
		Table: "bills",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractJobsTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractJobsTable.Annotation = &entsql.Annotation{
		Table: "extract_jobs",
	}
	PaymentMethodsTable.Annotation = &entsql.Annotation{
		Table: "payment_methods",
	}
	ReceiptsTable.ForeignKeys[0].RefTable = DocumentsTable
	ReceiptsTable.ForeignKeys[1].RefTable = PaymentMethodsTable
	ReceiptsTable.Annotation = &entsql.Annotation{
		Table: "receipts",
	}
}
