// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/billsnap/billsnap/db/ent/schema"
	"github.com/billsnap/billsnap/gen/ent/bill"
	"github.com/billsnap/billsnap/gen/ent/document"
	"github.com/billsnap/billsnap/gen/ent/extractjob"
	"github.com/billsnap/billsnap/gen/ent/paymentmethod"
	"github.com/billsnap/billsnap/gen/ent/receipt"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	billFields := schema.Bill{}.Fields()
	_ = billFields
	// billDescVendorName is the schema descriptor for vendor_name field.
	billDescVendorName := billFields[3].Descriptor()
	// bill.VendorNameValidator is a validator for the "vendor_name" field. It is called by the builders before save.
	bill.VendorNameValidator = billDescVendorName.Validators[0].(func(string) error)
	// billDescPaid is the schema descriptor for paid field.
	billDescPaid := billFields[6].Descriptor()
	// bill.DefaultPaid holds the default value on creation for the paid field.
	bill.DefaultPaid = billDescPaid.Default.(bool)
	// billDescCreatedAt is the schema descriptor for created_at field.
	billDescCreatedAt := billFields[9].Descriptor()
	// bill.DefaultCreatedAt holds the default value on creation for the created_at field.
	bill.DefaultCreatedAt = billDescCreatedAt.Default.(func() time.Time)
	// billDescUpdatedAt is the schema descriptor for updated_at field.
	billDescUpdatedAt := billFields[10].Descriptor()
	// bill.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bill.DefaultUpdatedAt = billDescUpdatedAt.Default.(func() time.Time)
	// bill.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bill.UpdateDefaultUpdatedAt = billDescUpdatedAt.UpdateDefault.(func() time.Time)
	// billDescID is the schema descriptor for id field.
	billDescID := billFields[0].Descriptor()
	// bill.DefaultID holds the default value on creation for the id field.
	bill.DefaultID = billDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFileName is the schema descriptor for file_name field.
	documentDescFileName := documentFields[2].Descriptor()
	// document.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	document.FileNameValidator = documentDescFileName.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[10].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[11].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[2].Descriptor()
	// extractjob.DefaultStatus holds the default value on creation for the status field.
	extractjob.DefaultStatus = extractjobDescStatus.Default.(string)
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[3].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[9].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	paymentmethodFields := schema.PaymentMethod{}.Fields()
	_ = paymentmethodFields
	// paymentmethodDescLastFour is the schema descriptor for last_four field.
	paymentmethodDescLastFour := paymentmethodFields[4].Descriptor()
	// paymentmethod.LastFourValidator is a validator for the "last_four" field. It is called by the builders before save.
	paymentmethod.LastFourValidator = paymentmethodDescLastFour.Validators[0].(func(string) error)
	// paymentmethodDescCreatedAt is the schema descriptor for created_at field.
	paymentmethodDescCreatedAt := paymentmethodFields[6].Descriptor()
	// paymentmethod.DefaultCreatedAt holds the default value on creation for the created_at field.
	paymentmethod.DefaultCreatedAt = paymentmethodDescCreatedAt.Default.(func() time.Time)
	// paymentmethodDescID is the schema descriptor for id field.
	paymentmethodDescID := paymentmethodFields[0].Descriptor()
	// paymentmethod.DefaultID holds the default value on creation for the id field.
	paymentmethod.DefaultID = paymentmethodDescID.Default.(func() uuid.UUID)
	receiptFields := schema.Receipt{}.Fields()
	_ = receiptFields
	// receiptDescVendorName is the schema descriptor for vendor_name field.
	receiptDescVendorName := receiptFields[3].Descriptor()
	// receipt.VendorNameValidator is a validator for the "vendor_name" field. It is called by the builders before save.
	receipt.VendorNameValidator = receiptDescVendorName.Validators[0].(func(string) error)
	// receiptDescCreatedAt is the schema descriptor for created_at field.
	receiptDescCreatedAt := receiptFields[8].Descriptor()
	// receipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	receipt.DefaultCreatedAt = receiptDescCreatedAt.Default.(func() time.Time)
	// receiptDescUpdatedAt is the schema descriptor for updated_at field.
	receiptDescUpdatedAt := receiptFields[9].Descriptor()
	// receipt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	receipt.DefaultUpdatedAt = receiptDescUpdatedAt.Default.(func() time.Time)
	// receipt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	receipt.UpdateDefaultUpdatedAt = receiptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// receiptDescID is the schema descriptor for id field.
	receiptDescID := receiptFields[0].Descriptor()
	// receipt.DefaultID holds the default value on creation for the id field.
	receipt.DefaultID = receiptDescID.Default.(func() uuid.UUID)
}
