// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/comparison"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/predicate"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/quotefile"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeComparison = "Comparison"
	TypeQuoteFile  = "QuoteFile"
)

// ComparisonMutation represents an operation that mutates the Comparison nodes in the graph.
type ComparisonMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	title           *string
	status          *string
	items           *[]entity.ComparisonItem
	appenditems     []entity.ComparisonItem
	vendors         *[]entity.VendorRef
	appendvendors   []entity.VendorRef
	total_cents     *int64
	addtotal_cents  *int64
	item_count      *int
	additem_count   *int
	vendor_count    *int
	addvendor_count *int
	memo            *string
	failure_reason  *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	files           map[uuid.UUID]struct{}
	removedfiles    map[uuid.UUID]struct{}
	clearedfiles    bool
	done            bool
	oldValue        func(context.Context) (*Comparison, error)
	predicates      []predicate.Comparison
}

var _ ent.Mutation = (*ComparisonMutation)(nil)

// comparisonOption allows management of the mutation configuration using functional options.
type comparisonOption func(*ComparisonMutation)

// newComparisonMutation creates new mutation for the Comparison entity.
func newComparisonMutation(c config, op Op, opts ...comparisonOption) *ComparisonMutation {
	m := &ComparisonMutation{
		config:        c,
		op:            op,
		typ:           TypeComparison,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withComparisonID sets the ID field of the mutation.
func withComparisonID(id uuid.UUID) comparisonOption {
	return func(m *ComparisonMutation) {
		var (
			err   error
			once  sync.Once
			value *Comparison
		)
		m.oldValue = func(ctx context.Context) (*Comparison, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Comparison.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComparison sets the old Comparison of the mutation.
func withComparison(node *Comparison) comparisonOption {
	return func(m *ComparisonMutation) {
		m.oldValue = func(context.Context) (*Comparison, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ComparisonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ComparisonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Comparison entities.
func (m *ComparisonMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ComparisonMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ComparisonMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Comparison.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ComparisonMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ComparisonMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ComparisonMutation) ResetTitle() {
	m.title = nil
}

// SetStatus sets the "status" field.
func (m *ComparisonMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ComparisonMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ComparisonMutation) ResetStatus() {
	m.status = nil
}

// SetItems sets the "items" field.
func (m *ComparisonMutation) SetItems(ei []entity.ComparisonItem) {
	m.items = &ei
	m.appenditems = nil
}

// Items returns the value of the "items" field in the mutation.
func (m *ComparisonMutation) Items() (r []entity.ComparisonItem, exists bool) {
	v := m.items
	if v == nil {
		return
	}
	return *v, true
}

// OldItems returns the old "items" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldItems(ctx context.Context) (v []entity.ComparisonItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItems: %w", err)
	}
	return oldValue.Items, nil
}

// AppendItems adds ei to the "items" field.
func (m *ComparisonMutation) AppendItems(ei []entity.ComparisonItem) {
	m.appenditems = append(m.appenditems, ei...)
}

// AppendedItems returns the list of values that were appended to the "items" field in this mutation.
func (m *ComparisonMutation) AppendedItems() ([]entity.ComparisonItem, bool) {
	if len(m.appenditems) == 0 {
		return nil, false
	}
	return m.appenditems, true
}

// ClearItems clears the value of the "items" field.
func (m *ComparisonMutation) ClearItems() {
	m.items = nil
	m.appenditems = nil
	m.clearedFields[comparison.FieldItems] = struct{}{}
}

// ItemsCleared returns if the "items" field was cleared in this mutation.
func (m *ComparisonMutation) ItemsCleared() bool {
	_, ok := m.clearedFields[comparison.FieldItems]
	return ok
}

// ResetItems resets all changes to the "items" field.
func (m *ComparisonMutation) ResetItems() {
	m.items = nil
	m.appenditems = nil
	delete(m.clearedFields, comparison.FieldItems)
}

// SetVendors sets the "vendors" field.
func (m *ComparisonMutation) SetVendors(er []entity.VendorRef) {
	m.vendors = &er
	m.appendvendors = nil
}

// Vendors returns the value of the "vendors" field in the mutation.
func (m *ComparisonMutation) Vendors() (r []entity.VendorRef, exists bool) {
	v := m.vendors
	if v == nil {
		return
	}
	return *v, true
}

// OldVendors returns the old "vendors" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldVendors(ctx context.Context) (v []entity.VendorRef, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendors: %w", err)
	}
	return oldValue.Vendors, nil
}

// AppendVendors adds er to the "vendors" field.
func (m *ComparisonMutation) AppendVendors(er []entity.VendorRef) {
	m.appendvendors = append(m.appendvendors, er...)
}

// AppendedVendors returns the list of values that were appended to the "vendors" field in this mutation.
func (m *ComparisonMutation) AppendedVendors() ([]entity.VendorRef, bool) {
	if len(m.appendvendors) == 0 {
		return nil, false
	}
	return m.appendvendors, true
}

// ClearVendors clears the value of the "vendors" field.
func (m *ComparisonMutation) ClearVendors() {
	m.vendors = nil
	m.appendvendors = nil
	m.clearedFields[comparison.FieldVendors] = struct{}{}
}

// VendorsCleared returns if the "vendors" field was cleared in this mutation.
func (m *ComparisonMutation) VendorsCleared() bool {
	_, ok := m.clearedFields[comparison.FieldVendors]
	return ok
}

// ResetVendors resets all changes to the "vendors" field.
func (m *ComparisonMutation) ResetVendors() {
	m.vendors = nil
	m.appendvendors = nil
	delete(m.clearedFields, comparison.FieldVendors)
}

// SetTotalCents sets the "total_cents" field.
func (m *ComparisonMutation) SetTotalCents(i int64) {
	m.total_cents = &i
	m.addtotal_cents = nil
}

// TotalCents returns the value of the "total_cents" field in the mutation.
func (m *ComparisonMutation) TotalCents() (r int64, exists bool) {
	v := m.total_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCents returns the old "total_cents" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldTotalCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCents: %w", err)
	}
	return oldValue.TotalCents, nil
}

// AddTotalCents adds i to the "total_cents" field.
func (m *ComparisonMutation) AddTotalCents(i int64) {
	if m.addtotal_cents != nil {
		*m.addtotal_cents += i
	} else {
		m.addtotal_cents = &i
	}
}

// AddedTotalCents returns the value that was added to the "total_cents" field in this mutation.
func (m *ComparisonMutation) AddedTotalCents() (r int64, exists bool) {
	v := m.addtotal_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCents resets all changes to the "total_cents" field.
func (m *ComparisonMutation) ResetTotalCents() {
	m.total_cents = nil
	m.addtotal_cents = nil
}

// SetItemCount sets the "item_count" field.
func (m *ComparisonMutation) SetItemCount(i int) {
	m.item_count = &i
	m.additem_count = nil
}

// ItemCount returns the value of the "item_count" field in the mutation.
func (m *ComparisonMutation) ItemCount() (r int, exists bool) {
	v := m.item_count
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCount returns the old "item_count" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldItemCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCount: %w", err)
	}
	return oldValue.ItemCount, nil
}

// AddItemCount adds i to the "item_count" field.
func (m *ComparisonMutation) AddItemCount(i int) {
	if m.additem_count != nil {
		*m.additem_count += i
	} else {
		m.additem_count = &i
	}
}

// AddedItemCount returns the value that was added to the "item_count" field in this mutation.
func (m *ComparisonMutation) AddedItemCount() (r int, exists bool) {
	v := m.additem_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemCount resets all changes to the "item_count" field.
func (m *ComparisonMutation) ResetItemCount() {
	m.item_count = nil
	m.additem_count = nil
}

// SetVendorCount sets the "vendor_count" field.
func (m *ComparisonMutation) SetVendorCount(i int) {
	m.vendor_count = &i
	m.addvendor_count = nil
}

// VendorCount returns the value of the "vendor_count" field in the mutation.
func (m *ComparisonMutation) VendorCount() (r int, exists bool) {
	v := m.vendor_count
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorCount returns the old "vendor_count" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldVendorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorCount: %w", err)
	}
	return oldValue.VendorCount, nil
}

// AddVendorCount adds i to the "vendor_count" field.
func (m *ComparisonMutation) AddVendorCount(i int) {
	if m.addvendor_count != nil {
		*m.addvendor_count += i
	} else {
		m.addvendor_count = &i
	}
}

// AddedVendorCount returns the value that was added to the "vendor_count" field in this mutation.
func (m *ComparisonMutation) AddedVendorCount() (r int, exists bool) {
	v := m.addvendor_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetVendorCount resets all changes to the "vendor_count" field.
func (m *ComparisonMutation) ResetVendorCount() {
	m.vendor_count = nil
	m.addvendor_count = nil
}

// SetMemo sets the "memo" field.
func (m *ComparisonMutation) SetMemo(s string) {
	m.memo = &s
}

// Memo returns the value of the "memo" field in the mutation.
func (m *ComparisonMutation) Memo() (r string, exists bool) {
	v := m.memo
	if v == nil {
		return
	}
	return *v, true
}

// OldMemo returns the old "memo" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldMemo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemo: %w", err)
	}
	return oldValue.Memo, nil
}

// ClearMemo clears the value of the "memo" field.
func (m *ComparisonMutation) ClearMemo() {
	m.memo = nil
	m.clearedFields[comparison.FieldMemo] = struct{}{}
}

// MemoCleared returns if the "memo" field was cleared in this mutation.
func (m *ComparisonMutation) MemoCleared() bool {
	_, ok := m.clearedFields[comparison.FieldMemo]
	return ok
}

// ResetMemo resets all changes to the "memo" field.
func (m *ComparisonMutation) ResetMemo() {
	m.memo = nil
	delete(m.clearedFields, comparison.FieldMemo)
}

// SetFailureReason sets the "failure_reason" field.
func (m *ComparisonMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *ComparisonMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *ComparisonMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[comparison.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *ComparisonMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[comparison.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *ComparisonMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, comparison.FieldFailureReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *ComparisonMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ComparisonMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ComparisonMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ComparisonMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ComparisonMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Comparison entity.
// If the Comparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComparisonMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ComparisonMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFileIDs adds the "files" edge to the QuoteFile entity by ids.
func (m *ComparisonMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the QuoteFile entity.
func (m *ComparisonMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the QuoteFile entity was cleared.
func (m *ComparisonMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the QuoteFile entity by IDs.
func (m *ComparisonMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the QuoteFile entity.
func (m *ComparisonMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *ComparisonMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *ComparisonMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// Where appends a list predicates to the ComparisonMutation builder.
func (m *ComparisonMutation) Where(ps ...predicate.Comparison) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ComparisonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ComparisonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Comparison, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ComparisonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ComparisonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Comparison).
func (m *ComparisonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ComparisonMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.title != nil {
		fields = append(fields, comparison.FieldTitle)
	}
	if m.status != nil {
		fields = append(fields, comparison.FieldStatus)
	}
	if m.items != nil {
		fields = append(fields, comparison.FieldItems)
	}
	if m.vendors != nil {
		fields = append(fields, comparison.FieldVendors)
	}
	if m.total_cents != nil {
		fields = append(fields, comparison.FieldTotalCents)
	}
	if m.item_count != nil {
		fields = append(fields, comparison.FieldItemCount)
	}
	if m.vendor_count != nil {
		fields = append(fields, comparison.FieldVendorCount)
	}
	if m.memo != nil {
		fields = append(fields, comparison.FieldMemo)
	}
	if m.failure_reason != nil {
		fields = append(fields, comparison.FieldFailureReason)
	}
	if m.created_at != nil {
		fields = append(fields, comparison.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, comparison.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ComparisonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case comparison.FieldTitle:
		return m.Title()
	case comparison.FieldStatus:
		return m.Status()
	case comparison.FieldItems:
		return m.Items()
	case comparison.FieldVendors:
		return m.Vendors()
	case comparison.FieldTotalCents:
		return m.TotalCents()
	case comparison.FieldItemCount:
		return m.ItemCount()
	case comparison.FieldVendorCount:
		return m.VendorCount()
	case comparison.FieldMemo:
		return m.Memo()
	case comparison.FieldFailureReason:
		return m.FailureReason()
	case comparison.FieldCreatedAt:
		return m.CreatedAt()
	case comparison.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ComparisonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case comparison.FieldTitle:
		return m.OldTitle(ctx)
	case comparison.FieldStatus:
		return m.OldStatus(ctx)
	case comparison.FieldItems:
		return m.OldItems(ctx)
	case comparison.FieldVendors:
		return m.OldVendors(ctx)
	case comparison.FieldTotalCents:
		return m.OldTotalCents(ctx)
	case comparison.FieldItemCount:
		return m.OldItemCount(ctx)
	case comparison.FieldVendorCount:
		return m.OldVendorCount(ctx)
	case comparison.FieldMemo:
		return m.OldMemo(ctx)
	case comparison.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case comparison.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case comparison.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Comparison field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComparisonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case comparison.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case comparison.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case comparison.FieldItems:
		v, ok := value.([]entity.ComparisonItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItems(v)
		return nil
	case comparison.FieldVendors:
		v, ok := value.([]entity.VendorRef)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendors(v)
		return nil
	case comparison.FieldTotalCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCents(v)
		return nil
	case comparison.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCount(v)
		return nil
	case comparison.FieldVendorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorCount(v)
		return nil
	case comparison.FieldMemo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemo(v)
		return nil
	case comparison.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case comparison.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case comparison.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Comparison field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ComparisonMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_cents != nil {
		fields = append(fields, comparison.FieldTotalCents)
	}
	if m.additem_count != nil {
		fields = append(fields, comparison.FieldItemCount)
	}
	if m.addvendor_count != nil {
		fields = append(fields, comparison.FieldVendorCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ComparisonMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case comparison.FieldTotalCents:
		return m.AddedTotalCents()
	case comparison.FieldItemCount:
		return m.AddedItemCount()
	case comparison.FieldVendorCount:
		return m.AddedVendorCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComparisonMutation) AddField(name string, value ent.Value) error {
	switch name {
	case comparison.FieldTotalCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCents(v)
		return nil
	case comparison.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemCount(v)
		return nil
	case comparison.FieldVendorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVendorCount(v)
		return nil
	}
	return fmt.Errorf("unknown Comparison numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ComparisonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(comparison.FieldItems) {
		fields = append(fields, comparison.FieldItems)
	}
	if m.FieldCleared(comparison.FieldVendors) {
		fields = append(fields, comparison.FieldVendors)
	}
	if m.FieldCleared(comparison.FieldMemo) {
		fields = append(fields, comparison.FieldMemo)
	}
	if m.FieldCleared(comparison.FieldFailureReason) {
		fields = append(fields, comparison.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ComparisonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ComparisonMutation) ClearField(name string) error {
	switch name {
	case comparison.FieldItems:
		m.ClearItems()
		return nil
	case comparison.FieldVendors:
		m.ClearVendors()
		return nil
	case comparison.FieldMemo:
		m.ClearMemo()
		return nil
	case comparison.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown Comparison nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ComparisonMutation) ResetField(name string) error {
	switch name {
	case comparison.FieldTitle:
		m.ResetTitle()
		return nil
	case comparison.FieldStatus:
		m.ResetStatus()
		return nil
	case comparison.FieldItems:
		m.ResetItems()
		return nil
	case comparison.FieldVendors:
		m.ResetVendors()
		return nil
	case comparison.FieldTotalCents:
		m.ResetTotalCents()
		return nil
	case comparison.FieldItemCount:
		m.ResetItemCount()
		return nil
	case comparison.FieldVendorCount:
		m.ResetVendorCount()
		return nil
	case comparison.FieldMemo:
		m.ResetMemo()
		return nil
	case comparison.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case comparison.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case comparison.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Comparison field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ComparisonMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.files != nil {
		edges = append(edges, comparison.EdgeFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ComparisonMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case comparison.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ComparisonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedfiles != nil {
		edges = append(edges, comparison.EdgeFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ComparisonMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case comparison.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ComparisonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfiles {
		edges = append(edges, comparison.EdgeFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ComparisonMutation) EdgeCleared(name string) bool {
	switch name {
	case comparison.EdgeFiles:
		return m.clearedfiles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ComparisonMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Comparison unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ComparisonMutation) ResetEdge(name string) error {
	switch name {
	case comparison.EdgeFiles:
		m.ResetFiles()
		return nil
	}
	return fmt.Errorf("unknown Comparison edge %s", name)
}

// QuoteFileMutation represents an operation that mutates the QuoteFile nodes in the graph.
type QuoteFileMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	filename          *string
	storage_path      *string
	file_size         *int64
	addfile_size      *int64
	vendor_slot       *int
	addvendor_slot    *int
	uploaded_at       *time.Time
	clearedFields     map[string]struct{}
	comparison        *uuid.UUID
	clearedcomparison bool
	done              bool
	oldValue          func(context.Context) (*QuoteFile, error)
	predicates        []predicate.QuoteFile
}

var _ ent.Mutation = (*QuoteFileMutation)(nil)

// quotefileOption allows management of the mutation configuration using functional options.
type quotefileOption func(*QuoteFileMutation)

// newQuoteFileMutation creates new mutation for the QuoteFile entity.
func newQuoteFileMutation(c config, op Op, opts ...quotefileOption) *QuoteFileMutation {
	m := &QuoteFileMutation{
		config:        c,
		op:            op,
		typ:           TypeQuoteFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuoteFileID sets the ID field of the mutation.
func withQuoteFileID(id uuid.UUID) quotefileOption {
	return func(m *QuoteFileMutation) {
		var (
			err   error
			once  sync.Once
			value *QuoteFile
		)
		m.oldValue = func(ctx context.Context) (*QuoteFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuoteFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuoteFile sets the old QuoteFile of the mutation.
func withQuoteFile(node *QuoteFile) quotefileOption {
	return func(m *QuoteFileMutation) {
		m.oldValue = func(context.Context) (*QuoteFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuoteFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuoteFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuoteFile entities.
func (m *QuoteFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuoteFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuoteFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuoteFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetComparisonID sets the "comparison_id" field.
func (m *QuoteFileMutation) SetComparisonID(u uuid.UUID) {
	m.comparison = &u
}

// ComparisonID returns the value of the "comparison_id" field in the mutation.
func (m *QuoteFileMutation) ComparisonID() (r uuid.UUID, exists bool) {
	v := m.comparison
	if v == nil {
		return
	}
	return *v, true
}

// OldComparisonID returns the old "comparison_id" field's value of the QuoteFile entity.
// If the QuoteFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteFileMutation) OldComparisonID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComparisonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComparisonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComparisonID: %w", err)
	}
	return oldValue.ComparisonID, nil
}

// ResetComparisonID resets all changes to the "comparison_id" field.
func (m *QuoteFileMutation) ResetComparisonID() {
	m.comparison = nil
}

// SetFilename sets the "filename" field.
func (m *QuoteFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *QuoteFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the QuoteFile entity.
// If the QuoteFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *QuoteFileMutation) ResetFilename() {
	m.filename = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *QuoteFileMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *QuoteFileMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the QuoteFile entity.
// If the QuoteFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteFileMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *QuoteFileMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetFileSize sets the "file_size" field.
func (m *QuoteFileMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *QuoteFileMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the QuoteFile entity.
// If the QuoteFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteFileMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *QuoteFileMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *QuoteFileMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *QuoteFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetVendorSlot sets the "vendor_slot" field.
func (m *QuoteFileMutation) SetVendorSlot(i int) {
	m.vendor_slot = &i
	m.addvendor_slot = nil
}

// VendorSlot returns the value of the "vendor_slot" field in the mutation.
func (m *QuoteFileMutation) VendorSlot() (r int, exists bool) {
	v := m.vendor_slot
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorSlot returns the old "vendor_slot" field's value of the QuoteFile entity.
// If the QuoteFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteFileMutation) OldVendorSlot(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorSlot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorSlot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorSlot: %w", err)
	}
	return oldValue.VendorSlot, nil
}

// AddVendorSlot adds i to the "vendor_slot" field.
func (m *QuoteFileMutation) AddVendorSlot(i int) {
	if m.addvendor_slot != nil {
		*m.addvendor_slot += i
	} else {
		m.addvendor_slot = &i
	}
}

// AddedVendorSlot returns the value that was added to the "vendor_slot" field in this mutation.
func (m *QuoteFileMutation) AddedVendorSlot() (r int, exists bool) {
	v := m.addvendor_slot
	if v == nil {
		return
	}
	return *v, true
}

// ClearVendorSlot clears the value of the "vendor_slot" field.
func (m *QuoteFileMutation) ClearVendorSlot() {
	m.vendor_slot = nil
	m.addvendor_slot = nil
	m.clearedFields[quotefile.FieldVendorSlot] = struct{}{}
}

// VendorSlotCleared returns if the "vendor_slot" field was cleared in this mutation.
func (m *QuoteFileMutation) VendorSlotCleared() bool {
	_, ok := m.clearedFields[quotefile.FieldVendorSlot]
	return ok
}

// ResetVendorSlot resets all changes to the "vendor_slot" field.
func (m *QuoteFileMutation) ResetVendorSlot() {
	m.vendor_slot = nil
	m.addvendor_slot = nil
	delete(m.clearedFields, quotefile.FieldVendorSlot)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *QuoteFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *QuoteFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the QuoteFile entity.
// If the QuoteFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *QuoteFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearComparison clears the "comparison" edge to the Comparison entity.
func (m *QuoteFileMutation) ClearComparison() {
	m.clearedcomparison = true
	m.clearedFields[quotefile.FieldComparisonID] = struct{}{}
}

// ComparisonCleared reports if the "comparison" edge to the Comparison entity was cleared.
func (m *QuoteFileMutation) ComparisonCleared() bool {
	return m.clearedcomparison
}

// ComparisonIDs returns the "comparison" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ComparisonID instead. It exists only for internal usage by the builders.
func (m *QuoteFileMutation) ComparisonIDs() (ids []uuid.UUID) {
	if id := m.comparison; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetComparison resets all changes to the "comparison" edge.
func (m *QuoteFileMutation) ResetComparison() {
	m.comparison = nil
	m.clearedcomparison = false
}

// Where appends a list predicates to the QuoteFileMutation builder.
func (m *QuoteFileMutation) Where(ps ...predicate.QuoteFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuoteFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuoteFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuoteFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuoteFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuoteFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuoteFile).
func (m *QuoteFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuoteFileMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.comparison != nil {
		fields = append(fields, quotefile.FieldComparisonID)
	}
	if m.filename != nil {
		fields = append(fields, quotefile.FieldFilename)
	}
	if m.storage_path != nil {
		fields = append(fields, quotefile.FieldStoragePath)
	}
	if m.file_size != nil {
		fields = append(fields, quotefile.FieldFileSize)
	}
	if m.vendor_slot != nil {
		fields = append(fields, quotefile.FieldVendorSlot)
	}
	if m.uploaded_at != nil {
		fields = append(fields, quotefile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuoteFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quotefile.FieldComparisonID:
		return m.ComparisonID()
	case quotefile.FieldFilename:
		return m.Filename()
	case quotefile.FieldStoragePath:
		return m.StoragePath()
	case quotefile.FieldFileSize:
		return m.FileSize()
	case quotefile.FieldVendorSlot:
		return m.VendorSlot()
	case quotefile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuoteFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quotefile.FieldComparisonID:
		return m.OldComparisonID(ctx)
	case quotefile.FieldFilename:
		return m.OldFilename(ctx)
	case quotefile.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case quotefile.FieldFileSize:
		return m.OldFileSize(ctx)
	case quotefile.FieldVendorSlot:
		return m.OldVendorSlot(ctx)
	case quotefile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuoteFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuoteFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quotefile.FieldComparisonID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComparisonID(v)
		return nil
	case quotefile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case quotefile.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case quotefile.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case quotefile.FieldVendorSlot:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorSlot(v)
		return nil
	case quotefile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuoteFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuoteFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, quotefile.FieldFileSize)
	}
	if m.addvendor_slot != nil {
		fields = append(fields, quotefile.FieldVendorSlot)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuoteFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quotefile.FieldFileSize:
		return m.AddedFileSize()
	case quotefile.FieldVendorSlot:
		return m.AddedVendorSlot()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuoteFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quotefile.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case quotefile.FieldVendorSlot:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVendorSlot(v)
		return nil
	}
	return fmt.Errorf("unknown QuoteFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuoteFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quotefile.FieldVendorSlot) {
		fields = append(fields, quotefile.FieldVendorSlot)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuoteFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuoteFileMutation) ClearField(name string) error {
	switch name {
	case quotefile.FieldVendorSlot:
		m.ClearVendorSlot()
		return nil
	}
	return fmt.Errorf("unknown QuoteFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuoteFileMutation) ResetField(name string) error {
	switch name {
	case quotefile.FieldComparisonID:
		m.ResetComparisonID()
		return nil
	case quotefile.FieldFilename:
		m.ResetFilename()
		return nil
	case quotefile.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case quotefile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case quotefile.FieldVendorSlot:
		m.ResetVendorSlot()
		return nil
	case quotefile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown QuoteFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuoteFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.comparison != nil {
		edges = append(edges, quotefile.EdgeComparison)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuoteFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case quotefile.EdgeComparison:
		if id := m.comparison; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuoteFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuoteFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuoteFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcomparison {
		edges = append(edges, quotefile.EdgeComparison)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuoteFileMutation) EdgeCleared(name string) bool {
	switch name {
	case quotefile.EdgeComparison:
		return m.clearedcomparison
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuoteFileMutation) ClearEdge(name string) error {
	switch name {
	case quotefile.EdgeComparison:
		m.ClearComparison()
		return nil
	}
	return fmt.Errorf("unknown QuoteFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuoteFileMutation) ResetEdge(name string) error {
	switch name {
	case quotefile.EdgeComparison:
		m.ResetComparison()
		return nil
	}
	return fmt.Errorf("unknown QuoteFile edge %s", name)
}
