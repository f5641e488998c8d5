// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: procurement/v1/comparisons.proto

package procurementv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type QuoteFileInput struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	StoragePath   string                 `protobuf:"bytes,2,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	FileSize      int64                  `protobuf:"varint,3,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	VendorSlot    *int32                 `protobuf:"varint,4,opt,name=vendor_slot,json=vendorSlot,proto3,oneof" json:"vendor_slot,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QuoteFileInput) Reset() {
	*x = QuoteFileInput{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QuoteFileInput) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QuoteFileInput) ProtoMessage() {}

func (x *QuoteFileInput) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QuoteFileInput.ProtoReflect.Descriptor instead.
func (*QuoteFileInput) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{0}
}

func (x *QuoteFileInput) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *QuoteFileInput) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *QuoteFileInput) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *QuoteFileInput) GetVendorSlot() int32 {
	if x != nil && x.VendorSlot != nil {
		return *x.VendorSlot
	}
	return 0
}

type QuoteFile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	StoragePath   string                 `protobuf:"bytes,3,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	FileSize      int64                  `protobuf:"varint,4,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	VendorSlot    *int32                 `protobuf:"varint,5,opt,name=vendor_slot,json=vendorSlot,proto3,oneof" json:"vendor_slot,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,6,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QuoteFile) Reset() {
	*x = QuoteFile{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QuoteFile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QuoteFile) ProtoMessage() {}

func (x *QuoteFile) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QuoteFile.ProtoReflect.Descriptor instead.
func (*QuoteFile) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{1}
}

func (x *QuoteFile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *QuoteFile) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *QuoteFile) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *QuoteFile) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *QuoteFile) GetVendorSlot() int32 {
	if x != nil && x.VendorSlot != nil {
		return *x.VendorSlot
	}
	return 0
}

func (x *QuoteFile) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type VendorRef struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Contact       string                 `protobuf:"bytes,2,opt,name=contact,proto3" json:"contact,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VendorRef) Reset() {
	*x = VendorRef{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VendorRef) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VendorRef) ProtoMessage() {}

func (x *VendorRef) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VendorRef.ProtoReflect.Descriptor instead.
func (*VendorRef) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{2}
}

func (x *VendorRef) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *VendorRef) GetContact() string {
	if x != nil {
		return x.Contact
	}
	return ""
}

type ComparisonItem struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Name  string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Unit  string                 `protobuf:"bytes,2,opt,name=unit,proto3" json:"unit,omitempty"`
	// vendor index (into Comparison.vendors) -> price in integer cents;
	// a vendor with no price is absent, never zero
	PricesByVendorCents map[int32]int64 `protobuf:"bytes,3,rep,name=prices_by_vendor_cents,json=pricesByVendorCents,proto3" json:"prices_by_vendor_cents,omitempty" protobuf_key:"varint,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	// all vendors tied at the minimum/maximum; empty when no price present
	LowestVendors  []int32 `protobuf:"varint,4,rep,packed,name=lowest_vendors,json=lowestVendors,proto3" json:"lowest_vendors,omitempty"`
	HighestVendors []int32 `protobuf:"varint,5,rep,packed,name=highest_vendors,json=highestVendors,proto3" json:"highest_vendors,omitempty"`
	MinCents       *int64  `protobuf:"varint,6,opt,name=min_cents,json=minCents,proto3,oneof" json:"min_cents,omitempty"`
	MaxCents       *int64  `protobuf:"varint,7,opt,name=max_cents,json=maxCents,proto3,oneof" json:"max_cents,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ComparisonItem) Reset() {
	*x = ComparisonItem{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ComparisonItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComparisonItem) ProtoMessage() {}

func (x *ComparisonItem) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComparisonItem.ProtoReflect.Descriptor instead.
func (*ComparisonItem) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{3}
}

func (x *ComparisonItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ComparisonItem) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *ComparisonItem) GetPricesByVendorCents() map[int32]int64 {
	if x != nil {
		return x.PricesByVendorCents
	}
	return nil
}

func (x *ComparisonItem) GetLowestVendors() []int32 {
	if x != nil {
		return x.LowestVendors
	}
	return nil
}

func (x *ComparisonItem) GetHighestVendors() []int32 {
	if x != nil {
		return x.HighestVendors
	}
	return nil
}

func (x *ComparisonItem) GetMinCents() int64 {
	if x != nil && x.MinCents != nil {
		return *x.MinCents
	}
	return 0
}

func (x *ComparisonItem) GetMaxCents() int64 {
	if x != nil && x.MaxCents != nil {
		return *x.MaxCents
	}
	return 0
}

type Comparison struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	// submitted | processing | completed | failed
	Status        string            `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Files         []*QuoteFile      `protobuf:"bytes,4,rep,name=files,proto3" json:"files,omitempty"`
	Items         []*ComparisonItem `protobuf:"bytes,5,rep,name=items,proto3" json:"items,omitempty"`
	Vendors       []*VendorRef      `protobuf:"bytes,6,rep,name=vendors,proto3" json:"vendors,omitempty"`
	TotalCents    int64             `protobuf:"varint,7,opt,name=total_cents,json=totalCents,proto3" json:"total_cents,omitempty"`
	ItemCount     int32             `protobuf:"varint,8,opt,name=item_count,json=itemCount,proto3" json:"item_count,omitempty"`
	VendorCount   int32             `protobuf:"varint,9,opt,name=vendor_count,json=vendorCount,proto3" json:"vendor_count,omitempty"`
	Memo          string            `protobuf:"bytes,10,opt,name=memo,proto3" json:"memo,omitempty"`
	FailureReason string            `protobuf:"bytes,11,opt,name=failure_reason,json=failureReason,proto3" json:"failure_reason,omitempty"`
	// completed with zero items: "no data found", distinct from failed
	DataAbsent    bool   `protobuf:"varint,12,opt,name=data_absent,json=dataAbsent,proto3" json:"data_absent,omitempty"`
	CreatedAt     string `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Comparison) Reset() {
	*x = Comparison{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Comparison) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Comparison) ProtoMessage() {}

func (x *Comparison) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Comparison.ProtoReflect.Descriptor instead.
func (*Comparison) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{4}
}

func (x *Comparison) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Comparison) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Comparison) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Comparison) GetFiles() []*QuoteFile {
	if x != nil {
		return x.Files
	}
	return nil
}

func (x *Comparison) GetItems() []*ComparisonItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Comparison) GetVendors() []*VendorRef {
	if x != nil {
		return x.Vendors
	}
	return nil
}

func (x *Comparison) GetTotalCents() int64 {
	if x != nil {
		return x.TotalCents
	}
	return 0
}

func (x *Comparison) GetItemCount() int32 {
	if x != nil {
		return x.ItemCount
	}
	return 0
}

func (x *Comparison) GetVendorCount() int32 {
	if x != nil {
		return x.VendorCount
	}
	return 0
}

func (x *Comparison) GetMemo() string {
	if x != nil {
		return x.Memo
	}
	return ""
}

func (x *Comparison) GetFailureReason() string {
	if x != nil {
		return x.FailureReason
	}
	return ""
}

func (x *Comparison) GetDataAbsent() bool {
	if x != nil {
		return x.DataAbsent
	}
	return false
}

func (x *Comparison) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Comparison) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateComparisonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Title         string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Files         []*QuoteFileInput      `protobuf:"bytes,2,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateComparisonRequest) Reset() {
	*x = CreateComparisonRequest{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateComparisonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateComparisonRequest) ProtoMessage() {}

func (x *CreateComparisonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateComparisonRequest.ProtoReflect.Descriptor instead.
func (*CreateComparisonRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{5}
}

func (x *CreateComparisonRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CreateComparisonRequest) GetFiles() []*QuoteFileInput {
	if x != nil {
		return x.Files
	}
	return nil
}

type CreateComparisonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Comparison    *Comparison            `protobuf:"bytes,1,opt,name=comparison,proto3" json:"comparison,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateComparisonResponse) Reset() {
	*x = CreateComparisonResponse{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateComparisonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateComparisonResponse) ProtoMessage() {}

func (x *CreateComparisonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateComparisonResponse.ProtoReflect.Descriptor instead.
func (*CreateComparisonResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{6}
}

func (x *CreateComparisonResponse) GetComparison() *Comparison {
	if x != nil {
		return x.Comparison
	}
	return nil
}

type GetComparisonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetComparisonRequest) Reset() {
	*x = GetComparisonRequest{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetComparisonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetComparisonRequest) ProtoMessage() {}

func (x *GetComparisonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetComparisonRequest.ProtoReflect.Descriptor instead.
func (*GetComparisonRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{7}
}

func (x *GetComparisonRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetComparisonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Comparison    *Comparison            `protobuf:"bytes,1,opt,name=comparison,proto3" json:"comparison,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetComparisonResponse) Reset() {
	*x = GetComparisonResponse{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetComparisonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetComparisonResponse) ProtoMessage() {}

func (x *GetComparisonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetComparisonResponse.ProtoReflect.Descriptor instead.
func (*GetComparisonResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{8}
}

func (x *GetComparisonResponse) GetComparison() *Comparison {
	if x != nil {
		return x.Comparison
	}
	return nil
}

type ListComparisonsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListComparisonsRequest) Reset() {
	*x = ListComparisonsRequest{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListComparisonsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListComparisonsRequest) ProtoMessage() {}

func (x *ListComparisonsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListComparisonsRequest.ProtoReflect.Descriptor instead.
func (*ListComparisonsRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{9}
}

type ListComparisonsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Comparisons   []*Comparison          `protobuf:"bytes,1,rep,name=comparisons,proto3" json:"comparisons,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListComparisonsResponse) Reset() {
	*x = ListComparisonsResponse{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListComparisonsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListComparisonsResponse) ProtoMessage() {}

func (x *ListComparisonsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListComparisonsResponse.ProtoReflect.Descriptor instead.
func (*ListComparisonsResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{10}
}

func (x *ListComparisonsResponse) GetComparisons() []*Comparison {
	if x != nil {
		return x.Comparisons
	}
	return nil
}

type ProcessComparisonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessComparisonRequest) Reset() {
	*x = ProcessComparisonRequest{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessComparisonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessComparisonRequest) ProtoMessage() {}

func (x *ProcessComparisonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessComparisonRequest.ProtoReflect.Descriptor instead.
func (*ProcessComparisonRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{11}
}

func (x *ProcessComparisonRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ProcessComparisonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Comparison    *Comparison            `protobuf:"bytes,1,opt,name=comparison,proto3" json:"comparison,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessComparisonResponse) Reset() {
	*x = ProcessComparisonResponse{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessComparisonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessComparisonResponse) ProtoMessage() {}

func (x *ProcessComparisonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessComparisonResponse.ProtoReflect.Descriptor instead.
func (*ProcessComparisonResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{12}
}

func (x *ProcessComparisonResponse) GetComparison() *Comparison {
	if x != nil {
		return x.Comparison
	}
	return nil
}

type RegenerateComparisonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegenerateComparisonRequest) Reset() {
	*x = RegenerateComparisonRequest{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegenerateComparisonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegenerateComparisonRequest) ProtoMessage() {}

func (x *RegenerateComparisonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegenerateComparisonRequest.ProtoReflect.Descriptor instead.
func (*RegenerateComparisonRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{13}
}

func (x *RegenerateComparisonRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type RegenerateComparisonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Comparison    *Comparison            `protobuf:"bytes,1,opt,name=comparison,proto3" json:"comparison,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegenerateComparisonResponse) Reset() {
	*x = RegenerateComparisonResponse{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegenerateComparisonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegenerateComparisonResponse) ProtoMessage() {}

func (x *RegenerateComparisonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegenerateComparisonResponse.ProtoReflect.Descriptor instead.
func (*RegenerateComparisonResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{14}
}

func (x *RegenerateComparisonResponse) GetComparison() *Comparison {
	if x != nil {
		return x.Comparison
	}
	return nil
}

type GenerateMemoRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateMemoRequest) Reset() {
	*x = GenerateMemoRequest{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateMemoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateMemoRequest) ProtoMessage() {}

func (x *GenerateMemoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateMemoRequest.ProtoReflect.Descriptor instead.
func (*GenerateMemoRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{15}
}

func (x *GenerateMemoRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GenerateMemoResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Memo          string                 `protobuf:"bytes,1,opt,name=memo,proto3" json:"memo,omitempty"`
	Comparison    *Comparison            `protobuf:"bytes,2,opt,name=comparison,proto3" json:"comparison,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateMemoResponse) Reset() {
	*x = GenerateMemoResponse{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateMemoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateMemoResponse) ProtoMessage() {}

func (x *GenerateMemoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateMemoResponse.ProtoReflect.Descriptor instead.
func (*GenerateMemoResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{16}
}

func (x *GenerateMemoResponse) GetMemo() string {
	if x != nil {
		return x.Memo
	}
	return ""
}

func (x *GenerateMemoResponse) GetComparison() *Comparison {
	if x != nil {
		return x.Comparison
	}
	return nil
}

type ExportComparisonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportComparisonRequest) Reset() {
	*x = ExportComparisonRequest{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportComparisonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportComparisonRequest) ProtoMessage() {}

func (x *ExportComparisonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportComparisonRequest.ProtoReflect.Descriptor instead.
func (*ExportComparisonRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{17}
}

func (x *ExportComparisonRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ExportComparisonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportComparisonResponse) Reset() {
	*x = ExportComparisonResponse{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportComparisonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportComparisonResponse) ProtoMessage() {}

func (x *ExportComparisonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportComparisonResponse.ProtoReflect.Descriptor instead.
func (*ExportComparisonResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{18}
}

func (x *ExportComparisonResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportComparisonResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type WatchComparisonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchComparisonRequest) Reset() {
	*x = WatchComparisonRequest{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchComparisonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchComparisonRequest) ProtoMessage() {}

func (x *WatchComparisonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchComparisonRequest.ProtoReflect.Descriptor instead.
func (*WatchComparisonRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{19}
}

func (x *WatchComparisonRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type WatchComparisonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Comparison    *Comparison            `protobuf:"bytes,1,opt,name=comparison,proto3" json:"comparison,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchComparisonResponse) Reset() {
	*x = WatchComparisonResponse{}
	mi := &file_procurement_v1_comparisons_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchComparisonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchComparisonResponse) ProtoMessage() {}

func (x *WatchComparisonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_comparisons_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchComparisonResponse.ProtoReflect.Descriptor instead.
func (*WatchComparisonResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_comparisons_proto_rawDescGZIP(), []int{20}
}

func (x *WatchComparisonResponse) GetComparison() *Comparison {
	if x != nil {
		return x.Comparison
	}
	return nil
}

var File_procurement_v1_comparisons_proto protoreflect.FileDescriptor

const file_procurement_v1_comparisons_proto_rawDesc = "" +
	"\n" +
	" procurement/v1/comparisons.proto\x12\x0eprocurement.v1\"\xa2\x01\n" +
	"\x0eQuoteFileInput\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12!\n" +
	"\fstorage_path\x18\x02 \x01(\tR\vstoragePath\x12\x1b\n" +
	"\tfile_size\x18\x03 \x01(\x03R\bfileSize\x12$\n" +
	"\vvendor_slot\x18\x04 \x01(\x05H\x00R\n" +
	"vendorSlot\x88\x01\x01B\x0e\n" +
	"\f_vendor_slot\"\xce\x01\n" +
	"\tQuoteFile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fstorage_path\x18\x03 \x01(\tR\vstoragePath\x12\x1b\n" +
	"\tfile_size\x18\x04 \x01(\x03R\bfileSize\x12$\n" +
	"\vvendor_slot\x18\x05 \x01(\x05H\x00R\n" +
	"vendorSlot\x88\x01\x01\x12\x1f\n" +
	"\vuploaded_at\x18\x06 \x01(\tR\n" +
	"uploadedAtB\x0e\n" +
	"\f_vendor_slot\"9\n" +
	"\tVendorRef\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x18\n" +
	"\acontact\x18\x02 \x01(\tR\acontact\"\x9e\x03\n" +
	"\x0eComparisonItem\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04unit\x18\x02 \x01(\tR\x04unit\x12l\n" +
	"\x16prices_by_vendor_cents\x18\x03 \x03(\v27.procurement.v1.ComparisonItem.PricesByVendorCentsEntryR\x13pricesByVendorCents\x12%\n" +
	"\x0elowest_vendors\x18\x04 \x03(\x05R\rlowestVendors\x12'\n" +
	"\x0fhighest_vendors\x18\x05 \x03(\x05R\x0ehighestVendors\x12 \n" +
	"\tmin_cents\x18\x06 \x01(\x03H\x00R\bminCents\x88\x01\x01\x12 \n" +
	"\tmax_cents\x18\a \x01(\x03H\x01R\bmaxCents\x88\x01\x01\x1aF\n" +
	"\x18PricesByVendorCentsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\x05R\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x03R\x05value:\x028\x01B\f\n" +
	"\n" +
	"_min_centsB\f\n" +
	"\n" +
	"_max_cents\"\xe3\x03\n" +
	"\n" +
	"Comparison\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12/\n" +
	"\x05files\x18\x04 \x03(\v2\x19.procurement.v1.QuoteFileR\x05files\x124\n" +
	"\x05items\x18\x05 \x03(\v2\x1e.procurement.v1.ComparisonItemR\x05items\x123\n" +
	"\avendors\x18\x06 \x03(\v2\x19.procurement.v1.VendorRefR\avendors\x12\x1f\n" +
	"\vtotal_cents\x18\a \x01(\x03R\n" +
	"totalCents\x12\x1d\n" +
	"\n" +
	"item_count\x18\b \x01(\x05R\titemCount\x12!\n" +
	"\fvendor_count\x18\t \x01(\x05R\vvendorCount\x12\x12\n" +
	"\x04memo\x18\n" +
	" \x01(\tR\x04memo\x12%\n" +
	"\x0efailure_reason\x18\v \x01(\tR\rfailureReason\x12\x1f\n" +
	"\vdata_absent\x18\f \x01(\bR\n" +
	"dataAbsent\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"e\n" +
	"\x17CreateComparisonRequest\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x124\n" +
	"\x05files\x18\x02 \x03(\v2\x1e.procurement.v1.QuoteFileInputR\x05files\"V\n" +
	"\x18CreateComparisonResponse\x12:\n" +
	"\n" +
	"comparison\x18\x01 \x01(\v2\x1a.procurement.v1.ComparisonR\n" +
	"comparison\"&\n" +
	"\x14GetComparisonRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"S\n" +
	"\x15GetComparisonResponse\x12:\n" +
	"\n" +
	"comparison\x18\x01 \x01(\v2\x1a.procurement.v1.ComparisonR\n" +
	"comparison\"\x18\n" +
	"\x16ListComparisonsRequest\"W\n" +
	"\x17ListComparisonsResponse\x12<\n" +
	"\vcomparisons\x18\x01 \x03(\v2\x1a.procurement.v1.ComparisonR\vcomparisons\"*\n" +
	"\x18ProcessComparisonRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"W\n" +
	"\x19ProcessComparisonResponse\x12:\n" +
	"\n" +
	"comparison\x18\x01 \x01(\v2\x1a.procurement.v1.ComparisonR\n" +
	"comparison\"-\n" +
	"\x1bRegenerateComparisonRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"Z\n" +
	"\x1cRegenerateComparisonResponse\x12:\n" +
	"\n" +
	"comparison\x18\x01 \x01(\v2\x1a.procurement.v1.ComparisonR\n" +
	"comparison\"%\n" +
	"\x13GenerateMemoRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"f\n" +
	"\x14GenerateMemoResponse\x12\x12\n" +
	"\x04memo\x18\x01 \x01(\tR\x04memo\x12:\n" +
	"\n" +
	"comparison\x18\x02 \x01(\v2\x1a.procurement.v1.ComparisonR\n" +
	"comparison\")\n" +
	"\x17ExportComparisonRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"J\n" +
	"\x18ExportComparisonResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"(\n" +
	"\x16WatchComparisonRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"U\n" +
	"\x17WatchComparisonResponse\x12:\n" +
	"\n" +
	"comparison\x18\x01 \x01(\v2\x1a.procurement.v1.ComparisonR\n" +
	"comparison2\xc2\x06\n" +
	"\x12ComparisonsService\x12e\n" +
	"\x10CreateComparison\x12'.procurement.v1.CreateComparisonRequest\x1a(.procurement.v1.CreateComparisonResponse\x12\\\n" +
	"\rGetComparison\x12$.procurement.v1.GetComparisonRequest\x1a%.procurement.v1.GetComparisonResponse\x12b\n" +
	"\x0fListComparisons\x12&.procurement.v1.ListComparisonsRequest\x1a'.procurement.v1.ListComparisonsResponse\x12h\n" +
	"\x11ProcessComparison\x12(.procurement.v1.ProcessComparisonRequest\x1a).procurement.v1.ProcessComparisonResponse\x12q\n" +
	"\x14RegenerateComparison\x12+.procurement.v1.RegenerateComparisonRequest\x1a,.procurement.v1.RegenerateComparisonResponse\x12Y\n" +
	"\fGenerateMemo\x12#.procurement.v1.GenerateMemoRequest\x1a$.procurement.v1.GenerateMemoResponse\x12e\n" +
	"\x10ExportComparison\x12'.procurement.v1.ExportComparisonRequest\x1a(.procurement.v1.ExportComparisonResponse\x12d\n" +
	"\x0fWatchComparison\x12&.procurement.v1.WatchComparisonRequest\x1a'.procurement.v1.WatchComparisonResponse0\x01BTZRgithub.com/harshmriduhash/iq-procure-assist/gen/proto/procurement/v1;procurementv1b\x06proto3"

var (
	file_procurement_v1_comparisons_proto_rawDescOnce sync.Once
	file_procurement_v1_comparisons_proto_rawDescData []byte
)

func file_procurement_v1_comparisons_proto_rawDescGZIP() []byte {
	file_procurement_v1_comparisons_proto_rawDescOnce.Do(func() {
		file_procurement_v1_comparisons_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_procurement_v1_comparisons_proto_rawDesc), len(file_procurement_v1_comparisons_proto_rawDesc)))
	})
	return file_procurement_v1_comparisons_proto_rawDescData
}

var file_procurement_v1_comparisons_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_procurement_v1_comparisons_proto_goTypes = []any{
	(*QuoteFileInput)(nil),               // 0: procurement.v1.QuoteFileInput
	(*QuoteFile)(nil),                    // 1: procurement.v1.QuoteFile
	(*VendorRef)(nil),                    // 2: procurement.v1.VendorRef
	(*ComparisonItem)(nil),               // 3: procurement.v1.ComparisonItem
	(*Comparison)(nil),                   // 4: procurement.v1.Comparison
	(*CreateComparisonRequest)(nil),      // 5: procurement.v1.CreateComparisonRequest
	(*CreateComparisonResponse)(nil),     // 6: procurement.v1.CreateComparisonResponse
	(*GetComparisonRequest)(nil),         // 7: procurement.v1.GetComparisonRequest
	(*GetComparisonResponse)(nil),        // 8: procurement.v1.GetComparisonResponse
	(*ListComparisonsRequest)(nil),       // 9: procurement.v1.ListComparisonsRequest
	(*ListComparisonsResponse)(nil),      // 10: procurement.v1.ListComparisonsResponse
	(*ProcessComparisonRequest)(nil),     // 11: procurement.v1.ProcessComparisonRequest
	(*ProcessComparisonResponse)(nil),    // 12: procurement.v1.ProcessComparisonResponse
	(*RegenerateComparisonRequest)(nil),  // 13: procurement.v1.RegenerateComparisonRequest
	(*RegenerateComparisonResponse)(nil), // 14: procurement.v1.RegenerateComparisonResponse
	(*GenerateMemoRequest)(nil),          // 15: procurement.v1.GenerateMemoRequest
	(*GenerateMemoResponse)(nil),         // 16: procurement.v1.GenerateMemoResponse
	(*ExportComparisonRequest)(nil),      // 17: procurement.v1.ExportComparisonRequest
	(*ExportComparisonResponse)(nil),     // 18: procurement.v1.ExportComparisonResponse
	(*WatchComparisonRequest)(nil),       // 19: procurement.v1.WatchComparisonRequest
	(*WatchComparisonResponse)(nil),      // 20: procurement.v1.WatchComparisonResponse
	nil,                                  // 21: procurement.v1.ComparisonItem.PricesByVendorCentsEntry
}
var file_procurement_v1_comparisons_proto_depIdxs = []int32{
	21, // 0: procurement.v1.ComparisonItem.prices_by_vendor_cents:type_name -> procurement.v1.ComparisonItem.PricesByVendorCentsEntry
	1,  // 1: procurement.v1.Comparison.files:type_name -> procurement.v1.QuoteFile
	3,  // 2: procurement.v1.Comparison.items:type_name -> procurement.v1.ComparisonItem
	2,  // 3: procurement.v1.Comparison.vendors:type_name -> procurement.v1.VendorRef
	0,  // 4: procurement.v1.CreateComparisonRequest.files:type_name -> procurement.v1.QuoteFileInput
	4,  // 5: procurement.v1.CreateComparisonResponse.comparison:type_name -> procurement.v1.Comparison
	4,  // 6: procurement.v1.GetComparisonResponse.comparison:type_name -> procurement.v1.Comparison
	4,  // 7: procurement.v1.ListComparisonsResponse.comparisons:type_name -> procurement.v1.Comparison
	4,  // 8: procurement.v1.ProcessComparisonResponse.comparison:type_name -> procurement.v1.Comparison
	4,  // 9: procurement.v1.RegenerateComparisonResponse.comparison:type_name -> procurement.v1.Comparison
	4,  // 10: procurement.v1.GenerateMemoResponse.comparison:type_name -> procurement.v1.Comparison
	4,  // 11: procurement.v1.WatchComparisonResponse.comparison:type_name -> procurement.v1.Comparison
	5,  // 12: procurement.v1.ComparisonsService.CreateComparison:input_type -> procurement.v1.CreateComparisonRequest
	7,  // 13: procurement.v1.ComparisonsService.GetComparison:input_type -> procurement.v1.GetComparisonRequest
	9,  // 14: procurement.v1.ComparisonsService.ListComparisons:input_type -> procurement.v1.ListComparisonsRequest
	11, // 15: procurement.v1.ComparisonsService.ProcessComparison:input_type -> procurement.v1.ProcessComparisonRequest
	13, // 16: procurement.v1.ComparisonsService.RegenerateComparison:input_type -> procurement.v1.RegenerateComparisonRequest
	15, // 17: procurement.v1.ComparisonsService.GenerateMemo:input_type -> procurement.v1.GenerateMemoRequest
	17, // 18: procurement.v1.ComparisonsService.ExportComparison:input_type -> procurement.v1.ExportComparisonRequest
	19, // 19: procurement.v1.ComparisonsService.WatchComparison:input_type -> procurement.v1.WatchComparisonRequest
	6,  // 20: procurement.v1.ComparisonsService.CreateComparison:output_type -> procurement.v1.CreateComparisonResponse
	8,  // 21: procurement.v1.ComparisonsService.GetComparison:output_type -> procurement.v1.GetComparisonResponse
	10, // 22: procurement.v1.ComparisonsService.ListComparisons:output_type -> procurement.v1.ListComparisonsResponse
	12, // 23: procurement.v1.ComparisonsService.ProcessComparison:output_type -> procurement.v1.ProcessComparisonResponse
	14, // 24: procurement.v1.ComparisonsService.RegenerateComparison:output_type -> procurement.v1.RegenerateComparisonResponse
	16, // 25: procurement.v1.ComparisonsService.GenerateMemo:output_type -> procurement.v1.GenerateMemoResponse
	18, // 26: procurement.v1.ComparisonsService.ExportComparison:output_type -> procurement.v1.ExportComparisonResponse
	20, // 27: procurement.v1.ComparisonsService.WatchComparison:output_type -> procurement.v1.WatchComparisonResponse
	20, // [20:28] is the sub-list for method output_type
	12, // [12:20] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_procurement_v1_comparisons_proto_init() }
func file_procurement_v1_comparisons_proto_init() {
	if File_procurement_v1_comparisons_proto != nil {
		return
	}
	file_procurement_v1_comparisons_proto_msgTypes[0].OneofWrappers = []any{}
	file_procurement_v1_comparisons_proto_msgTypes[1].OneofWrappers = []any{}
	file_procurement_v1_comparisons_proto_msgTypes[3].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_procurement_v1_comparisons_proto_rawDesc), len(file_procurement_v1_comparisons_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_procurement_v1_comparisons_proto_goTypes,
		DependencyIndexes: file_procurement_v1_comparisons_proto_depIdxs,
		MessageInfos:      file_procurement_v1_comparisons_proto_msgTypes,
	}.Build()
	File_procurement_v1_comparisons_proto = out.File
	file_procurement_v1_comparisons_proto_goTypes = nil
	file_procurement_v1_comparisons_proto_depIdxs = nil
}
