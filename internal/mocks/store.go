// Code generated by MockGen. DO NOT EDIT.
// Source: store.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	store "github.com/propsetu/estate-backend/internal/store"
	schema "github.com/propsetu/estate-backend/internal/store/schema"
)

// MockStore is a mock of Store interface.
type MockStore struct {
	ctrl     *gomock.Controller
	recorder *MockStoreMockRecorder
}

// MockStoreMockRecorder is the mock recorder for MockStore.
type MockStoreMockRecorder struct {
	mock *MockStore
}

// NewMockStore creates a new mock instance.
func NewMockStore(ctrl *gomock.Controller) *MockStore {
	mock := &MockStore{ctrl: ctrl}
	mock.recorder = &MockStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStore) EXPECT() *MockStoreMockRecorder {
	return m.recorder
}

// CreateApprovalNotification mocks base method.
func (m *MockStore) CreateApprovalNotification(ctx context.Context, notification *schema.PropertyApprovalNotification) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateApprovalNotification", ctx, notification)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateApprovalNotification indicates an expected call of CreateApprovalNotification.
func (mr *MockStoreMockRecorder) CreateApprovalNotification(ctx, notification interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateApprovalNotification", reflect.TypeOf((*MockStore)(nil).CreateApprovalNotification), ctx, notification)
}

// CreateBlogPost mocks base method.
func (m *MockStore) CreateBlogPost(ctx context.Context, post *schema.BlogPost) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBlogPost", ctx, post)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBlogPost indicates an expected call of CreateBlogPost.
func (mr *MockStoreMockRecorder) CreateBlogPost(ctx, post interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBlogPost", reflect.TypeOf((*MockStore)(nil).CreateBlogPost), ctx, post)
}

// CreateProperty mocks base method.
func (m *MockStore) CreateProperty(ctx context.Context, input store.CreatePropertyInput) (*schema.Property, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateProperty", ctx, input)
	ret0, _ := ret[0].(*schema.Property)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateProperty indicates an expected call of CreateProperty.
func (mr *MockStoreMockRecorder) CreateProperty(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateProperty", reflect.TypeOf((*MockStore)(nil).CreateProperty), ctx, input)
}

// DeleteBlogPost mocks base method.
func (m *MockStore) DeleteBlogPost(ctx context.Context, id uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteBlogPost", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteBlogPost indicates an expected call of DeleteBlogPost.
func (mr *MockStoreMockRecorder) DeleteBlogPost(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteBlogPost", reflect.TypeOf((*MockStore)(nil).DeleteBlogPost), ctx, id)
}

// GetAdminByID mocks base method.
func (m *MockStore) GetAdminByID(ctx context.Context, id uint64) (*schema.Admin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAdminByID", ctx, id)
	ret0, _ := ret[0].(*schema.Admin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAdminByID indicates an expected call of GetAdminByID.
func (mr *MockStoreMockRecorder) GetAdminByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAdminByID", reflect.TypeOf((*MockStore)(nil).GetAdminByID), ctx, id)
}

// GetBlogPostBySlug mocks base method.
func (m *MockStore) GetBlogPostBySlug(ctx context.Context, slug string) (*schema.BlogPost, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBlogPostBySlug", ctx, slug)
	ret0, _ := ret[0].(*schema.BlogPost)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBlogPostBySlug indicates an expected call of GetBlogPostBySlug.
func (mr *MockStoreMockRecorder) GetBlogPostBySlug(ctx, slug interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBlogPostBySlug", reflect.TypeOf((*MockStore)(nil).GetBlogPostBySlug), ctx, slug)
}

// GetOwnerContact mocks base method.
func (m *MockStore) GetOwnerContact(ctx context.Context, propertyID uint64) (*store.OwnerContact, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOwnerContact", ctx, propertyID)
	ret0, _ := ret[0].(*store.OwnerContact)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOwnerContact indicates an expected call of GetOwnerContact.
func (mr *MockStoreMockRecorder) GetOwnerContact(ctx, propertyID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOwnerContact", reflect.TypeOf((*MockStore)(nil).GetOwnerContact), ctx, propertyID)
}

// GetPropertyByID mocks base method.
func (m *MockStore) GetPropertyByID(ctx context.Context, id uint64) (*schema.Property, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPropertyByID", ctx, id)
	ret0, _ := ret[0].(*schema.Property)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPropertyByID indicates an expected call of GetPropertyByID.
func (mr *MockStoreMockRecorder) GetPropertyByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPropertyByID", reflect.TypeOf((*MockStore)(nil).GetPropertyByID), ctx, id)
}

// GetUserByID mocks base method.
func (m *MockStore) GetUserByID(ctx context.Context, id uint64) (*schema.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserByID", ctx, id)
	ret0, _ := ret[0].(*schema.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserByID indicates an expected call of GetUserByID.
func (mr *MockStoreMockRecorder) GetUserByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserByID", reflect.TypeOf((*MockStore)(nil).GetUserByID), ctx, id)
}

// GetVerification mocks base method.
func (m *MockStore) GetVerification(ctx context.Context, propertyID uint64) (*schema.PropertyVerification, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetVerification", ctx, propertyID)
	ret0, _ := ret[0].(*schema.PropertyVerification)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetVerification indicates an expected call of GetVerification.
func (mr *MockStoreMockRecorder) GetVerification(ctx, propertyID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetVerification", reflect.TypeOf((*MockStore)(nil).GetVerification), ctx, propertyID)
}

// ListApprovalHistory mocks base method.
func (m *MockStore) ListApprovalHistory(ctx context.Context, propertyID uint64) ([]schema.PropertyApprovalHistory, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListApprovalHistory", ctx, propertyID)
	ret0, _ := ret[0].([]schema.PropertyApprovalHistory)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListApprovalHistory indicates an expected call of ListApprovalHistory.
func (mr *MockStoreMockRecorder) ListApprovalHistory(ctx, propertyID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListApprovalHistory", reflect.TypeOf((*MockStore)(nil).ListApprovalHistory), ctx, propertyID)
}

// ListBlogPosts mocks base method.
func (m *MockStore) ListBlogPosts(ctx context.Context, filter store.BlogPostFilter) ([]schema.BlogPost, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListBlogPosts", ctx, filter)
	ret0, _ := ret[0].([]schema.BlogPost)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListBlogPosts indicates an expected call of ListBlogPosts.
func (mr *MockStoreMockRecorder) ListBlogPosts(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBlogPosts", reflect.TypeOf((*MockStore)(nil).ListBlogPosts), ctx, filter)
}

// ListNotifications mocks base method.
func (m *MockStore) ListNotifications(ctx context.Context, userID uint64, limit, offset int) ([]schema.PropertyApprovalNotification, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListNotifications", ctx, userID, limit, offset)
	ret0, _ := ret[0].([]schema.PropertyApprovalNotification)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListNotifications indicates an expected call of ListNotifications.
func (mr *MockStoreMockRecorder) ListNotifications(ctx, userID, limit, offset interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListNotifications", reflect.TypeOf((*MockStore)(nil).ListNotifications), ctx, userID, limit, offset)
}

// ListSavedProperties mocks base method.
func (m *MockStore) ListSavedProperties(ctx context.Context, userID uint64, limit, offset int) ([]schema.Property, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListSavedProperties", ctx, userID, limit, offset)
	ret0, _ := ret[0].([]schema.Property)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListSavedProperties indicates an expected call of ListSavedProperties.
func (mr *MockStoreMockRecorder) ListSavedProperties(ctx, userID, limit, offset interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListSavedProperties", reflect.TypeOf((*MockStore)(nil).ListSavedProperties), ctx, userID, limit, offset)
}

// ListStalePendingProperties mocks base method.
func (m *MockStore) ListStalePendingProperties(ctx context.Context, cutoff time.Time, limit int) ([]schema.Property, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListStalePendingProperties", ctx, cutoff, limit)
	ret0, _ := ret[0].([]schema.Property)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListStalePendingProperties indicates an expected call of ListStalePendingProperties.
func (mr *MockStoreMockRecorder) ListStalePendingProperties(ctx, cutoff, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListStalePendingProperties", reflect.TypeOf((*MockStore)(nil).ListStalePendingProperties), ctx, cutoff, limit)
}

// MarkNotificationRead mocks base method.
func (m *MockStore) MarkNotificationRead(ctx context.Context, notificationID, userID uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkNotificationRead", ctx, notificationID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkNotificationRead indicates an expected call of MarkNotificationRead.
func (mr *MockStoreMockRecorder) MarkNotificationRead(ctx, notificationID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkNotificationRead", reflect.TypeOf((*MockStore)(nil).MarkNotificationRead), ctx, notificationID, userID)
}

// QueryMapProperties mocks base method.
func (m *MockStore) QueryMapProperties(ctx context.Context, filter store.MapPropertyFilter) ([]store.MapProperty, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "QueryMapProperties", ctx, filter)
	ret0, _ := ret[0].([]store.MapProperty)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// QueryMapProperties indicates an expected call of QueryMapProperties.
func (mr *MockStoreMockRecorder) QueryMapProperties(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "QueryMapProperties", reflect.TypeOf((*MockStore)(nil).QueryMapProperties), ctx, filter)
}

// QueryProperties mocks base method.
func (m *MockStore) QueryProperties(ctx context.Context, filter store.PropertyQueryFilter) ([]schema.Property, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "QueryProperties", ctx, filter)
	ret0, _ := ret[0].([]schema.Property)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// QueryProperties indicates an expected call of QueryProperties.
func (mr *MockStoreMockRecorder) QueryProperties(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "QueryProperties", reflect.TypeOf((*MockStore)(nil).QueryProperties), ctx, filter)
}

// SaveProperty mocks base method.
func (m *MockStore) SaveProperty(ctx context.Context, userID, propertyID uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveProperty", ctx, userID, propertyID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveProperty indicates an expected call of SaveProperty.
func (mr *MockStoreMockRecorder) SaveProperty(ctx, userID, propertyID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveProperty", reflect.TypeOf((*MockStore)(nil).SaveProperty), ctx, userID, propertyID)
}

// TransitionApproval mocks base method.
func (m *MockStore) TransitionApproval(ctx context.Context, input store.TransitionApprovalInput) (*store.TransitionApprovalResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TransitionApproval", ctx, input)
	ret0, _ := ret[0].(*store.TransitionApprovalResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TransitionApproval indicates an expected call of TransitionApproval.
func (mr *MockStoreMockRecorder) TransitionApproval(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TransitionApproval", reflect.TypeOf((*MockStore)(nil).TransitionApproval), ctx, input)
}

// UnsaveProperty mocks base method.
func (m *MockStore) UnsaveProperty(ctx context.Context, userID, propertyID uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UnsaveProperty", ctx, userID, propertyID)
	ret0, _ := ret[0].(error)
	return ret0
}

// UnsaveProperty indicates an expected call of UnsaveProperty.
func (mr *MockStoreMockRecorder) UnsaveProperty(ctx, userID, propertyID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UnsaveProperty", reflect.TypeOf((*MockStore)(nil).UnsaveProperty), ctx, userID, propertyID)
}

// UpdateBlogPost mocks base method.
func (m *MockStore) UpdateBlogPost(ctx context.Context, post *schema.BlogPost) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateBlogPost", ctx, post)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateBlogPost indicates an expected call of UpdateBlogPost.
func (mr *MockStoreMockRecorder) UpdateBlogPost(ctx, post interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateBlogPost", reflect.TypeOf((*MockStore)(nil).UpdateBlogPost), ctx, post)
}
