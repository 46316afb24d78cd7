// Code generated by MockGen. DO NOT EDIT.
// Source: executor.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	dto "github.com/propsetu/estate-backend/internal/api/shared/dto"
	executor "github.com/propsetu/estate-backend/internal/api/shared/executor"
	domain "github.com/propsetu/estate-backend/internal/domain"
)

// MockAPIExecutor is a mock of Executor interface.
type MockAPIExecutor struct {
	ctrl     *gomock.Controller
	recorder *MockAPIExecutorMockRecorder
}

// MockAPIExecutorMockRecorder is the mock recorder for MockAPIExecutor.
type MockAPIExecutorMockRecorder struct {
	mock *MockAPIExecutor
}

// NewMockAPIExecutor creates a new mock instance.
func NewMockAPIExecutor(ctrl *gomock.Controller) *MockAPIExecutor {
	mock := &MockAPIExecutor{ctrl: ctrl}
	mock.recorder = &MockAPIExecutorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAPIExecutor) EXPECT() *MockAPIExecutorMockRecorder {
	return m.recorder
}

// ApproveProperty mocks base method.
func (m *MockAPIExecutor) ApproveProperty(ctx context.Context, actor executor.Actor, req dto.TransitionRequest) (*dto.PropertyResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApproveProperty", ctx, actor, req)
	ret0, _ := ret[0].(*dto.PropertyResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApproveProperty indicates an expected call of ApproveProperty.
func (mr *MockAPIExecutorMockRecorder) ApproveProperty(ctx, actor, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApproveProperty", reflect.TypeOf((*MockAPIExecutor)(nil).ApproveProperty), ctx, actor, req)
}

// CreateProperty mocks base method.
func (m *MockAPIExecutor) CreateProperty(ctx context.Context, actor executor.Actor, req dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateProperty", ctx, actor, req)
	ret0, _ := ret[0].(*dto.PropertyResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateProperty indicates an expected call of CreateProperty.
func (mr *MockAPIExecutorMockRecorder) CreateProperty(ctx, actor, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateProperty", reflect.TypeOf((*MockAPIExecutor)(nil).CreateProperty), ctx, actor, req)
}

// GetApprovalHistory mocks base method.
func (m *MockAPIExecutor) GetApprovalHistory(ctx context.Context, propertyID uint64) ([]dto.ApprovalHistoryResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetApprovalHistory", ctx, propertyID)
	ret0, _ := ret[0].([]dto.ApprovalHistoryResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetApprovalHistory indicates an expected call of GetApprovalHistory.
func (mr *MockAPIExecutorMockRecorder) GetApprovalHistory(ctx, propertyID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetApprovalHistory", reflect.TypeOf((*MockAPIExecutor)(nil).GetApprovalHistory), ctx, propertyID)
}

// GetBlogPost mocks base method.
func (m *MockAPIExecutor) GetBlogPost(ctx context.Context, slug string) (*dto.BlogPostResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBlogPost", ctx, slug)
	ret0, _ := ret[0].(*dto.BlogPostResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBlogPost indicates an expected call of GetBlogPost.
func (mr *MockAPIExecutorMockRecorder) GetBlogPost(ctx, slug interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBlogPost", reflect.TypeOf((*MockAPIExecutor)(nil).GetBlogPost), ctx, slug)
}

// GetBlogPosts mocks base method.
func (m *MockAPIExecutor) GetBlogPosts(ctx context.Context, publishedOnly bool, page, limit *int) (*dto.BlogPostListResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBlogPosts", ctx, publishedOnly, page, limit)
	ret0, _ := ret[0].(*dto.BlogPostListResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBlogPosts indicates an expected call of GetBlogPosts.
func (mr *MockAPIExecutorMockRecorder) GetBlogPosts(ctx, publishedOnly, page, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBlogPosts", reflect.TypeOf((*MockAPIExecutor)(nil).GetBlogPosts), ctx, publishedOnly, page, limit)
}

// GetMapProperties mocks base method.
func (m *MockAPIExecutor) GetMapProperties(ctx context.Context, bounds *dto.MapBoundsRequest, userID *uint64, limit *int) ([]dto.MapPropertyResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMapProperties", ctx, bounds, userID, limit)
	ret0, _ := ret[0].([]dto.MapPropertyResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMapProperties indicates an expected call of GetMapProperties.
func (mr *MockAPIExecutorMockRecorder) GetMapProperties(ctx, bounds, userID, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMapProperties", reflect.TypeOf((*MockAPIExecutor)(nil).GetMapProperties), ctx, bounds, userID, limit)
}

// GetMyProperties mocks base method.
func (m *MockAPIExecutor) GetMyProperties(ctx context.Context, adminID uint64, page, limit *int) (*dto.PropertyListResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMyProperties", ctx, adminID, page, limit)
	ret0, _ := ret[0].(*dto.PropertyListResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMyProperties indicates an expected call of GetMyProperties.
func (mr *MockAPIExecutorMockRecorder) GetMyProperties(ctx, adminID, page, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMyProperties", reflect.TypeOf((*MockAPIExecutor)(nil).GetMyProperties), ctx, adminID, page, limit)
}

// GetNotifications mocks base method.
func (m *MockAPIExecutor) GetNotifications(ctx context.Context, userID uint64, page, limit *int) (*dto.NotificationListResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetNotifications", ctx, userID, page, limit)
	ret0, _ := ret[0].(*dto.NotificationListResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetNotifications indicates an expected call of GetNotifications.
func (mr *MockAPIExecutorMockRecorder) GetNotifications(ctx, userID, page, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetNotifications", reflect.TypeOf((*MockAPIExecutor)(nil).GetNotifications), ctx, userID, page, limit)
}

// GetPropertiesByStatus mocks base method.
func (m *MockAPIExecutor) GetPropertiesByStatus(ctx context.Context, status domain.ApprovalStatus, search *string, page, limit *int) (*dto.PropertyListResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPropertiesByStatus", ctx, status, search, page, limit)
	ret0, _ := ret[0].(*dto.PropertyListResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPropertiesByStatus indicates an expected call of GetPropertiesByStatus.
func (mr *MockAPIExecutorMockRecorder) GetPropertiesByStatus(ctx, status, search, page, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPropertiesByStatus", reflect.TypeOf((*MockAPIExecutor)(nil).GetPropertiesByStatus), ctx, status, search, page, limit)
}

// GetProperty mocks base method.
func (m *MockAPIExecutor) GetProperty(ctx context.Context, id uint64) (*dto.PropertyResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProperty", ctx, id)
	ret0, _ := ret[0].(*dto.PropertyResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProperty indicates an expected call of GetProperty.
func (mr *MockAPIExecutorMockRecorder) GetProperty(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProperty", reflect.TypeOf((*MockAPIExecutor)(nil).GetProperty), ctx, id)
}

// GetPublicProperties mocks base method.
func (m *MockAPIExecutor) GetPublicProperties(ctx context.Context, search *string, page, limit *int) (*dto.PropertyListResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPublicProperties", ctx, search, page, limit)
	ret0, _ := ret[0].(*dto.PropertyListResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPublicProperties indicates an expected call of GetPublicProperties.
func (mr *MockAPIExecutorMockRecorder) GetPublicProperties(ctx, search, page, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPublicProperties", reflect.TypeOf((*MockAPIExecutor)(nil).GetPublicProperties), ctx, search, page, limit)
}

// GetSavedProperties mocks base method.
func (m *MockAPIExecutor) GetSavedProperties(ctx context.Context, userID uint64, page, limit *int) (*dto.PropertyListResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSavedProperties", ctx, userID, page, limit)
	ret0, _ := ret[0].(*dto.PropertyListResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSavedProperties indicates an expected call of GetSavedProperties.
func (mr *MockAPIExecutorMockRecorder) GetSavedProperties(ctx, userID, page, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSavedProperties", reflect.TypeOf((*MockAPIExecutor)(nil).GetSavedProperties), ctx, userID, page, limit)
}

// GetUserProperties mocks base method.
func (m *MockAPIExecutor) GetUserProperties(ctx context.Context, userID uint64, page, limit *int) (*dto.PropertyListResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserProperties", ctx, userID, page, limit)
	ret0, _ := ret[0].(*dto.PropertyListResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserProperties indicates an expected call of GetUserProperties.
func (mr *MockAPIExecutorMockRecorder) GetUserProperties(ctx, userID, page, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserProperties", reflect.TypeOf((*MockAPIExecutor)(nil).GetUserProperties), ctx, userID, page, limit)
}

// MarkNotificationRead mocks base method.
func (m *MockAPIExecutor) MarkNotificationRead(ctx context.Context, notificationID, userID uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkNotificationRead", ctx, notificationID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkNotificationRead indicates an expected call of MarkNotificationRead.
func (mr *MockAPIExecutorMockRecorder) MarkNotificationRead(ctx, notificationID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkNotificationRead", reflect.TypeOf((*MockAPIExecutor)(nil).MarkNotificationRead), ctx, notificationID, userID)
}

// RejectProperty mocks base method.
func (m *MockAPIExecutor) RejectProperty(ctx context.Context, actor executor.Actor, req dto.TransitionRequest) (*dto.PropertyResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RejectProperty", ctx, actor, req)
	ret0, _ := ret[0].(*dto.PropertyResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RejectProperty indicates an expected call of RejectProperty.
func (mr *MockAPIExecutorMockRecorder) RejectProperty(ctx, actor, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RejectProperty", reflect.TypeOf((*MockAPIExecutor)(nil).RejectProperty), ctx, actor, req)
}

// SaveProperty mocks base method.
func (m *MockAPIExecutor) SaveProperty(ctx context.Context, userID, propertyID uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveProperty", ctx, userID, propertyID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveProperty indicates an expected call of SaveProperty.
func (mr *MockAPIExecutorMockRecorder) SaveProperty(ctx, userID, propertyID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveProperty", reflect.TypeOf((*MockAPIExecutor)(nil).SaveProperty), ctx, userID, propertyID)
}

// UnsaveProperty mocks base method.
func (m *MockAPIExecutor) UnsaveProperty(ctx context.Context, userID, propertyID uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UnsaveProperty", ctx, userID, propertyID)
	ret0, _ := ret[0].(error)
	return ret0
}

// UnsaveProperty indicates an expected call of UnsaveProperty.
func (mr *MockAPIExecutorMockRecorder) UnsaveProperty(ctx, userID, propertyID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UnsaveProperty", reflect.TypeOf((*MockAPIExecutor)(nil).UnsaveProperty), ctx, userID, propertyID)
}

// VerifyProperty mocks base method.
func (m *MockAPIExecutor) VerifyProperty(ctx context.Context, actor executor.Actor, req dto.TransitionRequest) (*dto.PropertyResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyProperty", ctx, actor, req)
	ret0, _ := ret[0].(*dto.PropertyResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VerifyProperty indicates an expected call of VerifyProperty.
func (mr *MockAPIExecutorMockRecorder) VerifyProperty(ctx, actor, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyProperty", reflect.TypeOf((*MockAPIExecutor)(nil).VerifyProperty), ctx, actor, req)
}
