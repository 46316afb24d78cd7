// Code generated by MockGen. DO NOT EDIT.
// Source: service.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	approval "github.com/propsetu/estate-backend/internal/approval"
	schema "github.com/propsetu/estate-backend/internal/store/schema"
)

// MockApprovalService is a mock of Service interface.
type MockApprovalService struct {
	ctrl     *gomock.Controller
	recorder *MockApprovalServiceMockRecorder
}

// MockApprovalServiceMockRecorder is the mock recorder for MockApprovalService.
type MockApprovalServiceMockRecorder struct {
	mock *MockApprovalService
}

// NewMockApprovalService creates a new mock instance.
func NewMockApprovalService(ctrl *gomock.Controller) *MockApprovalService {
	mock := &MockApprovalService{ctrl: ctrl}
	mock.recorder = &MockApprovalServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockApprovalService) EXPECT() *MockApprovalServiceMockRecorder {
	return m.recorder
}

// Approve mocks base method.
func (m *MockApprovalService) Approve(ctx context.Context, req approval.Request) (*schema.Property, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Approve", ctx, req)
	ret0, _ := ret[0].(*schema.Property)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Approve indicates an expected call of Approve.
func (mr *MockApprovalServiceMockRecorder) Approve(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Approve", reflect.TypeOf((*MockApprovalService)(nil).Approve), ctx, req)
}

// Reject mocks base method.
func (m *MockApprovalService) Reject(ctx context.Context, req approval.Request) (*schema.Property, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reject", ctx, req)
	ret0, _ := ret[0].(*schema.Property)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Reject indicates an expected call of Reject.
func (mr *MockApprovalServiceMockRecorder) Reject(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reject", reflect.TypeOf((*MockApprovalService)(nil).Reject), ctx, req)
}

// Verify mocks base method.
func (m *MockApprovalService) Verify(ctx context.Context, req approval.Request) (*schema.Property, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", ctx, req)
	ret0, _ := ret[0].(*schema.Property)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Verify indicates an expected call of Verify.
func (mr *MockApprovalServiceMockRecorder) Verify(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockApprovalService)(nil).Verify), ctx, req)
}
