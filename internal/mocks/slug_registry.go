// Code generated by MockGen. DO NOT EDIT.
// Source: slugs.go

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockSlugRegistry is a mock of SlugRegistry interface.
type MockSlugRegistry struct {
	ctrl     *gomock.Controller
	recorder *MockSlugRegistryMockRecorder
}

// MockSlugRegistryMockRecorder is the mock recorder for MockSlugRegistry.
type MockSlugRegistryMockRecorder struct {
	mock *MockSlugRegistry
}

// NewMockSlugRegistry creates a new mock instance.
func NewMockSlugRegistry(ctrl *gomock.Controller) *MockSlugRegistry {
	mock := &MockSlugRegistry{ctrl: ctrl}
	mock.recorder = &MockSlugRegistryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSlugRegistry) EXPECT() *MockSlugRegistryMockRecorder {
	return m.recorder
}

// IsReserved mocks base method.
func (m *MockSlugRegistry) IsReserved(slug string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsReserved", slug)
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsReserved indicates an expected call of IsReserved.
func (mr *MockSlugRegistryMockRecorder) IsReserved(slug interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsReserved", reflect.TypeOf((*MockSlugRegistry)(nil).IsReserved), slug)
}
