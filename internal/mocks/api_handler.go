// Code generated by MockGen. DO NOT EDIT.
// Source: handler.go

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"

	gin "github.com/gin-gonic/gin"
	gomock "github.com/golang/mock/gomock"
)

// MockAPIHandler is a mock of Handler interface.
type MockAPIHandler struct {
	ctrl     *gomock.Controller
	recorder *MockAPIHandlerMockRecorder
}

// MockAPIHandlerMockRecorder is the mock recorder for MockAPIHandler.
type MockAPIHandlerMockRecorder struct {
	mock *MockAPIHandler
}

// NewMockAPIHandler creates a new mock instance.
func NewMockAPIHandler(ctrl *gomock.Controller) *MockAPIHandler {
	mock := &MockAPIHandler{ctrl: ctrl}
	mock.recorder = &MockAPIHandlerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAPIHandler) EXPECT() *MockAPIHandlerMockRecorder {
	return m.recorder
}

// GetBlogPost mocks base method.
func (m *MockAPIHandler) GetBlogPost(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetBlogPost", c)
}

// GetBlogPost indicates an expected call of GetBlogPost.
func (mr *MockAPIHandlerMockRecorder) GetBlogPost(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBlogPost", reflect.TypeOf((*MockAPIHandler)(nil).GetBlogPost), c)
}

// GetProperty mocks base method.
func (m *MockAPIHandler) GetProperty(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetProperty", c)
}

// GetProperty indicates an expected call of GetProperty.
func (mr *MockAPIHandlerMockRecorder) GetProperty(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProperty", reflect.TypeOf((*MockAPIHandler)(nil).GetProperty), c)
}

// HealthCheck mocks base method.
func (m *MockAPIHandler) HealthCheck(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "HealthCheck", c)
}

// HealthCheck indicates an expected call of HealthCheck.
func (mr *MockAPIHandlerMockRecorder) HealthCheck(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HealthCheck", reflect.TypeOf((*MockAPIHandler)(nil).HealthCheck), c)
}

// ListBlogPosts mocks base method.
func (m *MockAPIHandler) ListBlogPosts(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ListBlogPosts", c)
}

// ListBlogPosts indicates an expected call of ListBlogPosts.
func (mr *MockAPIHandlerMockRecorder) ListBlogPosts(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBlogPosts", reflect.TypeOf((*MockAPIHandler)(nil).ListBlogPosts), c)
}

// ListProperties mocks base method.
func (m *MockAPIHandler) ListProperties(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ListProperties", c)
}

// ListProperties indicates an expected call of ListProperties.
func (mr *MockAPIHandlerMockRecorder) ListProperties(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListProperties", reflect.TypeOf((*MockAPIHandler)(nil).ListProperties), c)
}

// MapProperties mocks base method.
func (m *MockAPIHandler) MapProperties(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "MapProperties", c)
}

// MapProperties indicates an expected call of MapProperties.
func (mr *MockAPIHandlerMockRecorder) MapProperties(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MapProperties", reflect.TypeOf((*MockAPIHandler)(nil).MapProperties), c)
}
