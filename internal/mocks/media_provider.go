// Code generated by MockGen. DO NOT EDIT.
// Source: provider.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	io "io"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	mediaprovider "github.com/propsetu/estate-backend/internal/media/provider"
)

// MockMediaProvider is a mock of Provider interface.
type MockMediaProvider struct {
	ctrl     *gomock.Controller
	recorder *MockMediaProviderMockRecorder
}

// MockMediaProviderMockRecorder is the mock recorder for MockMediaProvider.
type MockMediaProviderMockRecorder struct {
	mock *MockMediaProvider
}

// NewMockMediaProvider creates a new mock instance.
func NewMockMediaProvider(ctrl *gomock.Controller) *MockMediaProvider {
	mock := &MockMediaProvider{ctrl: ctrl}
	mock.recorder = &MockMediaProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMediaProvider) EXPECT() *MockMediaProviderMockRecorder {
	return m.recorder
}

// DeleteImage mocks base method.
func (m *MockMediaProvider) DeleteImage(ctx context.Context, assetID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteImage", ctx, assetID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteImage indicates an expected call of DeleteImage.
func (mr *MockMediaProviderMockRecorder) DeleteImage(ctx, assetID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteImage", reflect.TypeOf((*MockMediaProvider)(nil).DeleteImage), ctx, assetID)
}

// Name mocks base method.
func (m *MockMediaProvider) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)
	return ret0
}

// Name indicates an expected call of Name.
func (mr *MockMediaProviderMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockMediaProvider)(nil).Name))
}

// UploadImage mocks base method.
func (m *MockMediaProvider) UploadImage(ctx context.Context, sourceURL string, metadata map[string]interface{}) (*mediaprovider.UploadResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UploadImage", ctx, sourceURL, metadata)
	ret0, _ := ret[0].(*mediaprovider.UploadResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UploadImage indicates an expected call of UploadImage.
func (mr *MockMediaProviderMockRecorder) UploadImage(ctx, sourceURL, metadata interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UploadImage", reflect.TypeOf((*MockMediaProvider)(nil).UploadImage), ctx, sourceURL, metadata)
}

// UploadImageFromReader mocks base method.
func (m *MockMediaProvider) UploadImageFromReader(ctx context.Context, reader io.Reader, filename, contentType string, metadata map[string]interface{}) (*mediaprovider.UploadResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UploadImageFromReader", ctx, reader, filename, contentType, metadata)
	ret0, _ := ret[0].(*mediaprovider.UploadResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UploadImageFromReader indicates an expected call of UploadImageFromReader.
func (mr *MockMediaProviderMockRecorder) UploadImageFromReader(ctx, reader, filename, contentType, metadata interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UploadImageFromReader", reflect.TypeOf((*MockMediaProvider)(nil).UploadImageFromReader), ctx, reader, filename, contentType, metadata)
}
