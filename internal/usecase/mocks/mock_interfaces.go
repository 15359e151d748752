//	mockgen -destination=internal/usecase/mocks/mock_interfaces.go -package=mocks -mock_names=ParameterRepository=GomockParameterRepository,Cache=GomockCache,Retrier=GomockRetrier github.com/duarte/gocontas/internal/usecase ParameterRepository,Cache,Retrier
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// GomockParameterRepository is a mock of ParameterRepository interface.
type GomockParameterRepository struct {
	ctrl     *gomock.Controller
	recorder *GomockParameterRepositoryMockRecorder
	isgomock struct{}
}

// GomockParameterRepositoryMockRecorder is the mock recorder for GomockParameterRepository.
type GomockParameterRepositoryMockRecorder struct {
	mock *GomockParameterRepository
}

// NewGomockParameterRepository creates a new mock instance.
func NewGomockParameterRepository(ctrl *gomock.Controller) *GomockParameterRepository {
	mock := &GomockParameterRepository{ctrl: ctrl}
	mock.recorder = &GomockParameterRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *GomockParameterRepository) EXPECT() *GomockParameterRepositoryMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *GomockParameterRepository) Get(ctx context.Context, tenantID, key string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, tenantID, key)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *GomockParameterRepositoryMockRecorder) Get(ctx, tenantID, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*GomockParameterRepository)(nil).Get), ctx, tenantID, key)
}

// Set mocks base method.
func (m *GomockParameterRepository) Set(ctx context.Context, tenantID, key, value string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", ctx, tenantID, key, value)
	ret0, _ := ret[0].(error)
	return ret0
}

// Set indicates an expected call of Set.
func (mr *GomockParameterRepositoryMockRecorder) Set(ctx, tenantID, key, value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*GomockParameterRepository)(nil).Set), ctx, tenantID, key, value)
}

// GomockCache is a mock of Cache interface.
type GomockCache struct {
	ctrl     *gomock.Controller
	recorder *GomockCacheMockRecorder
	isgomock struct{}
}

// GomockCacheMockRecorder is the mock recorder for GomockCache.
type GomockCacheMockRecorder struct {
	mock *GomockCache
}

// NewGomockCache creates a new mock instance.
func NewGomockCache(ctrl *gomock.Controller) *GomockCache {
	mock := &GomockCache{ctrl: ctrl}
	mock.recorder = &GomockCacheMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *GomockCache) EXPECT() *GomockCacheMockRecorder {
	return m.recorder
}

// Delete mocks base method.
func (m *GomockCache) Delete(ctx context.Context, key string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, key)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *GomockCacheMockRecorder) Delete(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*GomockCache)(nil).Delete), ctx, key)
}

// Get mocks base method.
func (m *GomockCache) Get(ctx context.Context, key string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, key)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *GomockCacheMockRecorder) Get(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*GomockCache)(nil).Get), ctx, key)
}

// Set mocks base method.
func (m *GomockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", ctx, key, value, ttl)
	ret0, _ := ret[0].(error)
	return ret0
}

// Set indicates an expected call of Set.
func (mr *GomockCacheMockRecorder) Set(ctx, key, value, ttl any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*GomockCache)(nil).Set), ctx, key, value, ttl)
}

// GomockRetrier is a mock of Retrier interface.
type GomockRetrier struct {
	ctrl     *gomock.Controller
	recorder *GomockRetrierMockRecorder
	isgomock struct{}
}

// GomockRetrierMockRecorder is the mock recorder for GomockRetrier.
type GomockRetrierMockRecorder struct {
	mock *GomockRetrier
}

// NewGomockRetrier creates a new mock instance.
func NewGomockRetrier(ctrl *gomock.Controller) *GomockRetrier {
	mock := &GomockRetrier{ctrl: ctrl}
	mock.recorder = &GomockRetrierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *GomockRetrier) EXPECT() *GomockRetrierMockRecorder {
	return m.recorder
}

// Retry mocks base method.
func (m *GomockRetrier) Retry(ctx context.Context, operation func() error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Retry", ctx, operation)
	ret0, _ := ret[0].(error)
	return ret0
}

// Retry indicates an expected call of Retry.
func (mr *GomockRetrierMockRecorder) Retry(ctx, operation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Retry", reflect.TypeOf((*GomockRetrier)(nil).Retry), ctx, operation)
}
