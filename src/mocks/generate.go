// Package mocks provides gomock implementations of the core ports.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./src/core/ports
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	uow := mocks.NewMockUnitOfWork(ctrl)
//	uow.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(...)
package mocks
