// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data. Each service depends on a small interface of the
// repository methods it calls, so tests can swap in mocks.
package service
