// Package mocks provides shared test doubles for the store, service and
// events interfaces.
//
// Two styles are offered. Store mocks embed testify's mock.Mock and are
// driven with On/Return expectations. Service mocks expose function
// fields (CreateAccountFn, ...) with call tracking, for handler tests that
// only care about one method. The InMemory* stores keep real state and
// back end-to-end tests that run the services without a database.
//
//	customers := &mocks.MockCustomerStore{}
//	customers.On("GetByMobileNumber", mock.Anything, "1112223333").
//	    Return(nil, store.ErrCustomerNotFound)
package mocks
