package main

import (
	"net/http"

	"github.com/stretchr/testify/mock"
)

type mockRoundTripper struct {
	mock.Mock
}

var _ http.RoundTripper = (*mockRoundTripper)(nil)

func (m *mockRoundTripper) RoundTrip(request *http.Request) (*http.Response, error) {
	args := m.Called(request)
	response, _ := args.Get(0).(*http.Response)
	return response, args.Error(1)
}

// errorReadCloser is a response body whose reads always fail.
type errorReadCloser struct {
	err error
}

func (erc errorReadCloser) Read([]byte) (int, error) {
	return 0, erc.err
}

func (erc errorReadCloser) Close() error {
	return nil
}
