package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
)

// BeelaySuite hosts common infrastructure for beelay unit test suites.
type BeelaySuite struct {
	suite.Suite

	stdout *bytes.Buffer
	stderr *bytes.Buffer
	logger Logger
}

var _ suite.SetupTestSuite = (*BeelaySuite)(nil)
var _ suite.BeforeTest = (*BeelaySuite)(nil)

func (suite *BeelaySuite) SetupTest() {
	suite.stdout = new(bytes.Buffer)
	suite.stderr = new(bytes.Buffer)
}

func (suite *BeelaySuite) BeforeTest(suiteName, testName string) {
	suite.logger = testLogger{
		t:         suite.T(),
		suiteName: suiteName,
		testName:  testName,
	}
}

// newBeelay constructs a client against the given server address, capturing
// all output in the suite's buffers.
func (suite *BeelaySuite) newBeelay(server string) *Beelay {
	return &Beelay{
		Client: new(http.Client),
		Server: fixServerAddr(server),
		Logger: suite.logger,
		Stdout: suite.stdout,
		Stderr: suite.stderr,
	}
}

// newServer starts a fake beelay server with the standard routes, backed by
// the given handler.  The server is closed when the enclosing test finishes.
func (suite *BeelaySuite) newServer(method, path string, handler http.HandlerFunc) *httptest.Server {
	r := mux.NewRouter()
	r.HandleFunc(path, handler).Methods(method)

	server := httptest.NewServer(r)
	suite.T().Cleanup(server.Close)
	return server
}
