package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// ServerAddress is a normalized beelay server base URL.  Instances are
// produced only by fixServerAddr, so they always carry an http:// prefix
// and a trailing slash.
type ServerAddress string

// SwitchStateResponse is the success body for the get and set operations.
type SwitchStateResponse struct {
	State         string `json:"state"`
	Transitioning string `json:"transitioning"`
}

// SwitchesResponse is the success body for the list operation.
type SwitchesResponse struct {
	Switches []string `json:"switches"`
}

// ErrorResponse is the body the server produces on any non-2xx status.
type ErrorResponse struct {
	ErrorMessage string `json:"error_message"`
}

// fixServerAddr normalizes a server address.  The scheme check is a literal
// prefix match rather than a URL parse: anything not starting with http://
// gets http:// prepended, including addresses using other schemes.
func fixServerAddr(addr string) ServerAddress {
	if !strings.HasPrefix(addr, "http://") {
		addr = "http://" + addr
	}

	if !strings.HasSuffix(addr, "/") {
		addr = addr + "/"
	}

	return ServerAddress(addr)
}

// switchURL builds the URL for a single switch.  Spaces in the switch name
// are replaced with %20; no other character is escaped.
func switchURL(server ServerAddress, switchName string) string {
	return string(server) + "api/switch/" + strings.ReplaceAll(switchName, " ", "%20")
}

func switchesURL(server ServerAddress) string {
	return string(server) + "api/switches/"
}

// Beelay issues single switch operations against a beelay server and
// renders the responses.
type Beelay struct {
	Client *http.Client
	Server ServerAddress
	Logger Logger

	Stdout io.Writer
	Stderr io.Writer
}

// Run dispatches to the operation selected on the command line.
func (b *Beelay) Run(cmd Command, cl CommandLine) error {
	switch cmd {
	case GetCommand:
		return b.GetSwitch(cl.Get.SwitchName)

	case SetCommand:
		// cl.Set.Delay is accepted but not transmitted
		return b.SetSwitch(cl.Set.SwitchName, cl.Set.State)

	case ListCommand:
		return b.ListSwitches()

	default:
		return errors.Errorf("Unrecognized command: %s", cmd)
	}
}

// GetSwitch reads the state of a single switch and prints it.
func (b *Beelay) GetSwitch(switchName string) error {
	url := switchURL(b.Server, switchName)
	b.Logger.Printf("GET %s", url)

	response, err := b.Client.Get(url)
	if err != nil {
		return err
	}

	defer response.Body.Close()
	b.Logger.Printf("%s", response.Status)

	if !statusOK(response.StatusCode) {
		return b.errorStatus(response)
	}

	return b.printSwitchState(response)
}

// SetSwitch requests a state change for a single switch.  The state value
// is passed through to the query string as-is.
func (b *Beelay) SetSwitch(switchName, state string) error {
	url := switchURL(b.Server, switchName) + "?state=" + state
	b.Logger.Printf("POST %s", url)

	request, err := http.NewRequest(http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	response, err := b.Client.Do(request)
	if err != nil {
		return err
	}

	defer response.Body.Close()
	b.Logger.Printf("%s", response.Status)

	if !statusOK(response.StatusCode) {
		return b.errorStatus(response)
	}

	return b.printSwitchState(response)
}

// ListSwitches enumerates the switches the server exposes, in server order.
func (b *Beelay) ListSwitches() error {
	url := switchesURL(b.Server)
	b.Logger.Printf("GET %s", url)

	response, err := b.Client.Get(url)
	if err != nil {
		return err
	}

	defer response.Body.Close()
	b.Logger.Printf("%s", response.Status)

	if !statusOK(response.StatusCode) {
		return b.errorStatus(response)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	var switches SwitchesResponse
	if err := json.Unmarshal(body, &switches); err != nil {
		return errors.Wrap(err, "Failed to parse response")
	}

	fmt.Fprintln(b.Stdout, "Switch list:")
	for _, switchName := range switches.Switches {
		fmt.Fprintf(b.Stdout, "    %s\n", switchName)
	}

	return nil
}

func (b *Beelay) printSwitchState(response *http.Response) error {
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	var state SwitchStateResponse
	if err := json.Unmarshal(body, &state); err != nil {
		return errors.Wrap(err, "Failed to parse response")
	}

	fmt.Fprintf(b.Stdout, "state         : %s\n", state.State)
	fmt.Fprintf(b.Stdout, "transitioning : %s\n", state.Transitioning)
	return nil
}

// errorStatus turns a non-2xx response into an error carrying the HTTP
// status and, when the body parses, the server's error message.
func (b *Beelay) errorStatus(response *http.Response) error {
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.New("Failed to get text body from response")
	}

	message, err := errorMessage(body)
	if err != nil {
		return errors.Wrapf(err, "Could not retrieve error message for %s response", response.Status)
	}

	return errors.Errorf("%s response: %s", response.Status, message)
}

// reportError writes the two-line error report for a failed request.
func (b *Beelay) reportError(err error) {
	fmt.Fprintln(b.Stderr, "Error during beelay request:")
	fmt.Fprintf(b.Stderr, "    %s\n", err)
}

func errorMessage(body []byte) (string, error) {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return "", err
	}

	return er.ErrorMessage, nil
}

func statusOK(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
