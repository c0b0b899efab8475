package request

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/kjm-dev/ledger.entry-composer/pkg/lib-core-golang/diag"
)

var defaultLogger = diag.CreateLogger()

type sendCfg struct {
	logger diag.Logger
	client *http.Client
}

// SendOpt is a send specific option
type SendOpt func(cfg *sendCfg)

// WithClient will send the request with a given http client
func WithClient(client *http.Client) SendOpt {
	return func(cfg *sendCfg) {
		cfg.client = client
	}
}

// ReqFactory is a function that creates an instance of a request
type ReqFactory func() (*http.Request, error)

// Get creates a new req factory that creates a get request for given url
func Get(url string) ReqFactory {
	return func() (*http.Request, error) {
		return http.NewRequest("GET", url, nil)
	}
}

// Post creates a new req factory that creates a post request for given url
func Post(url string, contentType string, body io.Reader) ReqFactory {
	return func() (*http.Request, error) {
		req, err := http.NewRequest("POST", url, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", contentType)
		return req, nil
	}
}

// Patch creates a new req factory that creates a patch request for given url
func Patch(url string, contentType string, body io.Reader) ReqFactory {
	return func() (*http.Request, error) {
		req, err := http.NewRequest("PATCH", url, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", contentType)
		return req, nil
	}
}

// WithHeader returns a req factory that sets an additional header
func (f ReqFactory) WithHeader(name string, value string) ReqFactory {
	return func() (*http.Request, error) {
		req, err := f()
		if err != nil {
			return nil, err
		}
		req.Header.Set(name, value)
		return req, nil
	}
}

// ResFactory is a function that holds a request result with a response or error.
// The response is returned as-is. Classifying the response status is up to the
// caller (see pkg/ledger outcome handling).
type ResFactory func() (*http.Response, error)

// ReadAll will read entire body as a byte array
func (f ResFactory) ReadAll() ([]byte, error) {
	res, err := f()
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	return ioutil.ReadAll(res.Body)
}

func newResFactory(res *http.Response, err error) ResFactory {
	return func() (*http.Response, error) {
		return res, err
	}
}

// Do will send the request. Transport level failures (e.g connection refused)
// surface as an error of the returned factory. Response status is not
// inspected here.
func Do(ctx context.Context, factory ReqFactory, opts ...SendOpt) ResFactory {
	cfg := sendCfg{
		logger: defaultLogger,
		client: &http.Client{Transport: http.DefaultTransport},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	req, err := factory()
	if err != nil {
		return newResFactory(nil, err)
	}
	req = req.WithContext(ctx)
	cfg.logger.Debug(ctx, "Sending %v %v", req.Method, req.URL)
	return newResFactory(cfg.client.Do(req))
}
