package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/kjm-dev/ledger.entry-composer/pkg/lib-core-golang/request"
)

// ServiceError is a normalized failure of a ledger service call. Payload is
// whatever error body the service responded with, rendered to the operator
// verbatim. If the body was empty a minimal {status, error} payload is
// synthesized.
type ServiceError struct {
	StatusCode int
	Payload    interface{}
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ledger service responded with %v: %v", e.StatusCode, e.Payload)
}

// Resolve classifies a transport result. This is the single place where
// response statuses are inspected, callers only ever see a payload or an
// error. Success payload is the parsed JSON value, or the raw body text if it
// does not parse (the text is still returned, not discarded). Any non 2xx
// status yields a ServiceError
func Resolve(res request.ResFactory) (interface{}, error) {
	status, body, err := transportResult(res)
	if err != nil {
		return nil, err
	}
	payload := parseBody(body)
	if svcErr := failureOf(status, payload); svcErr != nil {
		return nil, svcErr
	}
	return payload, nil
}

// ResolveJSON is a Resolve variant that decodes a successful body into the
// given receiver. Failure classification is identical to Resolve
func ResolveJSON(res request.ResFactory, receiver interface{}) error {
	status, body, err := transportResult(res)
	if err != nil {
		return err
	}
	if svcErr := failureOf(status, parseBody(body)); svcErr != nil {
		return svcErr
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, receiver)
}

func transportResult(res request.ResFactory) (int, []byte, error) {
	resVal, err := res()
	if err != nil {
		return 0, nil, err
	}
	body, err := res.ReadAll()
	if err != nil {
		return 0, nil, err
	}
	return resVal.StatusCode, body, nil
}

func parseBody(body []byte) interface{} {
	if len(body) == 0 {
		return nil
	}
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return string(body)
	}
	return payload
}

func failureOf(status int, payload interface{}) *ServiceError {
	if status >= 200 && status < 300 {
		return nil
	}
	if payload == nil {
		payload = map[string]interface{}{
			"status": status,
			"error":  "Request failed",
		}
	}
	return &ServiceError{StatusCode: status, Payload: payload}
}

// createdEntryID extracts the created identifier from a create entry
// response. The service may respond with a bare number or an {id} object,
// both forms are accepted
func createdEntryID(payload interface{}) (int64, error) {
	switch typedVal := payload.(type) {
	case float64:
		return int64(typedVal), nil
	case map[string]interface{}:
		if id, ok := typedVal["id"].(float64); ok {
			return int64(id), nil
		}
	}
	return 0, fmt.Errorf("Can not extract created id from response: %v", payload)
}
