package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"mccwk.com/poet/internal/poem"
)

// DecodeResult validates the model's JSON text against the poem contract.
// Text that is not JSON at all is a *ServiceError; JSON of the wrong shape is
// an *InvalidResponseError. Both fields are trimmed.
func DecodeResult(raw string) (poem.Result, error) {
	data := []byte(raw)
	if !json.Valid(data) {
		return poem.Result{}, &ServiceError{Op: "decode", Err: fmt.Errorf("response is not valid JSON")}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return poem.Result{}, &InvalidResponseError{Reason: "payload is not a JSON object", Raw: raw}
	}

	title, err := stringField(fields, "title", raw)
	if err != nil {
		return poem.Result{}, err
	}
	content, err := stringField(fields, "content", raw)
	if err != nil {
		return poem.Result{}, err
	}

	return poem.Result{
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
	}, nil
}

func stringField(fields map[string]json.RawMessage, name, raw string) (string, error) {
	value, ok := fields[name]
	if !ok {
		return "", &InvalidResponseError{Reason: "missing " + name, Raw: raw}
	}
	value = bytes.TrimSpace(value)
	if len(value) == 0 || value[0] != '"' {
		return "", &InvalidResponseError{Reason: name + " is not a string", Raw: raw}
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", &InvalidResponseError{Reason: name + " is not a string", Raw: raw}
	}
	return s, nil
}
