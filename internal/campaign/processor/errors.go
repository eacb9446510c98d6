package processor

import (
	"campaign-intake/internal/clients/clickup"
	"errors"
	"fmt"
)

// ErrClientNotFound is returned when a client id has no stored client.
var ErrClientNotFound = errors.New("client not found")

// RemoteAPIError reports a failed call to the task-tracking service.
type RemoteAPIError struct {
	Op  string
	Err error
}

func (e *RemoteAPIError) Error() string {
	var apiErr *clickup.APIError
	if errors.As(e.Err, &apiErr) {
		return apiErr.Error()
	}
	return fmt.Sprintf("Connection error: %v", e.Err)
}

func (e *RemoteAPIError) Unwrap() error {
	return e.Err
}

// StoreError reports a failed query or mutation against the relational store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("Database Error: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// LinkError is returned when a task was created remotely but linking it to
// the client failed. TaskID identifies the orphaned task.
type LinkError struct {
	TaskID string
	Err    *StoreError
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("task %s created but not linked: %v", e.TaskID, e.Err)
}

func (e *LinkError) Unwrap() error {
	return e.Err
}
