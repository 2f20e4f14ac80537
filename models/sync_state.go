// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ErrorKind classifies a recoverable synchronisation failure.
type ErrorKind string

const (
	// ErrorUnableToSendMessage means the transport failed to send a query.
	ErrorUnableToSendMessage ErrorKind = "UNABLE_TO_SEND_MESSAGE"

	// ErrorNoResponseFromPhone means no valid acknowledgement arrived before
	// the response timeout elapsed.
	ErrorNoResponseFromPhone ErrorKind = "NO_RESPONSE_FROM_PHONE"
)

// ErrorEvent is a one-shot notification delivered to live observers only.
type ErrorEvent string

const (
	// ErrorEventPhoneChanged is emitted when discovery resolves a different
	// phone while a status check for the previous one was starting.
	ErrorEventPhoneChanged ErrorEvent = "PHONE_CHANGED"
)

// StateKind names a [SyncState] variant. It is used in logs and by observers
// that only need the variant, not its payload.
type StateKind string

const (
	KindLoading             StateKind = "loading"
	KindPhoneNotFound       StateKind = "phone_not_found"
	KindPhoneFound          StateKind = "phone_found"
	KindWaitingForResponse  StateKind = "waiting_for_response"
	KindPhoneStatusResponse StateKind = "phone_status_response"
	KindSendingRequest      StateKind = "sending_request"
	KindError               StateKind = "error"
)

// SyncState is the closed set of synchronisation lifecycle states for one
// preference. Only the variants declared in this file implement it; every
// type switch over it lists all seven.
type SyncState interface {
	Kind() StateKind
	fmt.Stringer

	isSyncState()
}

// StateLoading means no phone node has been resolved yet.
type StateLoading struct{}

// StatePhoneNotFound means discovery failed or timed out.
type StatePhoneNotFound struct {
	SyncActivated bool
}

// StatePhoneFound means a phone node was resolved and a status check is
// about to start.
type StatePhoneFound struct {
	Node Node
}

// StateWaitingForResponse means a query was sent to Node and an
// acknowledgement is awaited.
type StateWaitingForResponse struct {
	Node Node
}

// StatePhoneStatusResponse holds the phone-confirmed preference value.
type StatePhoneStatusResponse struct {
	Node          Node
	SyncActivated bool
}

// StateSendingRequest means a user-initiated change to Activating is being
// sent to Node.
type StateSendingRequest struct {
	Node       Node
	Activating bool
}

// StateError is a recoverable failure. SyncActivated keeps the last persisted
// value so observers can still render it.
type StateError struct {
	ErrorKind     ErrorKind
	SyncActivated bool
}

func (StateLoading) isSyncState()             {}
func (StatePhoneNotFound) isSyncState()       {}
func (StatePhoneFound) isSyncState()          {}
func (StateWaitingForResponse) isSyncState()  {}
func (StatePhoneStatusResponse) isSyncState() {}
func (StateSendingRequest) isSyncState()      {}
func (StateError) isSyncState()               {}

func (StateLoading) Kind() StateKind             { return KindLoading }
func (StatePhoneNotFound) Kind() StateKind       { return KindPhoneNotFound }
func (StatePhoneFound) Kind() StateKind          { return KindPhoneFound }
func (StateWaitingForResponse) Kind() StateKind  { return KindWaitingForResponse }
func (StatePhoneStatusResponse) Kind() StateKind { return KindPhoneStatusResponse }
func (StateSendingRequest) Kind() StateKind      { return KindSendingRequest }
func (StateError) Kind() StateKind               { return KindError }

func (StateLoading) String() string { return string(KindLoading) }

func (s StatePhoneNotFound) String() string {
	return fmt.Sprintf("%s(sync_activated=%t)", KindPhoneNotFound, s.SyncActivated)
}

func (s StatePhoneFound) String() string {
	return fmt.Sprintf("%s(node=%s)", KindPhoneFound, s.Node.ID)
}

func (s StateWaitingForResponse) String() string {
	return fmt.Sprintf("%s(node=%s)", KindWaitingForResponse, s.Node.ID)
}

func (s StatePhoneStatusResponse) String() string {
	return fmt.Sprintf("%s(node=%s, sync_activated=%t)", KindPhoneStatusResponse, s.Node.ID, s.SyncActivated)
}

func (s StateSendingRequest) String() string {
	return fmt.Sprintf("%s(node=%s, activating=%t)", KindSendingRequest, s.Node.ID, s.Activating)
}

func (s StateError) String() string {
	return fmt.Sprintf("%s(%s, sync_activated=%t)", KindError, s.ErrorKind, s.SyncActivated)
}

// StateNode returns the node carried by s, if the variant has one.
func StateNode(s SyncState) (Node, bool) {
	switch st := s.(type) {
	case StatePhoneFound:
		return st.Node, true
	case StateWaitingForResponse:
		return st.Node, true
	case StatePhoneStatusResponse:
		return st.Node, true
	case StateSendingRequest:
		return st.Node, true
	case StateLoading, StatePhoneNotFound, StateError:
	}
	return Node{}, false
}
