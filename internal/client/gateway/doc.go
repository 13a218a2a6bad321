// Package gateway contains the client-side contract for the hosted backend
// service and its concrete implementation.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract for the remote relational store (see
//     Gateway): owner-scoped Select, echoing Insert, and id-scoped Delete
//     over named record collections.
//  2. An authentication contract (see Authenticator): password sign-in,
//     sign-up, and token revocation against the provider.
//  3. A concrete REST implementation (see RESTGateway) speaking the hosted
//     service's HTTP conventions: rest/v1 endpoints with column=eq.value
//     filters and descending order parameters, auth/v1 endpoints for the
//     token flows, apikey plus bearer headers on every call.
//
// The backend itself is an external collaborator; nothing here implements
// the server side. The service enforces row-level authorization on its own,
// so the owner scoping sent by this client is defense in depth plus fast
// local feedback.
//
// # Error Handling
//
// Common conditions are exposed through shared sentinels matched with
// errors.Is: common.ErrUnavailable for transport failures and
// common.ErrUnauthorized for rejected credentials or tokens.
package gateway
