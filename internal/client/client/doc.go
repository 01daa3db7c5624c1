// Package client is the HTTP wrapper around the Articles Hub REST backend.
//
// # Overview
//
// HTTPClient implements Client. Every request goes to <base>/api, carries an
// X-Request-ID, and carries "Authorization: Bearer <token>" whenever the
// TokenSource has a token. Responses wrapped as {data: X} or {data: [X]}
// are both unwrapped.
//
// # Error Handling
//
// Non-2xx answers come back as *ResponseError, which unwraps to
// ErrUnauthorized, ErrForbidden, ErrNotFound or ErrUnavailable. Network
// failures and timeouts wrap ErrUnavailable; cancelled requests wrap
// ErrCanceled and context.Canceled. A 401 from any endpoint also runs the
// installed UnauthorizedHandler.
//
// Article create/update are sent as multipart forms. A replaced image is
// uploaded as "imageFile" with a sniffed content type; removing the image
// sends imageAction=remove.
package client
