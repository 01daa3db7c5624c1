// Package models defines the article and user records exchanged with the
// backend, together with the form inputs that produce them.
//
// Decoding is lenient about identifiers: both "_id" and "id" are accepted,
// and an article's "authorId" may be a plain id or a populated author object.
package models
