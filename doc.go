// Package gopos unifies the request and response dialects of Turkish
// bank POS gateways behind one vocabulary.
//
// Every gateway speaks its own dialect: transaction types, currency
// codes, amount formats, card expiry layouts, hash algorithms and wire
// encodings all differ between banks. The pos package defines the
// common vocabulary (transaction types, payment models, currencies,
// order statuses) and the translation contracts (value mappers, value
// formatters, serializers, clients, callback verifiers); each
// pos/<gateway> package implements those contracts for one bank and
// registers itself with the central registry.
//
// The cmd, router and handler packages expose a thin HTTP service on
// top: a registry listing and 3-D Secure callback hash verification
// with audit trails in SQLite and optionally OpenSearch.
package gopos
