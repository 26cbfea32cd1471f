// Package api is the JSON HTTP surface of LUNA.
//
// Every response uses the Envelope shape: a code, and either data (with optional
// meta) or an error detail. Errors from the subscription package are mapped to
// stable keys, for example a refused trial is 409 trial_not_available and the
// family endpoint without a family plan is 402 family_plan_required.
//
// All /api routes act on a single configured account. Checkout is a mock: it
// prices the plan, applies it and charges nothing.
package api
