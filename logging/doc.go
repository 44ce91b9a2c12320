// Package logging holds the logrus field helpers used across the keypair
// module.
//
// Every log line carries "package" and "function" fields. Public keys and
// signatures may be logged through [PublicPreview]; secret keys are only ever
// described by their length through [SecretFields].
package logging
