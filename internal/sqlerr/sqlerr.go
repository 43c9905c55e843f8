// Package sqlerr translates database driver errors.
//
// It parses cryptic SQLSTATE codes from the Postgres driver and
// converts them into client-facing errors (e.g. a foreign key
// violation on orders.user_id becomes a 400 with code ORDER_NOT_FOUND
// and a message naming the missing user).
package sqlerr
