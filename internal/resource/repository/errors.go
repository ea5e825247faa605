package repository

import "errors"

var (
	ErrFailedToUpsert = errors.New("failed to upsert records")
	ErrFailedToList   = errors.New("failed to list records")
)
