package minio

import "errors"

var (
	ErrEndpointRequired    = errors.New("minio: endpoint is required")
	ErrCredentialsRequired = errors.New("minio: access and secret keys are required")
)
