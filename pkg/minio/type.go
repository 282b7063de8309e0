package minio

// Config holds object storage connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

func (c Config) validate() error {
	if c.Endpoint == "" {
		return ErrEndpointRequired
	}
	if c.AccessKey == "" || c.SecretKey == "" {
		return ErrCredentialsRequired
	}
	return nil
}
