package jwt

// MinSecretKeyLen is the minimum accepted HMAC secret length.
const MinSecretKeyLen = 32
