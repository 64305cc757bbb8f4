package seal

import "errors"

var (
	ErrSealVerifyFailed = errors.New("the seal signature verification failed")
	ErrSealRootMismatch = errors.New("the sealed root does not match the root returned with it")
	ErrKeyNotECDSA      = errors.New("the key is not an ECDSA key")
	ErrKeyNotPEM        = errors.New("no PEM block found in key data")
)
