package client

import "errors"

// ErrWrongPassword is returned by [App.Unlock] when the password does not
// match the vault's stored credential.
var ErrWrongPassword = errors.New("wrong master password")
