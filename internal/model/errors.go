package model

import "errors"

var ErrNotObject = errors.New("entity must be a JSON object")
