package io

import (
	"errors"

	"github.com/ezrec/reti/translate"
)

var f = translate.From

var (
	// Console errors
	ErrConsoleClosed = errors.New(f("console closed"))
)
