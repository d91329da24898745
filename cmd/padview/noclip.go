package main

import "errors"

var errNoClipboard = errors.New("no clipboard")

type noClipboard struct{}

func (noClipboard) Write([]byte) error {
	return errNoClipboard
}
