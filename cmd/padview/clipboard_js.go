//go:build js

package main

import "go.uber.org/zap"

type clipboardWriter interface {
	Write(data []byte) error
}

func newClipboard(log *zap.Logger) clipboardWriter {
	log.Info("clipboard unavailable in the browser build")
	return noClipboard{}
}
