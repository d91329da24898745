//go:build !js

package main

import (
	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

type clipboardWriter interface {
	Write(data []byte) error
}

type systemClipboard struct{}

func (systemClipboard) Write(data []byte) error {
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

func newClipboard(log *zap.Logger) clipboardWriter {
	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable", zap.Error(err))
		return noClipboard{}
	}
	return systemClipboard{}
}
