package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

// NewRunID tạo run ID cho một lần ingest (timestamp + hex ngẫu nhiên)
func NewRunID() string {
	b := make([]byte, 4)
	rand.Read(b)
	return fmt.Sprintf("run-%s-%x", time.Now().UTC().Format("20060102T150405"), b)
}
