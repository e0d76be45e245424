package utils

import "log"

// RecoverPublish keeps a fire-and-forget goroutine from taking the process
// down with it.
func RecoverPublish() {
	if r := recover(); r != nil {
		log.Printf("recovered in background publish: %v", r)
	}
}
