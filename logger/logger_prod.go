//go:build !dev
// +build !dev

package logger

import "log"

func HandleError(err error) {
	log.Println("Error:", err)
}

func HandleLog(message string) {
	log.Println(message)
}
