package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// ProbeContentURL checks that a video lesson's URL answers with a
// non-error status. Called in the background after lesson creation so
// broken links surface in the logs without blocking the mentor.
func ProbeContentURL(lessonID uint, url string) {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().Head(url)
	if err != nil {
		log.Printf("[LINK-PROBE] Lesson %d: content URL unreachable: %v", lessonID, err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("[LINK-PROBE] Lesson %d: content URL answered %d", lessonID, resp.StatusCode())
	}
}
