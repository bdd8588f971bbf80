package handlers

import (
	"sync"

	"github.com/gin-gonic/gin"

	apierrors "github.com/customeros/notestack/api/errors"
)

// outcomeReporter writes exactly one response per request. Later reports are dropped.
type outcomeReporter struct {
	c    *gin.Context
	once sync.Once
}

func newOutcomeReporter(c *gin.Context) *outcomeReporter {
	return &outcomeReporter{c: c}
}

// Report sends the response for err (nil meaning success) and reports whether this call wrote it.
func (r *outcomeReporter) Report(err error) bool {
	reported := false
	r.once.Do(func() {
		status, body := apierrors.StatusFor(err)
		r.c.JSON(status, body)
		reported = true
	})
	return reported
}
