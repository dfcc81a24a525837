package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-problem-server/internal/problem"
)

// problemKey holds the problem.Details written for the current request.
const problemKey = "problem"

// WriteProblem writes resp as the response, aborts the remaining chain and
// remembers the details for the access log and metrics.
//
// Content-Type is exactly problem.ContentType (no charset parameter).
func WriteProblem(c *gin.Context, resp problem.Response) {
	c.Set(problemKey, resp.Details)
	c.Data(resp.Status, resp.ContentType, resp.Body)
	c.Abort()
}

// ProblemFrom returns the details written by WriteProblem, if any.
func ProblemFrom(c *gin.Context) (problem.Details, bool) {
	v, ok := c.Get(problemKey)
	if !ok {
		return problem.Details{}, false
	}
	d, ok := v.(problem.Details)
	return d, ok
}
