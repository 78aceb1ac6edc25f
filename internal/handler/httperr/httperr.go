package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	// RedirectTo carries a navigation target for control-flow responses
	// such as the login redirect of an unauthenticated booking attempt.
	RedirectTo string `json:"redirectTo,omitempty"`
	Detail     any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithRedirect reports an auth gate with the target that resumes the
// interrupted flow after login.
func AbortWithRedirect(c *gin.Context, status int, err error, msg, redirectTo string) {
	if err == nil {
		panic("AbortWithRedirect: err cannot be nil")
	}

	resp := Response{Status: status, RedirectTo: redirectTo}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
