package httpresp

import "github.com/gin-gonic/gin"

// OK writes a 200 with success=true merged into the payload.
func OK(c *gin.Context, payload gin.H) {
	JSON(c, 200, payload)
}

func JSON(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}
