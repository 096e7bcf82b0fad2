package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONRedirect is the success shape for mutations whose caller-visible
// outcome is a navigation: the frontend follows the redirect target.
func JSONRedirect(c *gin.Context, code int, data interface{}, redirect string) {
	c.JSON(code, gin.H{"success": true, "data": data, "redirect": redirect})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
