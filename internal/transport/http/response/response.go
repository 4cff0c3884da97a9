package response

import "github.com/gin-gonic/gin"

// The external contract is plain JSON bodies with real status codes:
// resources and arrays on success, {"error": msg} on failure and
// {"message": msg} for acknowledged deletes.

func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}
