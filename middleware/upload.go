package middleware

import (
	"errors"
	"log"
	"net/http"

	"business-service/storage"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

const uploadURLKey = "uploadURL"

// multipartOverhead is allowed on top of the file limit for boundaries, part
// headers and the other form fields.
const multipartOverhead = 64 << 10

// SingleImage stores the file sent in field and records its URL for the
// handler. A request without that file passes through untouched; the handler
// decides whether the image was required. The body is capped before it is
// parsed, so an oversized upload is refused without being buffered.
func SingleImage(store storage.Store, field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := store.MaxBytes()
		if limit > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)
		}

		fh, err := c.FormFile(field)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"message": storage.ErrTooLarge.Error() + ": the limit is " + humanize.IBytes(uint64(limit)),
				})
				return
			}
			c.Next()
			return
		}

		url, err := store.Save(c.Request.Context(), field, fh)
		if err != nil {
			if storage.IsClientError(err) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			log.Printf("Error storing %s upload: %v", field, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error while uploading image."})
			return
		}
		c.Set(uploadURLKey, url)
		c.Next()
	}
}

// UploadedURL returns the URL produced by SingleImage, if a file was sent
func UploadedURL(c *gin.Context) (string, bool) {
	url := c.GetString(uploadURLKey)
	return url, url != ""
}
