package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeviceHeader carries the id a client keeps between app starts. All session
// state is keyed by it.
const DeviceHeader = "X-Device-ID"

const deviceIDKey = "device_id"

// DeviceMiddleware makes sure every request has a device id, issuing a new
// one when the client sent none or an invalid one. The id is echoed back in
// the response header.
func DeviceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := c.GetHeader(DeviceHeader)
		if _, err := uuid.Parse(deviceID); err != nil {
			deviceID = uuid.NewString()
		}

		c.Set(deviceIDKey, deviceID)
		c.Header(DeviceHeader, deviceID)
		c.Next()
	}
}

func DeviceID(c *gin.Context) string {
	return c.GetString(deviceIDKey)
}
