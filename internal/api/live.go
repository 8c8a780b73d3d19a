package api

import (
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/redlabs/storefront/internal/metrics"
)

// liveHandler streams one metrics snapshot per interval over a WebSocket, so
// a dashboard can watch traffic without polling /metrics.
func liveHandler(log *logrus.Logger, m *metrics.Metrics, corsOrigins []string, interval time.Duration) gin.HandlerFunc {
	opts := &websocket.AcceptOptions{OriginPatterns: corsOrigins}
	for _, o := range corsOrigins {
		if o == "*" {
			// Wide-open CORS means the origin check is moot.
			opts = &websocket.AcceptOptions{InsecureSkipVerify: true}
			break
		}
	}

	return func(c *gin.Context) {
		conn, err := websocket.Accept(c.Writer, c.Request, opts)
		if err != nil {
			log.WithError(err).Warn("live feed: websocket accept failed")

			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "")

		// CloseRead handles control frames and cancels the context when
		// the peer goes away; this endpoint never expects client data.
		ctx := conn.CloseRead(c.Request.Context())

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			snap, err := m.Snapshot()
			if err != nil {
				log.WithError(err).Error("live feed: snapshot failed")

				return
			}

			if err := wsjson.Write(ctx, conn, snap); err != nil {
				return
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}
}
