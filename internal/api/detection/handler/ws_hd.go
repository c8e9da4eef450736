package detectionHandler

import (
	"time"

	"TutelaGolang/internal/api/detection"

	"github.com/gofiber/websocket/v2"
)

// handleDetectionWebSocket serves the realtime stream: each text message is
// one JSON frame request, each reply the tracked detections for that frame.
// One tracker state is shared service-wide, so consecutive frames from the
// same client keep their identities.
func (h *DetectionHandler) handleDetectionWebSocket(c *websocket.Conn) {
	h.log.Info("Detection WebSocket client connected")
	defer h.log.Info("Detection WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		h.log.Debug("Received ping, sending pong")
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Detection WebSocket error: %v", err)
			} else {
				h.log.Info("Detection WebSocket connection closed")
			}
			break
		}

		if messageType != websocket.TextMessage && messageType != websocket.BinaryMessage {
			h.log.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		result, err := h.detectionService.ProcessWSFrame(message)
		if err != nil {
			h.log.Errorf("Error processing frame: %v", err)
			if writeErr := c.WriteJSON(detection.WSErrorResponse{Error: err.Error()}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(result); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			h.log.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}
